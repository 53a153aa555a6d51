package shortener_test

import (
	"context"
	"errors"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/shortener"
)

var errMock = errors.New("mock error")

// mockRepo is a configurable test double for the shortener Repository.
type mockRepo struct {
	saveErr       error
	getByCodeErr  error
	codeExists    bool
	codeExistsErr error
	incrementErr  error
	listErr       error
	countErr      error
	deleteErr     error

	record     *shortener.ShortURL
	saved      *shortener.ShortURL
	increments int
}

func (m *mockRepo) Save(_ context.Context, shortURL *shortener.ShortURL) error {
	m.saved = shortURL

	return m.saveErr
}

func (m *mockRepo) GetByCode(_ context.Context, _ string) (*shortener.ShortURL, error) {
	if m.getByCodeErr != nil {
		return nil, m.getByCodeErr
	}

	return m.record, nil
}

func (m *mockRepo) CodeExists(_ context.Context, _ string) (bool, error) {
	return m.codeExists, m.codeExistsErr
}

func (m *mockRepo) ListByCreator(_ context.Context, _ string, _, _ int) ([]*shortener.ShortURL, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	return []*shortener.ShortURL{}, nil
}

func (m *mockRepo) CountByCreator(_ context.Context, _ string) (int64, error) {
	return 0, m.countErr
}

func (m *mockRepo) IncrementClicks(_ context.Context, _ string) error {
	m.increments++

	return m.incrementErr
}

func (m *mockRepo) DeleteByCodeAndCreator(_ context.Context, _, _ string) error {
	return m.deleteErr
}
