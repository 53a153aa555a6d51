package shortener

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CodeGenerator draws a random fixed-length short code.
type CodeGenerator func() string

// maxCodeRetries bounds the collision loop. The code space is enormous
// relative to three draws, so exhaustion almost always indicates a
// registry-level race rather than true capacity pressure.
const maxCodeRetries = 3

// Service implements the shortening workflow on top of a Repository.
type Service struct {
	repo         Repository
	generateCode CodeGenerator
	logger       *zap.Logger
}

// NewService creates a new shortening service with an injected code generator.
func NewService(repo Repository, generator CodeGenerator, logger *zap.Logger) *Service {
	return &Service{
		repo:         repo,
		generateCode: generator,
		logger:       logger,
	}
}

// Shorten normalizes rawURL and persists a new record owned by creatorID.
// A store-level uniqueness violation despite the pre-check surfaces as
// ErrConflict and is not retried.
func (s *Service) Shorten(ctx context.Context, rawURL, creatorID string) (*ShortURL, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	code, err := s.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	shortURL := &ShortURL{
		ID:          uuid.New().String(),
		OriginalURL: normalized,
		ShortCode:   code,
		CreatorID:   creatorID,
		Clicks:      0,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, shortURL); err != nil {
		return nil, err
	}

	return shortURL, nil
}

// uniqueCode draws codes until one is free of collisions, up to maxCodeRetries.
// The check-then-insert race window is backstopped by the store's uniqueness
// constraint, which converts it into ErrConflict on Save.
func (s *Service) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeRetries; i++ {
		code := s.generateCode()

		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}

		if !exists {
			return code, nil
		}
	}

	return "", ErrConflict
}

// FindByShortCode resolves a code and counts the click. A failed increment
// is logged and swallowed so redirect latency never depends on the counter
// write; the returned record is the pre-increment snapshot.
func (s *Service) FindByShortCode(ctx context.Context, code string) (*ShortURL, error) {
	shortURL, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementClicks(ctx, code); err != nil {
		s.logger.Error("failed to increment click count",
			zap.String("code", code),
			zap.Error(err),
		)
	}

	return shortURL, nil
}

// FindAllByUser returns one page of the user's records, newest first, plus
// the total owned count for pagination metadata.
func (s *Service) FindAllByUser(ctx context.Context, creatorID string, skip, limit int) ([]*ShortURL, int64, error) {
	urls, err := s.repo.ListByCreator(ctx, creatorID, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountByCreator(ctx, creatorID)
	if err != nil {
		return nil, 0, err
	}

	return urls, total, nil
}

// Delete removes the record matching both code and creator. Codes owned by
// someone else report ErrNotFound, never the record's existence.
func (s *Service) Delete(ctx context.Context, code, creatorID string) error {
	return s.repo.DeleteByCodeAndCreator(ctx, code, creatorID)
}
