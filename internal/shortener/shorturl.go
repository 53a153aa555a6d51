package shortener

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("short url not found")
	// ErrConflict is returned when a short code collides with an existing one.
	ErrConflict = errors.New("short code already exists")
	// ErrInvalidURL is returned when the input does not parse as an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
)

// ShortURL represents a shortened URL owned by a user.
type ShortURL struct {
	ID          string
	OriginalURL string
	ShortCode   string
	CreatorID   string
	Clicks      int64
	CreatedAt   time.Time
}

// Repository defines the interface for short URL persistence.
type Repository interface {
	Save(ctx context.Context, shortURL *ShortURL) error
	GetByCode(ctx context.Context, code string) (*ShortURL, error)
	CodeExists(ctx context.Context, code string) (bool, error)

	// ListByCreator returns one page of the creator's records,
	// ordered by creation time descending.
	ListByCreator(ctx context.Context, creatorID string, skip, limit int) ([]*ShortURL, error)
	CountByCreator(ctx context.Context, creatorID string) (int64, error)

	IncrementClicks(ctx context.Context, code string) error

	// DeleteByCodeAndCreator deletes the record matching both code and
	// creator in a single predicate, so a non-owner sees ErrNotFound.
	DeleteByCodeAndCreator(ctx context.Context, code, creatorID string) error
}
