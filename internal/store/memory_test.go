package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/shortener"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/store"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(id, email string) *user.User {
	return &user.User{
		ID:           id,
		Email:        email,
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}
}

func newShortURL(code, creatorID string, createdAt time.Time) *shortener.ShortURL {
	return &shortener.ShortURL{
		ID:          "id-" + code,
		OriginalURL: "https://example.com/" + code,
		ShortCode:   code,
		CreatorID:   creatorID,
		CreatedAt:   createdAt,
	}
}

func TestMemoryStore_Users(t *testing.T) {
	t.Run("creates and finds by email", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Create(context.Background(), newUser("u1", "alice@example.com")))

		got, err := s.GetByEmail(context.Background(), "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Create(context.Background(), newUser("u1", "alice@example.com")))

		err := s.Create(context.Background(), newUser("u2", "alice@example.com"))

		assert.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("unknown email returns ErrNotFound", func(t *testing.T) {
		s := store.NewMemoryStore()

		got, err := s.GetByEmail(context.Background(), "nobody@example.com")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestMemoryStore_ShortURLs(t *testing.T) {
	t.Run("saves and gets by code", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("abc12345", "u1", time.Now())))

		got, err := s.GetByCode(context.Background(), "abc12345")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/abc12345", got.OriginalURL)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("abc12345", "u1", time.Now())))

		err := s.Save(context.Background(), newShortURL("abc12345", "u2", time.Now()))

		assert.ErrorIs(t, err, shortener.ErrConflict)
	})

	t.Run("reports code existence", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("abc12345", "u1", time.Now())))

		exists, err := s.CodeExists(context.Background(), "abc12345")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.CodeExists(context.Background(), "missing1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unknown code returns ErrNotFound", func(t *testing.T) {
		s := store.NewMemoryStore()

		got, err := s.GetByCode(context.Background(), "missing1")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("mutating a returned record does not affect the store", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("abc12345", "u1", time.Now())))

		got, err := s.GetByCode(context.Background(), "abc12345")
		require.NoError(t, err)
		got.Clicks = 99

		stored, err := s.GetByCode(context.Background(), "abc12345")
		require.NoError(t, err)
		assert.EqualValues(t, 0, stored.Clicks)
	})
}

func TestMemoryStore_Clicks(t *testing.T) {
	t.Run("increments monotonically", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("abc12345", "u1", time.Now())))

		require.NoError(t, s.IncrementClicks(context.Background(), "abc12345"))
		require.NoError(t, s.IncrementClicks(context.Background(), "abc12345"))

		got, err := s.GetByCode(context.Background(), "abc12345")
		require.NoError(t, err)
		assert.EqualValues(t, 2, got.Clicks)
	})

	t.Run("unknown code returns ErrNotFound", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.IncrementClicks(context.Background(), "missing1")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}

func TestMemoryStore_ListByCreator(t *testing.T) {
	t.Run("orders newest first and paginates", func(t *testing.T) {
		s := store.NewMemoryStore()
		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		for i := 1; i <= 7; i++ {
			code := fmt.Sprintf("code%04d", i)
			require.NoError(t, s.Save(context.Background(), newShortURL(code, "u1", base.Add(time.Duration(i)*time.Second))))
		}

		urls, err := s.ListByCreator(context.Background(), "u1", 0, 3)
		require.NoError(t, err)
		require.Len(t, urls, 3)
		assert.Equal(t, "code0007", urls[0].ShortCode)
		assert.Equal(t, "code0006", urls[1].ShortCode)
		assert.Equal(t, "code0005", urls[2].ShortCode)

		urls, err = s.ListByCreator(context.Background(), "u1", 6, 3)
		require.NoError(t, err)
		require.Len(t, urls, 1)
		assert.Equal(t, "code0001", urls[0].ShortCode)
	})

	t.Run("breaks creation-time ties by insertion order", func(t *testing.T) {
		s := store.NewMemoryStore()
		at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, s.Save(context.Background(), newShortURL("first123", "u1", at)))
		require.NoError(t, s.Save(context.Background(), newShortURL("second12", "u1", at)))

		urls, err := s.ListByCreator(context.Background(), "u1", 0, 2)
		require.NoError(t, err)
		require.Len(t, urls, 2)
		assert.Equal(t, "second12", urls[0].ShortCode)
		assert.Equal(t, "first123", urls[1].ShortCode)
	})

	t.Run("counts only the creator's records", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("mine1234", "u1", time.Now())))
		require.NoError(t, s.Save(context.Background(), newShortURL("theirs12", "u2", time.Now())))

		total, err := s.CountByCreator(context.Background(), "u1")

		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Run("deletes when code and creator match", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("abc12345", "u1", time.Now())))

		require.NoError(t, s.DeleteByCodeAndCreator(context.Background(), "abc12345", "u1"))

		_, err := s.GetByCode(context.Background(), "abc12345")
		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("non-owner gets ErrNotFound", func(t *testing.T) {
		s := store.NewMemoryStore()

		require.NoError(t, s.Save(context.Background(), newShortURL("abc12345", "u1", time.Now())))

		err := s.DeleteByCodeAndCreator(context.Background(), "abc12345", "u2")

		assert.ErrorIs(t, err, shortener.ErrNotFound)

		_, getErr := s.GetByCode(context.Background(), "abc12345")
		assert.NoError(t, getErr)
	})
}
