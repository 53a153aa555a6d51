package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/shortener"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis implementation of the user and shortener
// repositories. Records are hashes; uniqueness of emails and codes is
// claimed with HSetNX so concurrent writers lose with a conflict instead
// of overwriting. Per-creator listings come from a sorted set scored by
// creation time.
type RedisStore struct {
	client     *redis.Client
	urlPrefix  string // "url:" + code, hash per record
	userPrefix string // "user:" + id, hash per record
	emailKey   string // "user_emails", email -> user id
	listPrefix string // "user_urls:" + creator id, zset of codes
}

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:     client,
		urlPrefix:  "url:",
		userPrefix: "user:",
		emailKey:   "user_emails",
		listPrefix: "user_urls:",
	}
}

func (r *RedisStore) Create(ctx context.Context, u *user.User) error {
	claimed, err := r.client.HSetNX(ctx, r.emailKey, u.Email, u.ID).Result()
	if err != nil {
		return err
	}

	if !claimed {
		return user.ErrEmailTaken
	}

	return r.client.HSet(ctx, r.userPrefix+u.ID, map[string]interface{}{
		"id":            u.ID,
		"email":         u.Email,
		"username":      u.Username,
		"password_hash": u.PasswordHash,
		"created_at":    u.CreatedAt.UnixNano(),
	}).Err()
}

func (r *RedisStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	id, err := r.client.HGet(ctx, r.emailKey, email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, user.ErrNotFound
		}

		return nil, err
	}

	fields, err := r.client.HGetAll(ctx, r.userPrefix+id).Result()
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, user.ErrNotFound
	}

	return &user.User{
		ID:           fields["id"],
		Email:        fields["email"],
		Username:     fields["username"],
		PasswordHash: fields["password_hash"],
		CreatedAt:    parseUnixNano(fields["created_at"]),
	}, nil
}

func (r *RedisStore) Save(ctx context.Context, shortURL *shortener.ShortURL) error {
	key := r.urlPrefix + shortURL.ShortCode

	// Claim the code first so a concurrent writer loses with ErrConflict.
	claimed, err := r.client.HSetNX(ctx, key, "short_code", shortURL.ShortCode).Result()
	if err != nil {
		return err
	}

	if !claimed {
		return shortener.ErrConflict
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"id":           shortURL.ID,
		"original_url": shortURL.OriginalURL,
		"creator_id":   shortURL.CreatorID,
		"clicks":       shortURL.Clicks,
		"created_at":   shortURL.CreatedAt.UnixNano(),
	})
	pipe.ZAdd(ctx, r.listPrefix+shortURL.CreatorID, redis.Z{
		Score:  float64(shortURL.CreatedAt.UnixNano()),
		Member: shortURL.ShortCode,
	})
	_, err = pipe.Exec(ctx)

	return err
}

func (r *RedisStore) GetByCode(ctx context.Context, code string) (*shortener.ShortURL, error) {
	fields, err := r.client.HGetAll(ctx, r.urlPrefix+code).Result()
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, shortener.ErrNotFound
	}

	return shortURLFromFields(fields), nil
}

func (r *RedisStore) CodeExists(ctx context.Context, code string) (bool, error) {
	n, err := r.client.Exists(ctx, r.urlPrefix+code).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (r *RedisStore) ListByCreator(ctx context.Context, creatorID string, skip, limit int) ([]*shortener.ShortURL, error) {
	if limit <= 0 {
		return []*shortener.ShortURL{}, nil
	}

	stop := int64(skip + limit - 1)

	codes, err := r.client.ZRevRange(ctx, r.listPrefix+creatorID, int64(skip), stop).Result()
	if err != nil {
		return nil, err
	}

	urls := make([]*shortener.ShortURL, 0, len(codes))

	for _, code := range codes {
		shortURL, err := r.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}

		urls = append(urls, shortURL)
	}

	return urls, nil
}

func (r *RedisStore) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	return r.client.ZCard(ctx, r.listPrefix+creatorID).Result()
}

func (r *RedisStore) IncrementClicks(ctx context.Context, code string) error {
	return r.client.HIncrBy(ctx, r.urlPrefix+code, "clicks", 1).Err()
}

func (r *RedisStore) DeleteByCodeAndCreator(ctx context.Context, code, creatorID string) error {
	shortURL, err := r.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	if shortURL.CreatorID != creatorID {
		return shortener.ErrNotFound
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.urlPrefix+code)
	pipe.ZRem(ctx, r.listPrefix+creatorID, code)
	_, err = pipe.Exec(ctx)

	return err
}

// Ping checks Redis connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func shortURLFromFields(fields map[string]string) *shortener.ShortURL {
	clicks, _ := strconv.ParseInt(fields["clicks"], 10, 64)

	return &shortener.ShortURL{
		ID:          fields["id"],
		OriginalURL: fields["original_url"],
		ShortCode:   fields["short_code"],
		CreatorID:   fields["creator_id"],
		Clicks:      clicks,
		CreatedAt:   parseUnixNano(fields["created_at"]),
	}
}

func parseUnixNano(s string) time.Time {
	nanos, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(0, nanos)
}

// Compile-time checks.
var (
	_ user.Repository      = (*RedisStore)(nil)
	_ shortener.Repository = (*RedisStore)(nil)
)
