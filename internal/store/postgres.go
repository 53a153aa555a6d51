package store

import (
	"context"
	"errors"

	"github.com/Dhia-dev/BACK-URL-TASK/internal/shortener"
	"github.com/Dhia-dev/BACK-URL-TASK/internal/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of the user and shortener
// repositories.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// InitSchema creates the tables if they do not exist. The unique indexes on
// users.email and short_urls.short_code are the correctness backstop for the
// check-then-insert race in code generation.
func (p *PostgresStore) InitSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			username      TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS short_urls (
			id           TEXT PRIMARY KEY,
			original_url TEXT NOT NULL,
			short_code   TEXT NOT NULL UNIQUE,
			creator_id   TEXT NOT NULL REFERENCES users (id),
			clicks       BIGINT NOT NULL DEFAULT 0,
			created_at   TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS short_urls_creator_created_idx
			ON short_urls (creator_id, created_at DESC);
	`

	_, err := p.pool.Exec(ctx, schema)

	return err
}

func (p *PostgresStore) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query, u.ID, u.Email, u.Username, u.PasswordHash, u.CreatedAt)
	if isUniqueViolation(err) {
		return user.ErrEmailTaken
	}

	return err
}

func (p *PostgresStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, username, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	var u user.User

	err := p.pool.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, err
	}

	return &u, nil
}

func (p *PostgresStore) Save(ctx context.Context, shortURL *shortener.ShortURL) error {
	query := `
		INSERT INTO short_urls (id, original_url, short_code, creator_id, clicks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		shortURL.ID,
		shortURL.OriginalURL,
		shortURL.ShortCode,
		shortURL.CreatorID,
		shortURL.Clicks,
		shortURL.CreatedAt,
	)
	if isUniqueViolation(err) {
		return shortener.ErrConflict
	}

	return err
}

func (p *PostgresStore) GetByCode(ctx context.Context, code string) (*shortener.ShortURL, error) {
	query := `
		SELECT id, original_url, short_code, creator_id, clicks, created_at
		FROM short_urls
		WHERE short_code = $1
	`

	return p.scanShortURL(p.pool.QueryRow(ctx, query, code))
}

func (p *PostgresStore) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM short_urls WHERE short_code = $1)`

	var exists bool

	if err := p.pool.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresStore) ListByCreator(ctx context.Context, creatorID string, skip, limit int) ([]*shortener.ShortURL, error) {
	query := `
		SELECT id, original_url, short_code, creator_id, clicks, created_at
		FROM short_urls
		WHERE creator_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := p.pool.Query(ctx, query, creatorID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := make([]*shortener.ShortURL, 0)

	for rows.Next() {
		var shortURL shortener.ShortURL

		err := rows.Scan(
			&shortURL.ID,
			&shortURL.OriginalURL,
			&shortURL.ShortCode,
			&shortURL.CreatorID,
			&shortURL.Clicks,
			&shortURL.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		urls = append(urls, &shortURL)
	}

	return urls, rows.Err()
}

func (p *PostgresStore) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	query := `SELECT COUNT(*) FROM short_urls WHERE creator_id = $1`

	var total int64

	if err := p.pool.QueryRow(ctx, query, creatorID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (p *PostgresStore) IncrementClicks(ctx context.Context, code string) error {
	query := `UPDATE short_urls SET clicks = clicks + 1 WHERE short_code = $1`

	_, err := p.pool.Exec(ctx, query, code)

	return err
}

func (p *PostgresStore) DeleteByCodeAndCreator(ctx context.Context, code, creatorID string) error {
	query := `DELETE FROM short_urls WHERE short_code = $1 AND creator_id = $2`

	tag, err := p.pool.Exec(ctx, query, code, creatorID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrNotFound
	}

	return nil
}

// Ping checks database connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresStore) scanShortURL(row pgx.Row) (*shortener.ShortURL, error) {
	var shortURL shortener.ShortURL

	err := row.Scan(
		&shortURL.ID,
		&shortURL.OriginalURL,
		&shortURL.ShortCode,
		&shortURL.CreatorID,
		&shortURL.Clicks,
		&shortURL.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &shortURL, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Compile-time checks.
var (
	_ user.Repository      = (*PostgresStore)(nil)
	_ shortener.Repository = (*PostgresStore)(nil)
)
