package repository

import (
	"context"
	"database/sql"
	"time"

	apperrors "github.com/shortify/shortify/internal/errors"
	"github.com/shortify/shortify/internal/model"
)

type PostgresLinkRepository struct {
	db *sql.DB
}

func NewPostgresLinkRepository(db *sql.DB) LinkRepository {
	return &PostgresLinkRepository{
		db: db,
	}
}

func (r *PostgresLinkRepository) Insert(ctx context.Context, link *model.Link) error {
	// ON CONFLICT DO NOTHING makes the uniqueness check atomic with the
	// insert: a race between two creators yields exactly one inserted row.
	query := `
	INSERT INTO links (short_code, long_url, clicks, created_at)
	VALUES ($1, $2, 0, $3)
	ON CONFLICT (short_code) DO NOTHING
	RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		link.ShortCode,
		link.LongURL,
		link.CreatedAt,
	).Scan(&link.ID)

	if err == sql.ErrNoRows {
		return apperrors.ErrAliasTaken
	}

	if err != nil {
		return apperrors.NewBusinessError(
			"DATABASE_ERROR",
			"failed to create link",
			err,
		)
	}

	return nil
}

func (r *PostgresLinkRepository) FindByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	query := `
	SELECT id, short_code, long_url, clicks, created_at, last_accessed
	FROM links
	WHERE short_code = $1
	`

	link := &model.Link{}
	var lastAccessed sql.NullTime
	err := r.db.QueryRowContext(ctx, query, shortCode).Scan(
		&link.ID,
		&link.ShortCode,
		&link.LongURL,
		&link.Clicks,
		&link.CreatedAt,
		&lastAccessed,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrLinkNotFound
	}

	if err != nil {
		return nil, apperrors.NewBusinessError(
			"DATABASE_ERROR",
			"failed to get link",
			err,
		)
	}

	if lastAccessed.Valid {
		t := lastAccessed.Time
		link.LastAccessed = &t
	}

	return link, nil
}

func (r *PostgresLinkRepository) ExistsByCode(ctx context.Context, shortCode string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM links WHERE short_code = $1)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, shortCode).Scan(&exists)
	if err != nil {
		return false, apperrors.NewBusinessError(
			"DATABASE_ERROR",
			"failed to check short code existence",
			err,
		)
	}

	return exists, nil
}

func (r *PostgresLinkRepository) RecordVisit(ctx context.Context, shortCode string, at time.Time) (string, error) {
	// The increment happens inside a single UPDATE, so N concurrent visits
	// always produce a clicks delta of exactly N.
	query := `
	UPDATE links
	SET clicks = clicks + 1, last_accessed = $2
	WHERE short_code = $1
	RETURNING long_url
	`

	var longURL string
	err := r.db.QueryRowContext(ctx, query, shortCode, at).Scan(&longURL)

	if err == sql.ErrNoRows {
		return "", apperrors.ErrLinkNotFound
	}

	if err != nil {
		return "", apperrors.NewBusinessError(
			"DATABASE_ERROR",
			"failed to record visit",
			err,
		)
	}

	return longURL, nil
}
