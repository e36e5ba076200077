package repository

import (
	"context"
	"time"

	"github.com/shortify/shortify/internal/model"
)

// LinkRepository is the durable mapping store and the sole arbiter of
// short code uniqueness.
type LinkRepository interface {
	// Insert persists a new link. Returns apperrors.ErrAliasTaken when the
	// short code already exists; the check is atomic with the insert.
	Insert(ctx context.Context, link *model.Link) error

	// FindByCode loads a link or returns apperrors.ErrLinkNotFound.
	FindByCode(ctx context.Context, shortCode string) (*model.Link, error)

	// ExistsByCode reports whether a short code is already in use.
	ExistsByCode(ctx context.Context, shortCode string) (bool, error)

	// RecordVisit atomically increments clicks and sets last_accessed,
	// returning the long URL. Returns apperrors.ErrLinkNotFound when the
	// code does not exist.
	RecordVisit(ctx context.Context, shortCode string, at time.Time) (string, error)
}
