package checkins

import (
	"context"

	"github.com/peopleoverparty/pop/internal/models"
)

// Repository describes persistence operations for CheckIn rows.
type Repository interface {
	// Insert creates a new check-in row.
	Insert(ctx context.Context, c *models.CheckIn) error

	// ListAll returns every check-in, newest first.
	ListAll(ctx context.Context) ([]models.CheckIn, error)

	// Delete removes one check-in by id.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every check-in.
	DeleteAll(ctx context.Context) error
}
