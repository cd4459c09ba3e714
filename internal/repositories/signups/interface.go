package signups

import (
	"context"

	"github.com/peopleoverparty/pop/internal/models"
)

// Repository describes persistence operations for newsletter Signup rows.
// Rows are append-only; no delete operation is exposed.
type Repository interface {
	// Insert creates a new signup row.
	Insert(ctx context.Context, s *models.Signup) error

	// ListAll returns every signup, newest first.
	ListAll(ctx context.Context) ([]models.Signup, error)

	// Count returns the number of signup rows without fetching them.
	Count(ctx context.Context) (int, error)
}
