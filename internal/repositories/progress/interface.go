package progress

import (
	"context"

	"github.com/peopleoverparty/pop/internal/models"
)

// Repository describes persistence operations for FlashcardProgress rows.
// Every method is scoped to a question-set namespace; rows from different
// sets never mix.
type Repository interface {
	// Get returns the progress row for one question, or nil if none exists.
	Get(ctx context.Context, questionSet string, questionId int) (*models.FlashcardProgress, error)

	// Insert creates a new progress row.
	Insert(ctx context.Context, p *models.FlashcardProgress) error

	// Update overwrites the mutable fields of an existing row.
	Update(ctx context.Context, p *models.FlashcardProgress) error

	// ListBySet returns every progress row of a question set.
	ListBySet(ctx context.Context, questionSet string) ([]models.FlashcardProgress, error)

	// DeleteBySet removes every progress row of a question set.
	DeleteBySet(ctx context.Context, questionSet string) error
}
