package bookmarks

import (
	"context"

	"github.com/peopleoverparty/pop/internal/models"
)

// Repository describes persistence operations for Bookmark rows.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// GetByDocumentId returns the bookmark row for a document, or nil if no
	// row exists yet.
	GetByDocumentId(ctx context.Context, documentId string) (*models.Bookmark, error)

	// Insert creates a new bookmark row.
	Insert(ctx context.Context, b *models.Bookmark) error

	// SetBookmarked updates the bookmarked flag of an existing row. The
	// snapshot fields are left untouched.
	SetBookmarked(ctx context.Context, documentId string, bookmarked bool) error

	// ListBookmarkedIds returns the ids of all documents whose row has the
	// bookmarked flag set.
	ListBookmarkedIds(ctx context.Context) ([]string, error)
}
