package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peopleoverparty/pop/internal/dbx"
	"github.com/peopleoverparty/pop/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetByDocumentId(ctx context.Context, documentId string) (*models.Bookmark, error) {
	query := `SELECT document_id, title, category, content, bookmarked, last_accessed
		FROM bookmarks WHERE document_id = ?`

	var b models.Bookmark
	err := r.db.QueryRowContext(ctx, query, documentId).
		Scan(&b.DocumentId, &b.Title, &b.Category, &b.Content, &b.Bookmarked, &b.LastAccessed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark[%s]: %w", documentId, err)
	}
	return &b, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, b *models.Bookmark) error {
	query := `INSERT INTO bookmarks (document_id, title, category, content, bookmarked, last_accessed)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		b.DocumentId, b.Title, b.Category, b.Content, b.Bookmarked, b.LastAccessed)
	if err != nil {
		return fmt.Errorf("failed to insert bookmark[%s]: %w", b.DocumentId, err)
	}
	return nil
}

func (r *SQLiteRepository) SetBookmarked(ctx context.Context, documentId string, bookmarked bool) error {
	query := `UPDATE bookmarks SET bookmarked = ? WHERE document_id = ?`

	_, err := r.db.ExecContext(ctx, query, bookmarked, documentId)
	if err != nil {
		return fmt.Errorf("failed to update bookmark[%s]: %w", documentId, err)
	}
	return nil
}

func (r *SQLiteRepository) ListBookmarkedIds(ctx context.Context) ([]string, error) {
	query := `SELECT document_id FROM bookmarks WHERE bookmarked = 1`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarked ids: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
