package bookmarks

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/peopleoverparty/pop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE bookmarks (
  document_id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  content TEXT NOT NULL,
  bookmarked INTEGER NOT NULL DEFAULT 0,
  last_accessed TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestGetByDocumentId_MissingReturnsNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetByDocumentId(context.Background(), "constitution")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInsertAndGet_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	b := &models.Bookmark{
		DocumentId:   "constitution",
		Title:        "The Constitution",
		Category:     "Founding Documents",
		Content:      "We the People...",
		Bookmarked:   true,
		LastAccessed: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, r.Insert(ctx, b))

	got, err := r.GetByDocumentId(ctx, "constitution")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.DocumentId, got.DocumentId)
	assert.Equal(t, b.Title, got.Title)
	assert.Equal(t, b.Category, got.Category)
	assert.Equal(t, b.Content, got.Content)
	assert.True(t, got.Bookmarked)
	assert.True(t, got.LastAccessed.Equal(b.LastAccessed))
}

func TestSetBookmarked_UpdatesFlagOnly(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	b := &models.Bookmark{
		DocumentId:   "federalist-10",
		Title:        "Federalist No. 10",
		Category:     "Founding Documents",
		Content:      "Among the numerous advantages...",
		Bookmarked:   true,
		LastAccessed: time.Now(),
	}
	require.NoError(t, r.Insert(ctx, b))

	require.NoError(t, r.SetBookmarked(ctx, "federalist-10", false))

	got, err := r.GetByDocumentId(ctx, "federalist-10")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Bookmarked)
	// snapshot fields untouched
	assert.Equal(t, "Federalist No. 10", got.Title)
	assert.Equal(t, "Among the numerous advantages...", got.Content)
}

func TestListBookmarkedIds_FiltersOnFlag(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	for _, row := range []struct {
		id         string
		bookmarked bool
	}{
		{"constitution", true},
		{"declaration", false},
		{"bill-of-rights", true},
	} {
		require.NoError(t, r.Insert(ctx, &models.Bookmark{
			DocumentId:   row.id,
			Title:        row.id,
			Category:     "c",
			Content:      "x",
			Bookmarked:   row.bookmarked,
			LastAccessed: time.Now(),
		}))
	}

	ids, err := r.ListBookmarkedIds(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"constitution", "bill-of-rights"}, ids)
}
