package progress

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
CREATE TABLE flashcard_progress (
  question_set TEXT NOT NULL,
  question_id INTEGER NOT NULL,
  times_viewed INTEGER NOT NULL DEFAULT 0,
  known INTEGER NOT NULL DEFAULT 0,
  last_viewed TIMESTAMP,
  PRIMARY KEY (question_set, question_id)
);
`)
	require.NoError(t, err)

	return db
}

func TestGet_MissingReturnsNil(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.Get(context.Background(), models.QuestionSetNational, 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInsertUpdateGet_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p := &models.FlashcardProgress{
		QuestionSet: models.QuestionSetNational,
		QuestionId:  42,
	}
	require.NoError(t, r.Insert(ctx, p))

	got, err := r.Get(ctx, models.QuestionSetNational, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.TimesViewed)
	assert.False(t, got.Known)
	assert.Nil(t, got.LastViewed, "never-viewed row has no timestamp")

	viewed := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	got.TimesViewed = 3
	got.Known = true
	got.LastViewed = &viewed
	require.NoError(t, r.Update(ctx, got))

	got2, err := r.Get(ctx, models.QuestionSetNational, 42)
	require.NoError(t, err)
	require.NotNil(t, got2)
	assert.Equal(t, 3, got2.TimesViewed)
	assert.True(t, got2.Known)
	require.NotNil(t, got2.LastViewed)
	assert.True(t, got2.LastViewed.Equal(viewed))
}

func TestSets_AreIndependentNamespaces(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, &models.FlashcardProgress{QuestionSet: models.QuestionSetNational, QuestionId: 1, Known: true}))
	require.NoError(t, r.Insert(ctx, &models.FlashcardProgress{QuestionSet: models.QuestionSetState, QuestionId: 1}))
	require.NoError(t, r.Insert(ctx, &models.FlashcardProgress{QuestionSet: models.QuestionSetState, QuestionId: 2}))

	national, err := r.ListBySet(ctx, models.QuestionSetNational)
	require.NoError(t, err)
	require.Len(t, national, 1)
	assert.True(t, national[0].Known)

	state, err := r.ListBySet(ctx, models.QuestionSetState)
	require.NoError(t, err)
	assert.Len(t, state, 2)
}

func TestDeleteBySet_LeavesOtherSetAlone(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, &models.FlashcardProgress{QuestionSet: models.QuestionSetNational, QuestionId: 1}))
	require.NoError(t, r.Insert(ctx, &models.FlashcardProgress{QuestionSet: models.QuestionSetState, QuestionId: 1}))

	require.NoError(t, r.DeleteBySet(ctx, models.QuestionSetNational))

	national, err := r.ListBySet(ctx, models.QuestionSetNational)
	require.NoError(t, err)
	assert.Empty(t, national)

	state, err := r.ListBySet(ctx, models.QuestionSetState)
	require.NoError(t, err)
	assert.Len(t, state, 1)
}
