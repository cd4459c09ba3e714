package checkins

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
CREATE TABLE check_ins (
  id TEXT PRIMARY KEY,
  event_code TEXT NOT NULL,
  event_name TEXT NOT NULL,
  volunteer_name TEXT NOT NULL,
  check_in_time TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func insertAt(t *testing.T, r *SQLiteRepository, id string, when time.Time) {
	t.Helper()
	require.NoError(t, r.Insert(context.Background(), &models.CheckIn{
		Id:            id,
		EventCode:     "0472",
		EventName:     "Town Hall",
		VolunteerName: "A Volunteer",
		CheckInTime:   when,
	}))
}

func TestListAll_NewestFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	insertAt(t, r, "a", base)
	insertAt(t, r, "b", base.Add(2*time.Hour))
	insertAt(t, r, "c", base.Add(time.Hour))

	got, err := r.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Id)
	assert.Equal(t, "c", got[1].Id)
	assert.Equal(t, "a", got[2].Id)
}

func TestDelete_RemovesOneRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	base := time.Now()
	insertAt(t, r, "a", base)
	insertAt(t, r, "b", base.Add(time.Minute))

	require.NoError(t, r.Delete(ctx, "a"))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Id)
}

func TestDeleteAll_EmptiesTable(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	insertAt(t, r, "a", time.Now())
	insertAt(t, r, "b", time.Now())

	require.NoError(t, r.DeleteAll(ctx))

	got, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInsert_AllowsDuplicateEventCodeAndVolunteer(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	// same volunteer, same event code, different ids: append-only by design
	insertAt(t, r, "first", time.Now())
	insertAt(t, r, "second", time.Now())

	got, err := r.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
