package managers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/repositories/checkins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupCheckInDB(t *testing.T) *sql.DB {
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

func newCheckInManager(t *testing.T, db *sql.DB) *CheckInManager {
	t.Helper()
	return NewCheckInManager(context.Background(), checkins.NewSQLiteRepository(db), logging.Nop())
}

func TestCheckIn_SingleCheckInScenario(t *testing.T) {
	db := setupCheckInDB(t)
	m := newCheckInManager(t, db)

	m.CheckIn(context.Background(), "0472", "Town Hall", "A Volunteer")

	require.Len(t, m.All(), 1)
	assert.Equal(t, m.All(), m.Recent())
	assert.Equal(t, "0472", m.All()[0].EventCode)

	csv := m.ExportCSV()
	assert.True(t, strings.HasPrefix(csv, "Event Name,Event Code,Volunteer Name,Check-In Time\n"))
}

func TestCheckIn_RecentCapsAtTen(t *testing.T) {
	db := setupCheckInDB(t)
	m := newCheckInManager(t, db)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		when := base.Add(time.Duration(i) * time.Minute)
		m.now = func() time.Time { return when }
		m.CheckIn(ctx, "0472", "Town Hall", fmt.Sprintf("Volunteer %d", i))
	}

	assert.Len(t, m.All(), 12)
	require.Len(t, m.Recent(), 10)
	// newest first
	assert.Equal(t, "Volunteer 11", m.Recent()[0].VolunteerName)
	assert.Equal(t, "Volunteer 2", m.Recent()[9].VolunteerName)
}

func TestExportCSV_QuotingRules(t *testing.T) {
	db := setupCheckInDB(t)
	m := newCheckInManager(t, db)
	ctx := context.Background()

	m.now = func() time.Time { return time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC) }

	m.CheckIn(ctx, "1234", "Potluck, Rapid City", "Smith, Jane")

	want := "Event Name,Event Code,Volunteer Name,Check-In Time\n" +
		`"Potluck, Rapid City",1234,"Smith, Jane",Mar 14, 2026 at 3:04 PM` + "\n"
	assert.Equal(t, want, m.ExportCSV())
}

func TestExportCSV_CommaFreeFieldsStayUnquoted(t *testing.T) {
	db := setupCheckInDB(t)
	m := newCheckInManager(t, db)

	m.now = func() time.Time { return time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC) }

	m.CheckIn(context.Background(), "0472", "Town Hall", "A Volunteer")

	want := "Event Name,Event Code,Volunteer Name,Check-In Time\n" +
		"Town Hall,0472,A Volunteer,Mar 14, 2026 at 3:04 PM\n"
	assert.Equal(t, want, m.ExportCSV())
}

func TestDeleteCheckIn_RemovesOne(t *testing.T) {
	db := setupCheckInDB(t)
	m := newCheckInManager(t, db)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	m.CheckIn(ctx, "0001", "First", "A")
	m.now = func() time.Time { return base.Add(time.Hour) }
	m.CheckIn(ctx, "0002", "Second", "B")
	require.Len(t, m.All(), 2)

	m.DeleteCheckIn(ctx, m.All()[0])

	require.Len(t, m.All(), 1)
	assert.Equal(t, "0001", m.All()[0].EventCode)
}

func TestClearAllCheckIns_EmptiesHistory(t *testing.T) {
	db := setupCheckInDB(t)
	m := newCheckInManager(t, db)
	ctx := context.Background()

	m.CheckIn(ctx, "0001", "First", "A")
	m.CheckIn(ctx, "0002", "Second", "B")

	m.ClearAllCheckIns(ctx)

	assert.Empty(t, m.All())
	assert.Empty(t, m.Recent())
}

func TestCheckIn_NoDeduplication(t *testing.T) {
	db := setupCheckInDB(t)
	m := newCheckInManager(t, db)
	ctx := context.Background()

	// same volunteer, same event code: two rows, append-only by design
	m.CheckIn(ctx, "0472", "Town Hall", "A Volunteer")
	m.CheckIn(ctx, "0472", "Town Hall", "A Volunteer")

	assert.Len(t, m.All(), 2)
	assert.NotEqual(t, m.All()[0].Id, m.All()[1].Id)
}
