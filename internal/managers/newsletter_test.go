package managers

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/repositories/signups"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSignupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE newsletter_signups (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  signup_date TIMESTAMP NOT NULL,
  synced INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func newNewsletterManager(t *testing.T, db *sql.DB, exportDir string) *NewsletterManager {
	t.Helper()
	if exportDir == "" {
		exportDir = t.TempDir()
	}
	return NewNewsletterManager(context.Background(), signups.NewSQLiteRepository(db), exportDir, logging.Nop())
}

func TestAddSignup_CountRecomputed(t *testing.T) {
	db := setupSignupDB(t)
	m := newNewsletterManager(t, db, "")
	ctx := context.Background()

	assert.Equal(t, 0, m.Count())

	m.AddSignup(ctx, "Pat", "pat@example.org")
	m.AddSignup(ctx, "Sam", "sam@example.org")

	assert.Equal(t, 2, m.Count())
}

func TestAddSignup_DuplicateEmailAllowed(t *testing.T) {
	db := setupSignupDB(t)
	m := newNewsletterManager(t, db, "")
	ctx := context.Background()

	// same email twice: append-only, no uniqueness by design
	m.AddSignup(ctx, "Pat", "pat@example.org")
	m.AddSignup(ctx, "Pat", "pat@example.org")

	assert.Equal(t, 2, m.Count())
}

func TestAddSignup_SyncedStartsFalse(t *testing.T) {
	db := setupSignupDB(t)
	m := newNewsletterManager(t, db, "")
	ctx := context.Background()

	m.AddSignup(ctx, "Pat", "pat@example.org")

	all := m.AllSignups(ctx)
	require.Len(t, all, 1)
	assert.False(t, all[0].Synced)
}

func TestAllSignups_NewestFirst(t *testing.T) {
	db := setupSignupDB(t)
	m := newNewsletterManager(t, db, "")
	ctx := context.Background()

	base := time.Date(2026, 7, 4, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	m.AddSignup(ctx, "First", "first@example.org")
	m.now = func() time.Time { return base.Add(time.Hour) }
	m.AddSignup(ctx, "Second", "second@example.org")

	all := m.AllSignups(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Name)
	assert.Equal(t, "First", all[1].Name)
}

func TestNewsletterExportCSV_ForceQuotesAndReplacesCommas(t *testing.T) {
	db := setupSignupDB(t)
	m := newNewsletterManager(t, db, "")
	ctx := context.Background()

	m.now = func() time.Time { return time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC) }
	m.AddSignup(ctx, "O'Brien, Pat", "pat@example.org")

	want := "Name,Email,Signup Date\n" +
		`"O'Brien  Pat","pat@example.org","3/14/26, 3:04 PM"` + "\n"
	assert.Equal(t, want, m.ExportCSV(ctx))
}

func TestNewsletterExportCSV_EveryFieldQuotedEvenWithoutCommas(t *testing.T) {
	db := setupSignupDB(t)
	m := newNewsletterManager(t, db, "")
	ctx := context.Background()

	m.now = func() time.Time { return time.Date(2026, 3, 14, 15, 4, 0, 0, time.UTC) }
	m.AddSignup(ctx, "Sam", "sam@example.org")

	want := "Name,Email,Signup Date\n" +
		`"Sam","sam@example.org","3/14/26, 3:04 PM"` + "\n"
	assert.Equal(t, want, m.ExportCSV(ctx))
}

func TestExportToFile_WritesFixedNameAndOverwrites(t *testing.T) {
	db := setupSignupDB(t)
	dir := t.TempDir()
	m := newNewsletterManager(t, db, dir)
	ctx := context.Background()

	m.AddSignup(ctx, "Pat", "pat@example.org")

	path := m.ExportToFile(ctx)
	require.NotEmpty(t, path)
	assert.Equal(t, filepath.Join(dir, SignupExportFileName), path)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(first), "Name,Email,Signup Date\n"))

	m.AddSignup(ctx, "Sam", "sam@example.org")

	path2 := m.ExportToFile(ctx)
	assert.Equal(t, path, path2, "repeated exports overwrite the same file")

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, string(first), string(second))
}

func TestExportToFile_FailureReturnsEmptyPath(t *testing.T) {
	db := setupSignupDB(t)
	dir := t.TempDir()

	// a regular file where the export directory should be makes the write fail
	blocked := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o600))

	m := newNewsletterManager(t, db, blocked)
	m.AddSignup(context.Background(), "Pat", "pat@example.org")

	assert.Empty(t, m.ExportToFile(context.Background()))
}
