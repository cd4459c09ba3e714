// Package store opens the on-device SQLite database, applies migrations and
// bundles the repositories the managers are built on.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/peopleoverparty/pop/internal/migrations"
	"github.com/peopleoverparty/pop/internal/repositories/bookmarks"
	"github.com/peopleoverparty/pop/internal/repositories/checkins"
	"github.com/peopleoverparty/pop/internal/repositories/progress"
	"github.com/peopleoverparty/pop/internal/repositories/signups"
	"github.com/pressly/goose/v3"
)

// Repositories bundles one repository per record namespace. Each manager
// owns exclusive write access to its repository's rows.
type Repositories struct {
	Bookmarks bookmarks.Repository
	Progress  progress.Repository
	CheckIns  checkins.Repository
	Signups   signups.Repository
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn, runs migrations and returns
// the repository bundle together with the handle (the caller closes it).
func InitDatabase(ctx context.Context, dsn string) (*Repositories, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Bookmarks: bookmarks.NewSQLiteRepository(db),
		Progress:  progress.NewSQLiteRepository(db),
		CheckIns:  checkins.NewSQLiteRepository(db),
		Signups:   signups.NewSQLiteRepository(db),
	}
	return repos, db, nil
}
