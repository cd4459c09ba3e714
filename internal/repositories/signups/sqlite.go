package signups

import (
	"context"
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

func (r *SQLiteRepository) Insert(ctx context.Context, s *models.Signup) error {
	query := `INSERT INTO newsletter_signups (id, name, email, signup_date, synced)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, s.Id, s.Name, s.Email, s.SignupDate, s.Synced)
	if err != nil {
		return fmt.Errorf("failed to insert signup: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.Signup, error) {
	query := `SELECT id, name, email, signup_date, synced
		FROM newsletter_signups ORDER BY signup_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	defer rows.Close()

	var result []models.Signup
	for rows.Next() {
		var s models.Signup
		if err := rows.Scan(&s.Id, &s.Name, &s.Email, &s.SignupDate, &s.Synced); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM newsletter_signups`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count signups: %w", err)
	}
	return n, nil
}
