package checkins

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

func (r *SQLiteRepository) Insert(ctx context.Context, c *models.CheckIn) error {
	query := `INSERT INTO check_ins (id, event_code, event_name, volunteer_name, check_in_time)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		c.Id, c.EventCode, c.EventName, c.VolunteerName, c.CheckInTime)
	if err != nil {
		return fmt.Errorf("failed to insert check-in: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]models.CheckIn, error) {
	query := `SELECT id, event_code, event_name, volunteer_name, check_in_time
		FROM check_ins ORDER BY check_in_time DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var result []models.CheckIn
	for rows.Next() {
		var c models.CheckIn
		if err := rows.Scan(&c.Id, &c.EventCode, &c.EventName, &c.VolunteerName, &c.CheckInTime); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM check_ins WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete check-in[%s]: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM check_ins`)
	if err != nil {
		return fmt.Errorf("failed to clear check-ins: %w", err)
	}
	return nil
}
