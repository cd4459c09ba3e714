package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *SQLiteRepository) Get(ctx context.Context, questionSet string, questionId int) (*models.FlashcardProgress, error) {
	query := `SELECT question_set, question_id, times_viewed, known, last_viewed
		FROM flashcard_progress WHERE question_set = ? AND question_id = ?`

	var p models.FlashcardProgress
	var lastViewed sql.NullTime
	err := r.db.QueryRowContext(ctx, query, questionSet, questionId).
		Scan(&p.QuestionSet, &p.QuestionId, &p.TimesViewed, &p.Known, &lastViewed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress[%s/%d]: %w", questionSet, questionId, err)
	}
	if lastViewed.Valid {
		t := lastViewed.Time
		p.LastViewed = &t
	}
	return &p, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, p *models.FlashcardProgress) error {
	query := `INSERT INTO flashcard_progress (question_set, question_id, times_viewed, known, last_viewed)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		p.QuestionSet, p.QuestionId, p.TimesViewed, p.Known, nullTime(p.LastViewed))
	if err != nil {
		return fmt.Errorf("failed to insert progress[%s/%d]: %w", p.QuestionSet, p.QuestionId, err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *models.FlashcardProgress) error {
	query := `UPDATE flashcard_progress SET times_viewed = ?, known = ?, last_viewed = ?
		WHERE question_set = ? AND question_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		p.TimesViewed, p.Known, nullTime(p.LastViewed), p.QuestionSet, p.QuestionId)
	if err != nil {
		return fmt.Errorf("failed to update progress[%s/%d]: %w", p.QuestionSet, p.QuestionId, err)
	}
	return nil
}

func (r *SQLiteRepository) ListBySet(ctx context.Context, questionSet string) ([]models.FlashcardProgress, error) {
	query := `SELECT question_set, question_id, times_viewed, known, last_viewed
		FROM flashcard_progress WHERE question_set = ?`

	rows, err := r.db.QueryContext(ctx, query, questionSet)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress[%s]: %w", questionSet, err)
	}
	defer rows.Close()

	var result []models.FlashcardProgress
	for rows.Next() {
		var p models.FlashcardProgress
		var lastViewed sql.NullTime
		if err := rows.Scan(&p.QuestionSet, &p.QuestionId, &p.TimesViewed, &p.Known, &lastViewed); err != nil {
			return nil, err
		}
		if lastViewed.Valid {
			t := lastViewed.Time
			p.LastViewed = &t
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteBySet(ctx context.Context, questionSet string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM flashcard_progress WHERE question_set = ?`, questionSet)
	if err != nil {
		return fmt.Errorf("failed to delete progress[%s]: %w", questionSet, err)
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
