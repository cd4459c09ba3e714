package managers

import (
	"context"
	"time"

	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/models"
	"github.com/peopleoverparty/pop/internal/repositories/progress"
)

// FlashcardManager tracks flashcard learning progress for one question set.
// Two independent instances exist in the app: the national (USCIS) set and
// the South Dakota set; they share one table, scoped by the question-set
// namespace.
type FlashcardManager struct {
	repo        progress.Repository
	log         logging.Logger
	questionSet string

	// totalQuestions is the size of the corresponding reference table.
	totalQuestions int

	knownIds  map[int]struct{}
	viewedIds map[int]struct{}

	now func() time.Time

	// Changed fires after every successful mutation.
	Changed Notifier
}

// NewFlashcardManager builds a manager for questionSet and hydrates both id
// caches from the store. Any row counts as viewed (a row created by toggling
// "known" alone has been interacted with); rows with the known flag also
// land in the known set. A failed load leaves both caches empty.
func NewFlashcardManager(ctx context.Context, repo progress.Repository, questionSet string, totalQuestions int, log logging.Logger) *FlashcardManager {
	m := &FlashcardManager{
		repo:           repo,
		log:            log.With("manager", "flashcards", "question_set", questionSet),
		questionSet:    questionSet,
		totalQuestions: totalQuestions,
		knownIds:       make(map[int]struct{}),
		viewedIds:      make(map[int]struct{}),
		now:            time.Now,
	}

	rows, err := repo.ListBySet(ctx, questionSet)
	if err != nil {
		m.log.Error(ctx, "failed to load flashcard progress", "error", err)
		return m
	}
	for _, p := range rows {
		m.viewedIds[p.QuestionId] = struct{}{}
		if p.Known {
			m.knownIds[p.QuestionId] = struct{}{}
		}
	}

	return m
}

// IsKnown reports whether the question is marked known. Pure cache lookup.
func (m *FlashcardManager) IsKnown(questionId int) bool {
	_, ok := m.knownIds[questionId]
	return ok
}

// MarkViewed records one view of a question: the stored counter goes up by
// exactly 1 on every call and the last-viewed timestamp is set to now, while
// the viewed-id cache keeps set semantics (repeat views are idempotent
// there).
func (m *FlashcardManager) MarkViewed(ctx context.Context, questionId int) {
	rec, err := m.repo.Get(ctx, m.questionSet, questionId)
	if err != nil {
		m.log.Error(ctx, "failed to fetch flashcard progress", "question_id", questionId, "error", err)
		return
	}

	created := rec == nil
	if created {
		rec = &models.FlashcardProgress{QuestionSet: m.questionSet, QuestionId: questionId}
	}

	rec.TimesViewed++
	t := m.now()
	rec.LastViewed = &t

	if err := m.save(ctx, rec, created); err != nil {
		m.log.Error(ctx, "failed to save flashcard progress", "question_id", questionId, "error", err)
		return
	}

	m.viewedIds[questionId] = struct{}{}
	m.Changed.publish()
}

// ToggleKnown flips the known flag for a question, creating the row if this
// is the first interaction, and mirrors the flag into the known-id cache.
func (m *FlashcardManager) ToggleKnown(ctx context.Context, questionId int) {
	rec, err := m.repo.Get(ctx, m.questionSet, questionId)
	if err != nil {
		m.log.Error(ctx, "failed to fetch flashcard progress", "question_id", questionId, "error", err)
		return
	}

	created := rec == nil
	if created {
		rec = &models.FlashcardProgress{QuestionSet: m.questionSet, QuestionId: questionId}
	}

	rec.Known = !rec.Known

	if err := m.save(ctx, rec, created); err != nil {
		m.log.Error(ctx, "failed to save flashcard progress", "question_id", questionId, "error", err)
		return
	}

	if rec.Known {
		m.knownIds[questionId] = struct{}{}
	} else {
		delete(m.knownIds, questionId)
	}

	m.Changed.publish()
}

// ResetAllProgress wipes every progress row of this question set and clears
// both caches. The other question set is untouched.
func (m *FlashcardManager) ResetAllProgress(ctx context.Context) {
	if err := m.repo.DeleteBySet(ctx, m.questionSet); err != nil {
		m.log.Error(ctx, "failed to reset flashcard progress", "error", err)
		return
	}

	m.knownIds = make(map[int]struct{})
	m.viewedIds = make(map[int]struct{})
	m.Changed.publish()
}

// KnownCount is the number of questions currently marked known.
func (m *FlashcardManager) KnownCount() int { return len(m.knownIds) }

// ViewedCount is the number of distinct questions viewed.
func (m *FlashcardManager) ViewedCount() int { return len(m.viewedIds) }

// TotalCount is the size of the reference question table.
func (m *FlashcardManager) TotalCount() int { return m.totalQuestions }

func (m *FlashcardManager) save(ctx context.Context, rec *models.FlashcardProgress, created bool) error {
	if created {
		return m.repo.Insert(ctx, rec)
	}
	return m.repo.Update(ctx, rec)
}
