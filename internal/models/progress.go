package models

import "time"

// Question set namespaces for flashcard progress rows. Each namespace has
// its own manager instance and its own reference question table.
const (
	QuestionSetNational = "national"
	QuestionSetState    = "state"
)

// FlashcardProgress tracks one question within one question set.
//
// Unique on (QuestionSet, QuestionId). TimesViewed accumulates across
// repeated views; the in-memory viewed cache stays idempotent.
type FlashcardProgress struct {
	QuestionSet string
	QuestionId  int
	TimesViewed int
	Known       bool

	// LastViewed is nil until the question is viewed for the first time
	// (a row created by toggling "known" has never been viewed).
	LastViewed *time.Time
}
