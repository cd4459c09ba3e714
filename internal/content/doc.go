// Package content holds the app's immutable reference tables: civics quiz
// questions (federal and South Dakota sets), founding documents, the
// legislator directory, discussion guides, issue explainers and the
// recommended reading list.
//
// Everything here is plain data initialized at package load and never
// mutated afterwards, so it can be read from anywhere without
// synchronization. Mutable per-device state (bookmarks, flashcard progress,
// check-ins, signups) lives in the store and correlates against these tables
// by id.
package content
