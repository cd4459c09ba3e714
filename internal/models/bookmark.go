// Package models defines the record entities persisted in the local store.
package models

import "time"

// Bookmark is the persisted state of a document bookmark.
//
// At most one row exists per DocumentId. Title, Category and Content are a
// snapshot of the source document taken when the row is first created; they
// are not refreshed on later toggles.
type Bookmark struct {
	// DocumentId is the external key correlating to a content.Document.
	DocumentId string

	// Title, Category and Content mirror the document at creation time.
	Title    string
	Category string
	Content  string

	// Bookmarked is the flag flipped by each toggle.
	Bookmarked bool

	// LastAccessed is set when the row is created.
	LastAccessed time.Time
}
