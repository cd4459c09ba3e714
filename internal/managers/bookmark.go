package managers

import (
	"context"
	"time"

	"github.com/peopleoverparty/pop/internal/content"
	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/models"
	"github.com/peopleoverparty/pop/internal/repositories/bookmarks"
)

// BookmarkManager owns the bookmarks record namespace and keeps an in-memory
// set of bookmarked document ids consistent with the store.
type BookmarkManager struct {
	repo      bookmarks.Repository
	log       logging.Logger
	documents []content.Document
	now       func() time.Time

	bookmarkedIds map[string]struct{}

	// Changed fires after every successful mutation.
	Changed Notifier
}

// NewBookmarkManager builds a manager over repo and hydrates the id cache
// from the store by querying rows with the bookmarked flag set. If the load
// fails the cache starts empty (never stale) and the error is logged.
//
// documents is the immutable reference table bookmarks correlate against.
func NewBookmarkManager(ctx context.Context, repo bookmarks.Repository, documents []content.Document, log logging.Logger) *BookmarkManager {
	m := &BookmarkManager{
		repo:          repo,
		log:           log.With("manager", "bookmarks"),
		documents:     documents,
		now:           time.Now,
		bookmarkedIds: make(map[string]struct{}),
	}

	ids, err := repo.ListBookmarkedIds(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to load bookmarks", "error", err)
		return m
	}
	for _, id := range ids {
		m.bookmarkedIds[id] = struct{}{}
	}

	return m
}

// IsBookmarked reports whether the document is currently bookmarked. Pure
// cache lookup, no I/O.
func (m *BookmarkManager) IsBookmarked(documentId string) bool {
	_, ok := m.bookmarkedIds[documentId]
	return ok
}

// ToggleBookmark flips the bookmarked flag for doc, creating the row on the
// first toggle. Title, category and content are snapshotted into the row
// only at creation; later toggles change nothing but the flag, so a row can
// outlive edits to the source document. On a store failure the cache is left
// exactly as it was.
func (m *BookmarkManager) ToggleBookmark(ctx context.Context, doc content.Document) {
	rec, err := m.repo.GetByDocumentId(ctx, doc.Id)
	if err != nil {
		m.log.Error(ctx, "failed to fetch bookmark", "document_id", doc.Id, "error", err)
		return
	}

	if rec == nil {
		rec = &models.Bookmark{
			DocumentId:   doc.Id,
			Title:        doc.Title,
			Category:     doc.Category,
			Content:      doc.Content,
			Bookmarked:   false,
			LastAccessed: m.now(),
		}
		rec.Bookmarked = !rec.Bookmarked

		if err := m.repo.Insert(ctx, rec); err != nil {
			m.log.Error(ctx, "failed to save bookmark", "document_id", doc.Id, "error", err)
			return
		}
	} else {
		rec.Bookmarked = !rec.Bookmarked

		if err := m.repo.SetBookmarked(ctx, doc.Id, rec.Bookmarked); err != nil {
			m.log.Error(ctx, "failed to save bookmark", "document_id", doc.Id, "error", err)
			return
		}
	}

	if rec.Bookmarked {
		m.bookmarkedIds[doc.Id] = struct{}{}
	} else {
		delete(m.bookmarkedIds, doc.Id)
	}

	m.Changed.publish()
}

// BookmarkedDocuments returns the bookmarked documents in reference-table
// order (not in the order they were bookmarked).
func (m *BookmarkManager) BookmarkedDocuments() []content.Document {
	var result []content.Document
	for _, d := range m.documents {
		if _, ok := m.bookmarkedIds[d.Id]; ok {
			result = append(result, d)
		}
	}
	return result
}
