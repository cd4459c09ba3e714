package cli

import (
	"context"
	"fmt"

	"github.com/peopleoverparty/pop/internal/content"
)

func (a *App) listDocuments() {
	for _, d := range content.Documents {
		mark := " "
		if a.bookmarks.IsBookmarked(d.Id) {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %-28s %s (%d)\n", mark, d.Id, d.Title, d.Year)
	}
}

func (a *App) toggleBookmark(ctx context.Context, id string) {
	doc, ok := content.DocumentById(id)
	if !ok {
		fmt.Fprintf(a.out, "Unknown document: %s\n", id)
		return
	}
	a.bookmarks.ToggleBookmark(ctx, doc)
	if a.bookmarks.IsBookmarked(doc.Id) {
		fmt.Fprintf(a.out, "Bookmarked %s\n", doc.Title)
	} else {
		fmt.Fprintf(a.out, "Removed bookmark from %s\n", doc.Title)
	}
}

func (a *App) listBookmarks() {
	docs := a.bookmarks.BookmarkedDocuments()
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No bookmarks yet")
		return
	}
	for _, d := range docs {
		fmt.Fprintf(a.out, "%-28s %s (%d)\n", d.Id, d.Title, d.Year)
	}
}

func (a *App) showDocument(id string) {
	doc, ok := content.DocumentById(id)
	if !ok {
		fmt.Fprintf(a.out, "Unknown document: %s\n", id)
		return
	}
	fmt.Fprintf(a.out, "%s (%d)\n%s\n\n%s\n", doc.Title, doc.Year, doc.Subtitle, doc.Content)
}
