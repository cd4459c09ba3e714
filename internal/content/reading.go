package content

import "net/url"

// ReadingCategory groups recommended books by topic.
type ReadingCategory struct {
	Name        string
	Icon        string
	Description string
	Books       []Book
}

// Book is one entry in the recommended reading list. PurchaseURL may be
// empty; the library link is always derivable.
type Book struct {
	Title             string
	Author            string
	Year              int
	Description       string
	WhyIncluded       string
	PurchaseURL       string
	LibrarySearchTerm string
}

// LibraryURL returns a WorldCat search link for the book.
func (b Book) LibraryURL() string {
	return "https://www.worldcat.org/search?q=" + url.QueryEscape(b.LibrarySearchTerm)
}
