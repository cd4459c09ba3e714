// Package managers contains the four local persistence managers that sit
// between the UI layer and the SQLite store: bookmarks, flashcard progress
// (one instance per question set), event check-ins and newsletter signups.
//
// # Contract
//
// Every manager follows the same shape: it owns one record namespace in the
// store, keeps an in-memory cache answering read queries without I/O, and
// exposes mutating methods that persist first and update the cache only on
// success. Store failures are logged through logging.Logger and deliberately
// discarded, so the public methods are infallible from the caller's point of
// view; a failed write simply leaves the cache (and therefore the UI)
// unchanged, and a failed load hydrates an empty cache rather than a stale
// one.
//
// After each successful mutation a manager fires its Notifier so subscribed
// UI code can re-render.
//
// # Concurrency
//
// Managers are intended for a single logical caller (the foreground UI) and
// perform no internal locking. Wrap calls in your own synchronization if you
// must share one across goroutines.
//
// Key Types
//
//   - type BookmarkManager   — document bookmark id-set over the bookmarks table
//   - type FlashcardManager  — known/viewed id-sets per question set
//   - type CheckInManager    — event check-in history + CSV export
//   - type NewsletterManager — signup count, listing, CSV export to file
//   - type Notifier          — minimal callback-list pub-sub
package managers
