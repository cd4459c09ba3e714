// Package cli provides the interactive People Over Party command line.
//
// It wires configuration, the on-device store and the persistence managers
// into a REPL. Commands cover the founding documents library and bookmarks,
// the two flashcard study sets, event check-ins and the newsletter signup
// sheet, including the CSV exports volunteers hand to organizers.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
