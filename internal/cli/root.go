package cli

import (
	"context"
	"fmt"
	"strings"
)

// Root runs the command loop. It reads a line, parses the first token as the
// command, and dispatches. The loop exits on EOF or "exit"/"quit". Command
// handlers report their own failures; the loop itself never errors out.
//
// Command lines are read from the same buffered reader the prompt helpers
// use, so lines queued behind a command stay available to its prompts.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "People Over Party (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, "pop> ")
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				break
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "docs":
			a.listDocuments()
		case "doc":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: doc <id>")
				continue
			}
			a.showDocument(args[0])
		case "bookmark":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: bookmark <document id>")
				continue
			}
			a.toggleBookmark(ctx, args[0])
		case "bookmarks":
			a.listBookmarks()
		case "legislators":
			district := ""
			if len(args) > 0 {
				district = args[0]
			}
			a.listLegislators(district)
		case "issues":
			a.listIssues()
		case "guides":
			a.listGuides()
		case "reading":
			a.listReading()

		case "questions":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: questions <national|state>")
				continue
			}
			a.listQuestions(args[0])
		case "view":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: view <national|state> <question number>")
				continue
			}
			a.viewCard(ctx, args[0], args[1])
		case "know":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "Usage: know <national|state> <question number>")
				continue
			}
			a.toggleKnown(ctx, args[0], args[1])
		case "progress":
			a.showProgress()
		case "reset":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: reset <national|state>")
				continue
			}
			a.resetProgress(ctx, args[0])

		case "checkin":
			a.addCheckIn(ctx)
		case "checkins":
			a.listCheckIns(len(args) > 0 && args[0] == "all")
		case "rmcheckin":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: rmcheckin <number>")
				continue
			}
			a.deleteCheckIn(ctx, args[0])
		case "clearcheckins":
			a.clearCheckIns(ctx)
		case "exportcheckins":
			a.exportCheckIns()

		case "signup":
			a.addSignup(ctx)
		case "signups":
			a.listSignups(ctx)
		case "exportsignups":
			a.exportSignups(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			break
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Documents:
  docs                     list founding documents
  doc <id>                 show a document
  bookmark <id>            toggle a bookmark
  bookmarks                list bookmarked documents
  legislators [district]   show the legislator directory
  issues                   explore issues from multiple perspectives
  guides                   list discussion guides
  reading                  show the recommended reading list
Flashcards:
  questions <set>          list a question set (set: national or state)
  view <set> <n>           study a card
  know <set> <n>           toggle known
  progress                 show study progress
  reset <set>              wipe a set's progress
Check-ins:
  checkin                  record a volunteer check-in
  checkins [all]           list recent (or all) check-ins
  rmcheckin <n>            delete one check-in
  clearcheckins            delete all check-ins
  exportcheckins           print check-ins as CSV
Newsletter:
  signup                   record a newsletter signup
  signups                  list signups
  exportsignups            write the signup CSV file
Other:
  help, exit`)
}
