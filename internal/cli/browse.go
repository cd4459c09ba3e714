package cli

import (
	"fmt"
	"strconv"

	"github.com/peopleoverparty/pop/internal/content"
	"github.com/peopleoverparty/pop/internal/managers"
	"github.com/peopleoverparty/pop/internal/models"
)

// listLegislators shows the directory, optionally narrowed to one state
// legislative district.
func (a *App) listLegislators(districtArg string) {
	ls := content.AllLegislators()
	if districtArg != "" {
		d, err := strconv.Atoi(districtArg)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: legislators [district number]")
			return
		}
		ls = content.LegislatorsForDistrict(d)
		if len(ls) == 0 {
			fmt.Fprintf(a.out, "No legislators listed for district %d\n", d)
			return
		}
	}
	for _, l := range ls {
		fmt.Fprintf(a.out, "%-20s %-18s %-10s %s (%s)\n",
			l.Name, l.DisplayTitle(), l.DistrictDisplay(), l.Party.FullName(), l.Hometown)
	}
}

// listQuestions prints a question set's table of contents with per-card
// study state.
func (a *App) listQuestions(set string) {
	m := a.setManager(set)
	if m == nil {
		fmt.Fprintf(a.out, "Unknown question set: %s (use national or state)\n", set)
		return
	}
	switch set {
	case models.QuestionSetNational:
		for _, q := range content.CivicsQuestions {
			fmt.Fprintf(a.out, "%s %3d. %s\n", a.cardMark(m, q.Id), q.Id, q.Question)
		}
	case models.QuestionSetState:
		for _, q := range content.SouthDakotaQuestions {
			fmt.Fprintf(a.out, "%s %3d. %s\n", a.cardMark(m, q.Id), q.Id, q.Question)
		}
	}
}

// listIssues shows the issue explorer: each issue's summary and every
// perspective's core argument, preceded by the standing disclaimer.
func (a *App) listIssues() {
	fmt.Fprintln(a.out, content.IssueDisclaimer)
	for _, is := range content.Issues {
		fmt.Fprintf(a.out, "\n%s\n  %s\n", is.Name, is.Summary)
		for _, p := range is.Perspectives {
			fmt.Fprintf(a.out, "  - %s: %s\n", p.Label, p.CoreArgument)
		}
		if is.CommonGround != "" {
			fmt.Fprintf(a.out, "  Common ground: %s\n", is.CommonGround)
		}
	}
}

func (a *App) listGuides() {
	for _, g := range content.DiscussionGuides {
		fmt.Fprintf(a.out, "%s\n  %s (%s, %s)\n", g.Title, g.Subtitle, g.Duration, g.GroupSize)
	}
}

func (a *App) listReading() {
	for _, c := range content.ReadingCategories {
		fmt.Fprintf(a.out, "%s: %s\n", c.Name, c.Description)
		for _, b := range c.Books {
			fmt.Fprintf(a.out, "  %s, %s (%d)\n    %s\n", b.Title, b.Author, b.Year, b.LibraryURL())
		}
	}
}

func (a *App) cardMark(m *managers.FlashcardManager, id int) string {
	if m.IsKnown(id) {
		return "+"
	}
	return " "
}
