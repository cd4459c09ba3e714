package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/peopleoverparty/pop/internal/content"
	"github.com/peopleoverparty/pop/internal/managers"
	"github.com/peopleoverparty/pop/internal/models"
)

// setManager maps a question set name to its manager. Returns nil for an
// unknown set.
func (a *App) setManager(set string) *managers.FlashcardManager {
	switch set {
	case models.QuestionSetNational:
		return a.national
	case models.QuestionSetState:
		return a.state
	}
	return nil
}

func questionText(set string, id int) (question, answer string, ok bool) {
	switch set {
	case models.QuestionSetNational:
		for _, q := range content.CivicsQuestions {
			if q.Id == id {
				return q.Question, q.Answer, true
			}
		}
	case models.QuestionSetState:
		for _, q := range content.SouthDakotaQuestions {
			if q.Id == id {
				return q.Question, q.Answer, true
			}
		}
	}
	return "", "", false
}

// viewCard marks the card viewed and shows its question and answer.
func (a *App) viewCard(ctx context.Context, set, idArg string) {
	m := a.setManager(set)
	if m == nil {
		fmt.Fprintf(a.out, "Unknown question set: %s (use national or state)\n", set)
		return
	}
	id, err := strconv.Atoi(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: view <set> <question number>")
		return
	}
	q, ans, ok := questionText(set, id)
	if !ok {
		fmt.Fprintf(a.out, "No question %d in the %s set\n", id, set)
		return
	}
	m.MarkViewed(ctx, id)
	fmt.Fprintf(a.out, "Q%d: %s\nA: %s\n", id, q, ans)
}

func (a *App) toggleKnown(ctx context.Context, set, idArg string) {
	m := a.setManager(set)
	if m == nil {
		fmt.Fprintf(a.out, "Unknown question set: %s (use national or state)\n", set)
		return
	}
	id, err := strconv.Atoi(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: know <set> <question number>")
		return
	}
	m.ToggleKnown(ctx, id)
	if m.IsKnown(id) {
		fmt.Fprintf(a.out, "Marked question %d as known\n", id)
	} else {
		fmt.Fprintf(a.out, "Marked question %d as not known\n", id)
	}
}

func (a *App) showProgress() {
	fmt.Fprintf(a.out, "national: %d/%d known, %d viewed\n",
		a.national.KnownCount(), a.national.TotalCount(), a.national.ViewedCount())
	fmt.Fprintf(a.out, "state:    %d/%d known, %d viewed\n",
		a.state.KnownCount(), a.state.TotalCount(), a.state.ViewedCount())
}

func (a *App) resetProgress(ctx context.Context, set string) {
	m := a.setManager(set)
	if m == nil {
		fmt.Fprintf(a.out, "Unknown question set: %s (use national or state)\n", set)
		return
	}
	m.ResetAllProgress(ctx)
	fmt.Fprintf(a.out, "Reset all %s progress\n", set)
}
