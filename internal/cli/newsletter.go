package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) addSignup(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	if name == "" || !strings.Contains(email, "@") {
		fmt.Fprintln(a.out, "A name and a valid email are required")
		return
	}
	a.newsletter.AddSignup(ctx, name, email)
	fmt.Fprintf(a.out, "Signed up %s (%d total)\n", name, a.newsletter.Count())
}

func (a *App) listSignups(ctx context.Context) {
	rows := a.newsletter.AllSignups(ctx)
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No signups yet")
		return
	}
	for i, s := range rows {
		fmt.Fprintf(a.out, "%2d. %s <%s>\n", i+1, s.Name, s.Email)
	}
}

func (a *App) exportSignups(ctx context.Context) {
	path := a.newsletter.ExportToFile(ctx)
	if path == "" {
		fmt.Fprintln(a.out, "Export failed, see log")
		return
	}
	fmt.Fprintf(a.out, "Wrote %s\n", path)
}
