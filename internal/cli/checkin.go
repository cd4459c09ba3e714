package cli

import (
	"context"
	"fmt"
	"strconv"
)

const checkInListLayout = "Jan 2, 2006 3:04 PM"

func (a *App) addCheckIn(ctx context.Context) {
	code, err := GetSimpleText(a.reader, "Event code", a.out)
	if err != nil {
		return
	}
	name, err := GetSimpleText(a.reader, "Event name", a.out)
	if err != nil {
		return
	}
	volunteer, err := GetSimpleText(a.reader, "Volunteer name", a.out)
	if err != nil {
		return
	}
	a.checkIns.CheckIn(ctx, code, name, volunteer)
	fmt.Fprintf(a.out, "Checked in %s at %s\n", volunteer, name)
}

func (a *App) listCheckIns(all bool) {
	rows := a.checkIns.Recent()
	if all {
		rows = a.checkIns.All()
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No check-ins recorded")
		return
	}
	for i, c := range rows {
		fmt.Fprintf(a.out, "%2d. %s  %s @ %s (%s)\n",
			i+1, c.CheckInTime.Format(checkInListLayout), c.VolunteerName, c.EventName, c.EventCode)
	}
}

// deleteCheckIn removes the check-in at the given 1-based position in the
// full newest-first list.
func (a *App) deleteCheckIn(ctx context.Context, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: rmcheckin <number>")
		return
	}
	all := a.checkIns.All()
	if n < 1 || n > len(all) {
		fmt.Fprintf(a.out, "No check-in number %d\n", n)
		return
	}
	a.checkIns.DeleteCheckIn(ctx, all[n-1])
	fmt.Fprintln(a.out, "Deleted")
}

func (a *App) clearCheckIns(ctx context.Context) {
	confirm, err := GetSimpleText(a.reader, "Delete ALL check-ins? (yes/no)", a.out)
	if err != nil || confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}
	a.checkIns.ClearAllCheckIns(ctx)
	fmt.Fprintln(a.out, "All check-ins deleted")
}

func (a *App) exportCheckIns() {
	fmt.Fprint(a.out, a.checkIns.ExportCSV())
}
