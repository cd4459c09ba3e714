package managers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/models"
	"github.com/peopleoverparty/pop/internal/repositories/checkins"
)

// checkInTimeLayout renders check-in times for CSV export
// (medium date, short time).
const checkInTimeLayout = "Jan 2, 2006 at 3:04 PM"

// recentCheckInLimit caps the Recent list.
const recentCheckInLimit = 10

// CheckInManager owns the event check-in history. Check-ins are append-only:
// no event-code validation and no duplicate prevention happen here (the UI
// enforces its own 4-digit code rule before calling in).
type CheckInManager struct {
	repo checkins.Repository
	log  logging.Logger

	now   func() time.Time
	newId func() string

	all    []models.CheckIn
	recent []models.CheckIn

	// Changed fires after every successful mutation.
	Changed Notifier
}

// NewCheckInManager builds a manager over repo and loads the history. Both
// lists are rebuilt by re-querying the store after every mutation rather
// than maintained incrementally; a failed load yields empty lists.
func NewCheckInManager(ctx context.Context, repo checkins.Repository, log logging.Logger) *CheckInManager {
	m := &CheckInManager{
		repo:  repo,
		log:   log.With("manager", "checkins"),
		now:   time.Now,
		newId: uuid.NewString,
	}
	m.load(ctx)
	return m
}

// All returns the full check-in history, newest first.
func (m *CheckInManager) All() []models.CheckIn { return m.all }

// Recent returns the newest check-ins, at most 10.
func (m *CheckInManager) Recent() []models.CheckIn { return m.recent }

// CheckIn records a new check-in with a fresh id and the current time, then
// reloads both lists.
func (m *CheckInManager) CheckIn(ctx context.Context, eventCode, eventName, volunteerName string) {
	c := &models.CheckIn{
		Id:            m.newId(),
		EventCode:     eventCode,
		EventName:     eventName,
		VolunteerName: volunteerName,
		CheckInTime:   m.now(),
	}

	if err := m.repo.Insert(ctx, c); err != nil {
		m.log.Error(ctx, "failed to save check-in", "event_code", eventCode, "error", err)
		return
	}

	m.load(ctx)
	m.Changed.publish()
}

// DeleteCheckIn removes one check-in and reloads the lists.
func (m *CheckInManager) DeleteCheckIn(ctx context.Context, c models.CheckIn) {
	if err := m.repo.Delete(ctx, c.Id); err != nil {
		m.log.Error(ctx, "failed to delete check-in", "id", c.Id, "error", err)
		return
	}

	m.load(ctx)
	m.Changed.publish()
}

// ClearAllCheckIns removes the whole history and reloads the lists.
func (m *CheckInManager) ClearAllCheckIns(ctx context.Context) {
	if err := m.repo.DeleteAll(ctx); err != nil {
		m.log.Error(ctx, "failed to clear check-ins", "error", err)
		return
	}

	m.load(ctx)
	m.Changed.publish()
}

// ExportCSV renders the full history as CSV text. Event name and volunteer
// name are wrapped in double quotes only when they contain a comma; the
// event code is assumed comma-free and never quoted.
func (m *CheckInManager) ExportCSV() string {
	var b strings.Builder
	b.WriteString("Event Name,Event Code,Volunteer Name,Check-In Time\n")

	for _, c := range m.all {
		b.WriteString(quoteIfComma(c.EventName))
		b.WriteString(",")
		b.WriteString(c.EventCode)
		b.WriteString(",")
		b.WriteString(quoteIfComma(c.VolunteerName))
		b.WriteString(",")
		b.WriteString(c.CheckInTime.Format(checkInTimeLayout))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *CheckInManager) load(ctx context.Context) {
	all, err := m.repo.ListAll(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to load check-ins", "error", err)
		m.all = nil
		m.recent = nil
		return
	}

	m.all = all
	if len(all) > recentCheckInLimit {
		m.recent = all[:recentCheckInLimit]
	} else {
		m.recent = all
	}
}

func quoteIfComma(s string) string {
	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}
