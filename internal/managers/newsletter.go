package managers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peopleoverparty/pop/internal/filex"
	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/models"
	"github.com/peopleoverparty/pop/internal/repositories/signups"
)

// signupDateLayout renders signup dates for CSV export
// (short date, short time).
const signupDateLayout = "1/2/06, 3:04 PM"

// SignupExportFileName is the fixed file the newsletter export writes to;
// repeated exports overwrite it.
const SignupExportFileName = "pop_newsletter_signups.csv"

// NewsletterManager owns the newsletter signup records. Signups are
// append-only with no uniqueness on the email address, and no exposed
// operation ever deletes one.
type NewsletterManager struct {
	repo      signups.Repository
	log       logging.Logger
	exportDir string

	now   func() time.Time
	newId func() string

	count int

	// Changed fires after every successful mutation.
	Changed Notifier
}

// NewNewsletterManager builds a manager over repo; exportDir is where
// ExportToFile writes its CSV. The signup count is derived from a count-only
// store query (0 if it fails), not from a cached list.
func NewNewsletterManager(ctx context.Context, repo signups.Repository, exportDir string, log logging.Logger) *NewsletterManager {
	m := &NewsletterManager{
		repo:      repo,
		log:       log.With("manager", "newsletter"),
		exportDir: exportDir,
		now:       time.Now,
		newId:     uuid.NewString,
	}
	m.updateCount(ctx)
	return m
}

// Count is the current number of signups.
func (m *NewsletterManager) Count() int { return m.count }

// AddSignup records a new signup with a fresh id and the current time. The
// synced flag starts false and nothing in this layer ever sets it; it is a
// placeholder for a future server-side sync collaborator.
func (m *NewsletterManager) AddSignup(ctx context.Context, name, email string) {
	s := &models.Signup{
		Id:         m.newId(),
		Name:       name,
		Email:      email,
		SignupDate: m.now(),
		Synced:     false,
	}

	if err := m.repo.Insert(ctx, s); err != nil {
		m.log.Error(ctx, "failed to save signup", "error", err)
		return
	}

	m.updateCount(ctx)
	m.Changed.publish()
}

// AllSignups fetches every signup, newest first. No caching; a failed fetch
// is logged and yields an empty list.
func (m *NewsletterManager) AllSignups(ctx context.Context) []models.Signup {
	result, err := m.repo.ListAll(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to fetch signups", "error", err)
		return nil
	}
	return result
}

// ExportCSV renders all signups as CSV text. Unlike the check-in export,
// every field is wrapped in double quotes regardless of content; commas
// inside the name are replaced with a space beforehand rather than escaped.
func (m *NewsletterManager) ExportCSV(ctx context.Context) string {
	var b strings.Builder
	b.WriteString("Name,Email,Signup Date\n")

	for _, s := range m.AllSignups(ctx) {
		name := strings.ReplaceAll(s.Name, ",", " ")
		b.WriteString(`"` + name + `",`)
		b.WriteString(`"` + s.Email + `",`)
		b.WriteString(`"` + s.SignupDate.Format(signupDateLayout) + `"`)
		b.WriteString("\n")
	}

	return b.String()
}

// ExportToFile writes the CSV to SignupExportFileName inside the export
// directory, overwriting any previous export, and returns the full path.
// A failed write is logged and returns an empty path.
func (m *NewsletterManager) ExportToFile(ctx context.Context) string {
	csv := m.ExportCSV(ctx)

	path, err := filex.WriteString(m.exportDir, SignupExportFileName, csv)
	if err != nil {
		m.log.Error(ctx, "failed to write signup export", "error", err)
		return ""
	}

	return path
}

func (m *NewsletterManager) updateCount(ctx context.Context) {
	n, err := m.repo.Count(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to count signups", "error", err)
		m.count = 0
		return
	}
	m.count = n
}
