package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/peopleoverparty/pop/internal/content"
	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/managers"
	"github.com/peopleoverparty/pop/internal/models"
	"github.com/peopleoverparty/pop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	repos, db, err := store.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logging.Nop()
	out := &bytes.Buffer{}

	return &App{
		db:         db,
		log:        log,
		bookmarks:  managers.NewBookmarkManager(ctx, repos.Bookmarks, content.Documents, log),
		national:   managers.NewFlashcardManager(ctx, repos.Progress, models.QuestionSetNational, len(content.CivicsQuestions), log),
		state:      managers.NewFlashcardManager(ctx, repos.Progress, models.QuestionSetState, len(content.SouthDakotaQuestions), log),
		checkIns:   managers.NewCheckInManager(ctx, repos.CheckIns, log),
		newsletter: managers.NewNewsletterManager(ctx, repos.Signups, t.TempDir(), log),
		reader:     bufio.NewReader(strings.NewReader(input)),
		out:        out,
	}, out
}

func TestToggleBookmarkCommand(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "")

	app.toggleBookmark(ctx, "constitution")
	assert.Contains(t, out.String(), "Bookmarked The Constitution")

	out.Reset()
	app.listBookmarks()
	assert.Contains(t, out.String(), "constitution")

	out.Reset()
	app.toggleBookmark(ctx, "constitution")
	assert.Contains(t, out.String(), "Removed bookmark")

	out.Reset()
	app.toggleBookmark(ctx, "nope")
	assert.Contains(t, out.String(), "Unknown document")
}

func TestViewCardCommand(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "")

	app.viewCard(ctx, "national", "1")
	assert.Contains(t, out.String(), "supreme law of the land")
	assert.Equal(t, 1, app.national.ViewedCount())
	assert.Equal(t, 0, app.state.ViewedCount())

	out.Reset()
	app.viewCard(ctx, "national", "999")
	assert.Contains(t, out.String(), "No question 999")

	out.Reset()
	app.viewCard(ctx, "galactic", "1")
	assert.Contains(t, out.String(), "Unknown question set")
}

func TestKnowAndResetCommands(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "")

	app.toggleKnown(ctx, "state", "2")
	assert.Contains(t, out.String(), "as known")
	assert.Equal(t, 1, app.state.KnownCount())

	out.Reset()
	app.showProgress()
	assert.Contains(t, out.String(), "state:    1/100 known")

	out.Reset()
	app.resetProgress(ctx, "state")
	assert.Equal(t, 0, app.state.KnownCount())
	assert.Contains(t, out.String(), "Reset all state progress")
}

func TestCheckInCommands(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "RALLY24\nFall Rally\nPat Smith\n")

	app.addCheckIn(ctx)
	assert.Contains(t, out.String(), "Checked in Pat Smith at Fall Rally")

	out.Reset()
	app.listCheckIns(false)
	assert.Contains(t, out.String(), "Pat Smith @ Fall Rally (RALLY24)")

	out.Reset()
	app.deleteCheckIn(ctx, "1")
	assert.Contains(t, out.String(), "Deleted")
	assert.Empty(t, app.checkIns.All())

	out.Reset()
	app.deleteCheckIn(ctx, "5")
	assert.Contains(t, out.String(), "No check-in number 5")
}

func TestClearCheckInsRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "no\n")

	app.checkIns.CheckIn(ctx, "C1", "Event", "Vol")
	app.clearCheckIns(ctx)
	assert.Contains(t, out.String(), "Cancelled")
	assert.Len(t, app.checkIns.All(), 1)
}

func TestSignupCommands(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "Jane Doe\njane@example.com\nBad\nnot-an-email\n")

	app.addSignup(ctx)
	assert.Contains(t, out.String(), "Signed up Jane Doe (1 total)")

	out.Reset()
	app.addSignup(ctx)
	assert.Contains(t, out.String(), "valid email are required")
	assert.Equal(t, 1, app.newsletter.Count())

	out.Reset()
	app.listSignups(ctx)
	assert.Contains(t, out.String(), "Jane Doe <jane@example.com>")

	out.Reset()
	app.exportSignups(ctx)
	assert.Contains(t, out.String(), managers.SignupExportFileName)
}

func TestListLegislators(t *testing.T) {
	app, out := setupApp(t, "")

	app.listLegislators("")
	assert.Contains(t, out.String(), "John Thune")
	assert.Contains(t, out.String(), "U.S. Senator")

	out.Reset()
	app.listLegislators("15")
	assert.Contains(t, out.String(), "Reynold Nesiba")
	assert.Contains(t, out.String(), "Linda Duba")
	assert.NotContains(t, out.String(), "John Thune")

	out.Reset()
	app.listLegislators("99")
	assert.Contains(t, out.String(), "No legislators listed")
}

func TestListQuestionsShowsKnownMarks(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "")

	app.national.ToggleKnown(ctx, 1)
	app.listQuestions("national")

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "+   1.")
	assert.Contains(t, lines[1], "    2.")
}

func TestRootUnknownCommandAndExit(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "bogus\nexit\n")

	app.Root(ctx)
	assert.Contains(t, out.String(), "Unknown command: bogus")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRootFeedsPromptAnswersToCommands(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "checkin\n0472\nTown Hall\nA Volunteer\nexit\n")

	app.Root(ctx)

	assert.NotContains(t, out.String(), "Unknown command")
	assert.Contains(t, out.String(), "Checked in A Volunteer at Town Hall")
	require.Len(t, app.checkIns.All(), 1)
	assert.Equal(t, "0472", app.checkIns.All()[0].EventCode)
}

func TestRootConfirmsClearThroughPrompt(t *testing.T) {
	ctx := context.Background()
	app, _ := setupApp(t, "checkin\nC1\nEvent\nVol\nclearcheckins\nyes\nexit\n")

	app.Root(ctx)
	assert.Empty(t, app.checkIns.All())
}

func TestRootRunsLastLineWithoutNewline(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "progress")

	app.Root(ctx)
	assert.Contains(t, out.String(), "national: 0/100 known")
}

func TestBrowseContentCommands(t *testing.T) {
	ctx := context.Background()
	app, out := setupApp(t, "issues\nguides\nreading\nexit\n")

	app.Root(ctx)

	assert.Contains(t, out.String(), "Immigration")
	assert.Contains(t, out.String(), "Progressive View")
	assert.Contains(t, out.String(), "Talking Across the Table")
	assert.Contains(t, out.String(), "Understanding Polarization")
	assert.Contains(t, out.String(), "worldcat.org")
}
