package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/peopleoverparty/pop/internal/config"
	"github.com/peopleoverparty/pop/internal/content"
	"github.com/peopleoverparty/pop/internal/logging"
	"github.com/peopleoverparty/pop/internal/managers"
	"github.com/peopleoverparty/pop/internal/models"
	"github.com/peopleoverparty/pop/internal/store"

	_ "modernc.org/sqlite"
)

// App bundles the managers behind the REPL. One instance per process; the
// managers assume a single caller.
type App struct {
	config *config.Config
	db     *sql.DB
	log    logging.Logger

	bookmarks  *managers.BookmarkManager
	national   *managers.FlashcardManager
	state      *managers.FlashcardManager
	checkIns   *managers.CheckInManager
	newsletter *managers.NewsletterManager

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return &App{
		config:     c,
		db:         db,
		log:        log,
		bookmarks:  managers.NewBookmarkManager(ctx, repos.Bookmarks, content.Documents, log),
		national:   managers.NewFlashcardManager(ctx, repos.Progress, models.QuestionSetNational, len(content.CivicsQuestions), log),
		state:      managers.NewFlashcardManager(ctx, repos.Progress, models.QuestionSetState, len(content.SouthDakotaQuestions), log),
		checkIns:   managers.NewCheckInManager(ctx, repos.CheckIns, log),
		newsletter: managers.NewNewsletterManager(ctx, repos.Signups, c.ExportDir, log),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
