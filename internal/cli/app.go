package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/postill/internal/api"
	"github.com/dmitrijs2005/postill/internal/cart"
	"github.com/dmitrijs2005/postill/internal/catalog"
	"github.com/dmitrijs2005/postill/internal/checkout"
	"github.com/dmitrijs2005/postill/internal/config"
	"github.com/dmitrijs2005/postill/internal/logging"
	"github.com/dmitrijs2005/postill/internal/session"
	"github.com/dmitrijs2005/postill/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the stores and services together and carries the per-run state
// of the terminal.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	api      *api.Client
	session  *session.Store
	cart     *cart.Store
	catalog  *catalog.Service
	checkout *checkout.Service
	reader   *bufio.Reader
}

// NewApp opens the durable store, builds the API client and the stores, and
// rehydrates session and cart state. Malformed persisted state is discarded
// by the stores themselves; only infrastructure failures propagate.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, repo, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := api.New(c.APIBaseURL, c.HTTPTimeout, log)

	sessionStore := session.NewStore(apiClient, repo, log)
	cartStore := cart.NewStore(repo, log)

	app := &App{
		config:   c,
		log:      log,
		db:       db,
		api:      apiClient,
		session:  sessionStore,
		cart:     cartStore,
		catalog:  catalog.NewService(apiClient, log),
		checkout: checkout.NewService(apiClient, cartStore, sessionStore, log),
		reader:   bufio.NewReader(os.Stdin),
	}

	if err := sessionStore.Restore(ctx); err != nil {
		log.Warn(ctx, "session restore failed, starting unauthenticated", "error", err)
	}
	if exp, ok := sessionStore.TokenExpiry(); ok && time.Now().After(exp) {
		log.Warn(ctx, "stored session token is expired, API calls will fail until re-login", "expired_at", exp)
	}
	if err := cartStore.Restore(ctx); err != nil {
		log.Warn(ctx, "cart restore failed, starting empty", "error", err)
	}

	return app, nil
}

// Run starts the REPL and blocks until the operator exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the durable store handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// getStatus renders the prompt decoration: operator name and cart size.
func (a *App) getStatus() string {
	s := ""
	if u := a.session.Current(); u != nil {
		s = u.Name
	}
	if n := a.cart.TotalItems(); n > 0 {
		if s != "" {
			s += " "
		}
		s += "cart:" + strconv.Itoa(n)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}
