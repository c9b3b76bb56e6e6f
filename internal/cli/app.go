package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"slambook/internal/api"
	"slambook/internal/config"
	"slambook/internal/logging"
	"slambook/internal/query"
	"slambook/internal/services"
	"slambook/internal/session"
	"slambook/internal/store"
)

// App wires configuration, the local database, the API client, and the
// application services behind an interactive REPL.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	auth    services.AuthService
	remote  dataFacade
	local   dataFacade
	store   *store.Store

	useLocal bool
	view     query.Params

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, rehydrates any persisted session, and
// builds both data paths.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr, parseLevel(cfg.LogLevel))

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}

	kv := store.NewKV(db)
	sess := session.NewStore(kv, log)
	if err := sess.Rehydrate(ctx); err != nil {
		log.Warn(ctx, "session rehydration failed", "error", err)
	}

	client := api.NewHTTPClient(cfg.BaseURL, sess, sess.Evict, log,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithReadRetries(cfg.ReadRetries),
		api.WithBackoff(cfg.RetryBackoff),
	)

	localStore := store.New(db, log)

	app := &App{
		config:   cfg,
		log:      log,
		db:       db,
		session:  sess,
		auth:     services.NewAuthService(client, sess),
		remote:   &remoteFacade{svc: services.NewEntryService(client, log)},
		local:    &localFacade{store: localStore},
		store:    localStore,
		useLocal: cfg.LocalMode,
		view:     query.Params{Tag: query.TagFilterAll, Sort: query.SortNewest},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	return app, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(a.out, "Welcome to the slambook CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, scanner, a.out)
}

// facade returns the active data path.
func (a *App) facade() dataFacade {
	if a.useLocal {
		return a.local
	}
	return a.remote
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) isLocal() bool {
	return a.useLocal
}

// status renders the prompt suffix: the user's name, if any, and the mode.
func (a *App) status() string {
	parts := []string{}
	if user, ok := a.session.User(); ok {
		parts = append(parts, user.Name)
	}
	if a.useLocal {
		parts = append(parts, "local")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
