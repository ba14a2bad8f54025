package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/config"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/storage"
	"github.com/dmitrijs2005/accountkeeper/internal/users"
	"github.com/google/uuid"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager storage.Manager
	service *users.Service
	reader  *bufio.Reader
}

// NewApp wires a ready-to-run application from config: structured logger with
// a per-run correlation id, storage backend (migrated on open), password
// hasher and the account service on top of them.
func NewApp(cfg *config.Config) (*App, error) {

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logger := logging.NewJSONLogger(os.Stderr, level).With("run_id", uuid.NewString())

	manager, err := newManager(cfg)
	if err != nil {
		logger.Error(context.Background(), "error initializing storage", "backend", cfg.Backend, "error", err)
		return nil, err
	}

	hasher, err := newHasher(cfg.HashScheme)
	if err != nil {
		_ = manager.Close()
		return nil, err
	}

	service := users.NewService(manager.Users(), hasher)

	return &App{
		config:  cfg,
		logger:  logger,
		manager: manager,
		service: service,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func newManager(cfg *config.Config) (storage.Manager, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return storage.NewSQLiteManager(cfg.DatabasePath)
	case config.BackendPostgres:
		return storage.NewPostgresManager(cfg.DatabaseDSN)
	case config.BackendMemory:
		return storage.NewMemoryManager()
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrorUnsupportedBackend, cfg.Backend)
	}
}

func newHasher(scheme string) (users.PasswordHasher, error) {
	switch scheme {
	case config.HashSchemeSHA256:
		return users.SHA256Hasher{}, nil
	case config.HashSchemeArgon2id:
		return users.NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrorUnsupportedHashScheme, scheme)
	}
}

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s)", a.config.Backend)
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.manager.Close(); err != nil {
			a.logger.Error(ctx, "error closing storage", "error", err)
		}
	}()

	a.logger.Info(ctx, "accountkeeper started",
		"backend", a.config.Backend, "hash_scheme", a.config.HashScheme)

	printlnFn("Welcome to accountkeeper (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
