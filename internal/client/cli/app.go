package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/winkhq/onboard/internal/client/api"
	"github.com/winkhq/onboard/internal/client/config"
	"github.com/winkhq/onboard/internal/client/draft"
	"github.com/winkhq/onboard/internal/client/repositories/companies"
	"github.com/winkhq/onboard/internal/client/services"
	"github.com/winkhq/onboard/internal/client/storage"
	"github.com/winkhq/onboard/internal/logging"
)

type App struct {
	config       *config.Config
	db           *storage.DB
	store        *draft.Store
	auth         services.AuthService
	registration services.RegistrationService
	logger       logging.Logger

	userEmail string
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DraftDBPath)
	if err != nil {
		logger.Error(ctx, "failed to open local database", "error", err)
		return nil, err
	}

	adapter := api.NewHTTPAdapter(c.APIBaseURL)
	store := draft.NewStore(ctx, db.Drafts, logger)
	repo := companies.NewAPIRepository(adapter)

	return &App{
		config:       c,
		db:           db,
		store:        store,
		auth:         services.NewAuthService(adapter, db.Drafts, logger),
		registration: services.NewRegistrationService(store, repo, logger),
		logger:       logger,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

// Logout drops the persisted session token and forgets the current user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.userEmail = ""
	printlnFn("Logged out")
	return nil
}

// Discard throws away any saved registration draft.
func (a *App) Discard(ctx context.Context) error {
	a.store.ClearRegistration(ctx)
	printlnFn("Saved registration draft discarded")
	return nil
}
