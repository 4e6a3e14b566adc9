package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/Mystogan321/useradmin/internal/backend/auth"
	"github.com/Mystogan321/useradmin/internal/backend/repository"
	"github.com/Mystogan321/useradmin/internal/backend/services"
	"github.com/Mystogan321/useradmin/internal/config"
	"github.com/Mystogan321/useradmin/internal/docstore"
	"github.com/Mystogan321/useradmin/internal/logging"
	"github.com/Mystogan321/useradmin/internal/panel/client"
	"github.com/Mystogan321/useradmin/internal/panel/coordinator"
	"github.com/Mystogan321/useradmin/internal/panel/session"
	"github.com/Mystogan321/useradmin/internal/panel/view"
)

// App wires the whole console together: the document store, the in-process
// backend, the local transport client, the session gate, the view controller
// and the mutation coordinator.
type App struct {
	config *config.Config
	log    logging.Logger

	store  docstore.Store
	client client.Client
	gate   *session.Gate
	view   *view.Controller
	coord  *coordinator.Coordinator
	reader *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := docstore.New(ctx, cfg.Storage)
	if err != nil {
		log.Error(ctx, "error initializing document store", "error", err)
		return nil, err
	}

	repo, err := repository.NewDocumentRepository(ctx, store)
	if err != nil {
		log.Error(ctx, "error initializing repository", "error", err)
		return nil, err
	}

	userSvc := services.NewUserService(repo, log)
	authSvc := services.NewAuthService(repo, []byte(cfg.SecretKey), cfg.TokenValidity, log)

	apiClient := client.NewLocalClient(userSvc, authSvc, cfg.TransportLatency)

	verify := func(token string) (string, error) {
		return auth.GetUserIDFromToken(token, []byte(cfg.SecretKey))
	}

	v := view.NewController(cfg.ItemsPerPage)

	return &App{
		config: cfg,
		log:    log,
		store:  store,
		client: apiClient,
		gate:   session.NewGate(apiClient, store, verify, log),
		view:   v,
		coord:  coordinator.New(apiClient, v, log),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.gate.Authenticated()
}

// Run restores a persisted session if there is one and drops into the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if ok, err := a.gate.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	} else if ok {
		printlnFn("Welcome back,", a.gate.User().Name)
		if err := a.coord.Refresh(ctx); err == nil {
			_ = a.List(ctx)
		}
	}

	a.Root(ctx)
}

func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing client", "error", err)
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing document store", "error", err)
	}
}
