// Package server initializes and runs the password manager server.
// It opens the credential store, builds the token registry and the
// three services, handles graceful shutdown, and starts the gRPC
// endpoints.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/soteriapass/pswmgr/internal/logging"
	"github.com/soteriapass/pswmgr/internal/server/auth"
	"github.com/soteriapass/pswmgr/internal/server/authn"
	"github.com/soteriapass/pswmgr/internal/server/config"
	"github.com/soteriapass/pswmgr/internal/server/credstore"
	"github.com/soteriapass/pswmgr/internal/server/provisioning"
	"github.com/soteriapass/pswmgr/internal/server/qrx"
	"github.com/soteriapass/pswmgr/internal/server/vault"

	gs "github.com/soteriapass/pswmgr/internal/server/grpc"
)

type App struct {
	config              *config.Config
	logger              logging.Logger
	store               credstore.Store
	registry            *auth.Registry
	authnService        *authn.Service
	vaultService        *vault.Service
	provisioningService *provisioning.Service
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	store, err := credstore.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("credential store init error: %w", err)
	}

	registry := auth.NewRegistry(c.TokenTTL)

	as := authn.NewService(store, registry)
	vs := vault.NewService(store)
	ps := provisioning.NewService(store, registry, qrx.NewPNGRenderer())

	return &App{
		config:              c,
		logger:              logger,
		store:               store,
		registry:            registry,
		authnService:        as,
		vaultService:        vs,
		provisioningService: ps,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config, app.logger, app.registry,
		app.authnService, app.vaultService, app.provisioningService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
