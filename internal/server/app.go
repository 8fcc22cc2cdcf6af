// Package server wires configuration, storage, services and transports into
// a runnable notes server and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/logging"
	"github.com/dmitrijs2005/swingnotes/internal/server/auth"
	"github.com/dmitrijs2005/swingnotes/internal/server/config"
	"github.com/dmitrijs2005/swingnotes/internal/server/httpapi"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/swingnotes/internal/server/services"

	gs "github.com/dmitrijs2005/swingnotes/internal/server/grpc"
)

const readHeaderTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	handler http.Handler
}

// NewApp opens the database, applies migrations and builds the HTTP handler.
// Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.New(c.Env, w)

	secret := c.SecretKey
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret generation error: %w", err)
		}
		secret = s
		logger.Warn(ctx, "no token secret configured, using a random one; tokens will not survive a restart")
	}

	db, rm, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(secret), c.TokenValidityDuration)
	us := services.NewUserService(db, rm, issuer)
	ns := services.NewNoteService(db, rm)

	h := httpapi.NewHandler(logger, us, ns, issuer, db)

	return &App{config: c, logger: logger, db: db, handler: h.Routes()}, nil
}

// Handler returns the REST API handler.
func (app *App) Handler() http.Handler {
	return app.handler
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	lis, err := net.Listen("tcp", app.config.EndpointAddrHTTP)
	if err != nil {
		app.logger.Error(ctx, "http listen error", "error", err)
		cancelFunc()
		return
	}

	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		app.logger.Info(context.Background(), "Stopping HTTP server...")

		sctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			app.logger.Error(sctx, "http shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, "http server error", "error", err)
		cancelFunc()
	}

	// in-flight requests drain before the database is closed
	<-stopped
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server error", "error", err)
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a stop signal arrives or a listener
// fails, then shuts everything down and closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "env", app.config.Env)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return app.db.Close()
}
