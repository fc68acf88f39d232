// Package server wires configuration, storage, code delivery and the
// credential lifecycle service into the gRPC server and runs it until an
// OS signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/dailylog/internal/logging"
	"github.com/dmitrijs2005/dailylog/internal/server/config"
	"github.com/dmitrijs2005/dailylog/internal/server/notify"
	"github.com/dmitrijs2005/dailylog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/dailylog/internal/server/services"

	gs "github.com/dmitrijs2005/dailylog/internal/server/grpc"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// openDB is a test seam for sql.Open.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repoManager repomanager.RepositoryManager
	authService *services.AuthService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	n, err := notify.New(ctx, c, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("notifier init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	as := services.NewAuthService(db, rm, n, c, logger)

	return &App{config: c, logger: logger, db: db, repoManager: rm, authService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run applies migrations and serves until ctx is cancelled or a signal
// arrives. The database is closed on return.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repoManager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		return err
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "Stopped")
	return nil
}
