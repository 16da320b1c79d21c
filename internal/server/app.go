// Package server initializes and runs the CareerNet API server. It opens the
// database, applies migrations, wires services and the HTTP router, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/avelichko/careernet/internal/logging"
	"github.com/avelichko/careernet/internal/server/config"
	"github.com/avelichko/careernet/internal/server/email"
	"github.com/avelichko/careernet/internal/server/httpapi"
	"github.com/avelichko/careernet/internal/server/repositories/repomanager"
	"github.com/avelichko/careernet/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	mail   *email.Dispatcher
	server *http.Server
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	mail := email.NewDispatcher(email.NewSMTPSender(c.SMTPAddr, c.SMTPFrom))

	userService := services.NewUserService(db, m, c, mail)
	postService := services.NewPostService(db, m)
	connectionService := services.NewConnectionService(db, m)
	notificationService := services.NewNotificationService(db, m)
	imageService := services.NewImageService(c)

	cookies := httpapi.NewCookiePolicy(c, userService.SessionValidity())

	api := httpapi.NewServer(logger, userService, postService,
		connectionService, notificationService, imageService, cookies)

	srv := &http.Server{
		Addr:    c.EndpointAddr,
		Handler: api.Routes(),
	}

	return &App{config: c, logger: logger, db: db, mail: mail, server: srv}, nil
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

// drainMailErrors logs send failures from the welcome-email dispatcher.
func (app *App) drainMailErrors(ctx context.Context) {
	for err := range app.mail.Errors() {
		app.logger.Warn(ctx, "welcome email failed", "error", err)
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	app.logger.Info(ctx, "starting http server", "addr", app.config.EndpointAddr)

	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.drainMailErrors(ctx)
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	app.mail.Close()

	if err := app.db.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}

	wg.Wait()
}
