package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"TickerBoard/internal/usecase"
	"TickerBoard/pkg/config"
	xhttp "TickerBoard/pkg/http"
	applogger "TickerBoard/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	board      *usecase.Board
	httpServer *xhttp.Server
	logger     *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, board *usecase.Board, httpServer *xhttp.Server, l *applogger.Logger) *App {
	return &App{
		cfg:        cfg,
		board:      board,
		httpServer: httpServer,
		logger:     l,
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and blocks until ctx is done, then shuts
// everything down.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		a.board.Close()
		return err
	}
	a.logger.Info("board ready",
		applogger.String("environment", a.cfg.Environment),
		applogger.Int("tickers", a.board.Len()),
	)

	<-ctx.Done()
	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown stops accepting requests first, then tears down every session so
// in-flight fetches are cancelled and their results dropped.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	var err error
	if err = a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}
	a.board.Close()

	a.logger.Info("shutdown complete")
	return err
}
