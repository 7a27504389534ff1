//go:build wireinject
// +build wireinject

package di

import (
	"TickerBoard/internal/domain/service"
	"TickerBoard/internal/usecase"
	"TickerBoard/pkg/config"
	"TickerBoard/pkg/server"

	"github.com/google/wire"
)

var boardSet = wire.NewSet(
	// Infrastructure
	ProvideLogger,
	ProvideRegistry,
	ProvideMetrics,
	ProvideHTTPClient,

	// Use cases
	ProvideResolver,
	wire.Bind(new(service.QuoteResolver), new(*usecase.Resolver)),
	ProvideBoard,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		boardSet,

		// Transport
		ProvideLimiter,
		ProvideBoardHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeBoard wires a standalone board for command-line use.
func InitializeBoard(cfg *config.Config) (*usecase.Board, error) {
	wire.Build(boardSet)
	return &usecase.Board{}, nil
}
