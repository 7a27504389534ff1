package di

import (
	"fmt"

	"TickerBoard/internal/domain/repository"
	"TickerBoard/internal/domain/service"
	"TickerBoard/internal/handler/api"
	"TickerBoard/internal/service/alphavantage"
	"TickerBoard/internal/service/fixture"
	"TickerBoard/internal/usecase"
	"TickerBoard/pkg/config"
	xhttp "TickerBoard/pkg/http"
	applogger "TickerBoard/pkg/logger"
	"TickerBoard/pkg/metrics"
	"TickerBoard/pkg/ratelimit"
	"TickerBoard/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger builds the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(applogger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates the Prometheus registry shared by the recorder and
// the HTTP layer.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

// ProvideHTTPClient creates the outbound client used by the remote tier.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.AlphaVantage.Timeout))
}

// ProvideResolver wires the fixture tier in front of Alpha Vantage.
func ProvideResolver(cfg *config.Config, hc *xhttp.Client, m repository.Metrics, l *applogger.Logger) *usecase.Resolver {
	remote := alphavantage.New(cfg.AlphaVantage.APIKey, cfg.AlphaVantage.BaseURL, hc, l)
	return usecase.NewResolver(fixture.New(nil), remote, m, l)
}

// ProvideBoard creates the board seeded with the configured tickers.
func ProvideBoard(cfg *config.Config, resolver service.QuoteResolver, m repository.Metrics, l *applogger.Logger) *usecase.Board {
	return usecase.NewBoard(resolver, m, l, usecase.WithInitialTickers(cfg.Board.InitialTickers))
}

// ProvideLimiter creates the throttle for mutating HTTP calls.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
}

// ProvideBoardHandler creates the REST and stream handler.
func ProvideBoardHandler(cfg *config.Config, l *applogger.Logger, board *usecase.Board, limiter *ratelimit.Limiter) *api.BoardEchoHandler {
	return api.NewBoardEchoHandler(l, board, limiter,
		api.WithStreamTimings(cfg.Stream.PingInterval, cfg.Stream.WriteTimeout),
	)
}

// ProvideHTTPServer creates the Echo server.
func ProvideHTTPServer(cfg *config.Config, h *api.BoardEchoHandler, reg *prometheus.Registry, l *applogger.Logger) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithLogger(l),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(reg, cfg.Metrics.Path))
	}
	return xhttp.NewServer(h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, board *usecase.Board, srv *xhttp.Server, l *applogger.Logger) *server.App {
	return server.New(cfg, board, srv, l)
}
