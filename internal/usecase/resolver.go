package usecase

import (
	"context"

	"TickerBoard/internal/domain/models"
	drepo "TickerBoard/internal/domain/repository"
	"TickerBoard/internal/service/normalize"
	applogger "TickerBoard/pkg/logger"
)

// Resolver implements service.QuoteResolver with a fixed two-tier strategy:
// the fixture source first, the remote source only when the fixture reports
// NoData. Known symbols therefore never consume remote quota.
type Resolver struct {
	fixture drepo.QuoteSource
	remote  drepo.QuoteSource
	metrics drepo.Metrics
	logger  *applogger.Logger
}

// NewResolver creates a new Resolver instance.
func NewResolver(fixture, remote drepo.QuoteSource, metrics drepo.Metrics, l *applogger.Logger) *Resolver {
	if l == nil {
		l = applogger.Nop()
	}
	return &Resolver{fixture: fixture, remote: remote, metrics: metrics, logger: l}
}

// Resolve returns the normalized quote for symbol or a *models.FetchError.
func (r *Resolver) Resolve(ctx context.Context, symbol models.Ticker) (models.Quote, error) {
	raw, err := r.fixture.Fetch(ctx, symbol)
	if err == nil {
		r.metrics.RecordFetch(r.fixture.Name(), "ok")
		r.logger.Debug("using fixture quote", applogger.String("symbol", symbol.String()))
		return r.normalize(raw)
	}
	if !models.IsKind(err, models.ErrNoData) {
		fe := models.AsFetchError(err)
		r.metrics.RecordFetch(r.fixture.Name(), string(fe.Kind))
		return models.Quote{}, fe
	}
	r.metrics.RecordFetch(r.fixture.Name(), "miss")

	raw, err = r.remote.Fetch(ctx, symbol)
	if err != nil {
		fe := models.AsFetchError(err)
		r.metrics.RecordFetch(r.remote.Name(), string(fe.Kind))
		return models.Quote{}, fe
	}
	r.metrics.RecordFetch(r.remote.Name(), "ok")
	return r.normalize(raw)
}

func (r *Resolver) normalize(raw models.RawPayload) (models.Quote, error) {
	q, err := normalize.Normalize(raw)
	if err != nil {
		return models.Quote{}, models.AsFetchError(err)
	}
	return q, nil
}
