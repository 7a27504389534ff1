package repository

import (
	"context"

	"TickerBoard/internal/domain/models"
)

//go:generate mockgen -package=mocks -destination=../mocks/mock_repository.go -source=interfaces.go

// QuoteSource produces a raw quote payload for one symbol. Failures are
// reported as *models.FetchError where the source can classify them.
type QuoteSource interface {
	Name() string
	Fetch(ctx context.Context, symbol models.Ticker) (models.RawPayload, error)
}

type Metrics interface {
	RecordFetch(tier, outcome string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
	SetTracked(n int)
}
