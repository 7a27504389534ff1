package service

import (
	"context"

	"TickerBoard/internal/domain/models"
)

// QuoteResolver resolves one symbol to a normalized quote.
//
//go:generate mockgen -package=mocks -destination=../mocks/mock_quote_resolver.go -source=quotes.go
type QuoteResolver interface {
	Resolve(ctx context.Context, symbol models.Ticker) (models.Quote, error)
}
