package fixture

import (
	"context"

	"TickerBoard/internal/domain/models"
	drepo "TickerBoard/internal/domain/repository"
)

// Name identifies the fixture tier in logs and metrics.
const Name = "fixture"

// Source serves canned quotes for a closed set of symbols without network
// access. Unknown symbols report NoData so the resolver can fall through.
type Source struct {
	quotes map[models.Ticker]models.RawPayload
}

// New creates a fixture source over quotes. A nil map uses Defaults().
func New(quotes map[models.Ticker]models.RawPayload) drepo.QuoteSource {
	if quotes == nil {
		quotes = Defaults()
	}
	cp := make(map[models.Ticker]models.RawPayload, len(quotes))
	for k, v := range quotes {
		cp[k] = v
	}
	return &Source{quotes: cp}
}

func (s *Source) Name() string { return Name }

func (s *Source) Fetch(_ context.Context, symbol models.Ticker) (models.RawPayload, error) {
	p, ok := s.quotes[symbol]
	if !ok {
		return models.RawPayload{}, models.NoData()
	}
	return p, nil
}

// Has reports whether symbol is in the fixture set.
func (s *Source) Has(symbol models.Ticker) bool {
	_, ok := s.quotes[symbol]
	return ok
}

// Defaults returns the built-in fixture set. A fresh map is returned on every call.
func Defaults() map[models.Ticker]models.RawPayload {
	return map[models.Ticker]models.RawPayload{
		"AAPL":  {Symbol: "AAPL", Price: "175.43", Change: "2.15", ChangePercent: "1.24"},
		"GOOGL": {Symbol: "GOOGL", Price: "142.56", Change: "-1.23", ChangePercent: "-0.86"},
		"MSFT":  {Symbol: "MSFT", Price: "378.85", Change: "3.42", ChangePercent: "0.91"},
		"TSLA":  {Symbol: "TSLA", Price: "248.50", Change: "-5.20", ChangePercent: "-2.05"},
		"AMZN":  {Symbol: "AMZN", Price: "155.20", Change: "1.85", ChangePercent: "1.21"},
		"NVDA":  {Symbol: "NVDA", Price: "875.30", Change: "12.45", ChangePercent: "1.44"},
		"META":  {Symbol: "META", Price: "485.20", Change: "-2.10", ChangePercent: "-0.43"},
		"NFLX":  {Symbol: "NFLX", Price: "612.15", Change: "8.30", ChangePercent: "1.37"},
	}
}
