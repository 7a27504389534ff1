package usecase

import (
	"context"
	"sync"
	"testing"

	"TickerBoard/internal/domain/models"
	"TickerBoard/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// stubResolver answers from a fixed price table. Tickers registered with
// hold block until released, ignoring cancellation, to model a response
// that arrives after its session was dropped.
type stubResolver struct {
	mu     sync.Mutex
	prices map[models.Ticker]string
	holds  map[models.Ticker]chan struct{}
	calls  map[models.Ticker]int
}

func newStubResolver(prices map[models.Ticker]string) *stubResolver {
	return &stubResolver{
		prices: prices,
		holds:  make(map[models.Ticker]chan struct{}),
		calls:  make(map[models.Ticker]int),
	}
}

func (r *stubResolver) hold(t models.Ticker) (release func()) {
	ch := make(chan struct{})
	r.mu.Lock()
	r.holds[t] = ch
	r.mu.Unlock()
	return func() { close(ch) }
}

func (r *stubResolver) unhold(t models.Ticker) {
	r.mu.Lock()
	delete(r.holds, t)
	r.mu.Unlock()
}

func (r *stubResolver) setPrice(t models.Ticker, price string) {
	r.mu.Lock()
	r.prices[t] = price
	r.mu.Unlock()
}

func (r *stubResolver) callCount(t models.Ticker) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[t]
}

func (r *stubResolver) Resolve(_ context.Context, t models.Ticker) (models.Quote, error) {
	r.mu.Lock()
	r.calls[t]++
	gate := r.holds[t]
	r.mu.Unlock()

	if gate != nil {
		<-gate
	}

	r.mu.Lock()
	price, ok := r.prices[t]
	r.mu.Unlock()
	if !ok {
		return models.Quote{}, models.NoData()
	}
	p := decimal.RequireFromString(price)
	return models.Quote{Symbol: t.String(), Price: p, Change: decimal.Zero, ChangePercent: decimal.Zero}, nil
}

func newTestMetrics(t *testing.T) *metrics.Recorder {
	t.Helper()
	return metrics.New(prometheus.NewRegistry())
}
