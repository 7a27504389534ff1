package usecase

import (
	"context"
	"slices"
	"sync"

	"TickerBoard/internal/domain/models"
	drepo "TickerBoard/internal/domain/repository"
	"TickerBoard/internal/domain/service"
	applogger "TickerBoard/pkg/logger"
)

// DefaultTickers seeds a new board when no initial set is configured.
var DefaultTickers = []string{"AAPL", "GOOGL", "MSFT"}

// Board owns the ordered TickerSet, one Session per tracked ticker and the
// table-wide SortSpec. All methods are safe for concurrent use.
type Board struct {
	resolver service.QuoteResolver
	metrics  drepo.Metrics
	logger   *applogger.Logger
	initial  []string

	mu       sync.RWMutex
	order    []models.Ticker
	sessions map[models.Ticker]*Session
	sort     models.SortSpec
	nextID   uint64
	closed   bool

	subMu   sync.Mutex
	subs    map[uint64]chan struct{}
	nextSub uint64
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithInitialTickers replaces the default seed set. Invalid entries and
// duplicates are skipped the same way Add skips them.
func WithInitialTickers(tickers []string) BoardOption {
	return func(b *Board) {
		b.initial = tickers
	}
}

// NewBoard creates a board and starts a session for each initial ticker.
func NewBoard(resolver service.QuoteResolver, metrics drepo.Metrics, l *applogger.Logger, opts ...BoardOption) *Board {
	if l == nil {
		l = applogger.Nop()
	}
	b := &Board{
		resolver: resolver,
		metrics:  metrics,
		logger:   l,
		initial:  DefaultTickers,
		sessions: make(map[models.Ticker]*Session),
		sort:     models.DefaultSort(),
		subs:     make(map[uint64]chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	for _, raw := range b.initial {
		b.Add(raw)
	}
	return b
}

// Add normalizes raw and appends it to the board, starting a fresh session.
// Empty, malformed or already-tracked input is ignored and reported false.
func (b *Board) Add(raw string) (models.Ticker, bool) {
	t, ok := models.ParseTicker(raw)
	if !ok {
		b.logger.Debug("ticker rejected", applogger.String("input", raw))
		return "", false
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return "", false
	}
	if _, exists := b.sessions[t]; exists {
		b.mu.Unlock()
		b.logger.Debug("ticker already tracked", applogger.String("ticker", t.String()))
		return "", false
	}
	b.nextID++
	s := newSession(b.nextID, t, b.resolver, b.metrics, b.logger, b.notify)
	b.sessions[t] = s
	b.order = append(b.order, t)
	n := len(b.order)
	b.mu.Unlock()

	b.metrics.SetTracked(n)
	b.logger.Info("ticker added", applogger.String("ticker", t.String()), applogger.Int("tracked", n))
	s.Start()
	return t, true
}

// Remove stops tracking t and destroys its session. Removing an absent
// ticker is a no-op.
func (b *Board) Remove(t models.Ticker) bool {
	b.mu.Lock()
	s, ok := b.sessions[t]
	if !ok {
		b.mu.Unlock()
		return false
	}
	delete(b.sessions, t)
	b.order = slices.DeleteFunc(b.order, func(x models.Ticker) bool { return x == t })
	s.Destroy()
	n := len(b.order)
	b.mu.Unlock()

	b.metrics.SetTracked(n)
	b.logger.Info("ticker removed", applogger.String("ticker", t.String()), applogger.Int("tracked", n))
	b.notify()
	return true
}

// SetSort applies SortSpec.Toggle for field and returns the new spec.
func (b *Board) SetSort(field models.SortField) models.SortSpec {
	b.mu.Lock()
	b.sort = b.sort.Toggle(field)
	spec := b.sort
	b.mu.Unlock()

	b.notify()
	return spec
}

// Sort returns the current SortSpec.
func (b *Board) Sort() models.SortSpec {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sort
}

// Tickers returns the TickerSet in insertion order.
func (b *Board) Tickers() []models.Ticker {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.order)
}

// Len returns the number of tracked tickers.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}

// Rows returns the display rows ordered by the current SortSpec.
func (b *Board) Rows() []models.Row {
	rows, spec := b.snapshot()
	return Order(rows, spec)
}

// View returns the ordered rows together with the SortSpec used.
func (b *Board) View() ([]models.Row, models.SortSpec) {
	rows, spec := b.snapshot()
	return Order(rows, spec), spec
}

func (b *Board) snapshot() ([]models.Row, models.SortSpec) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rows := make([]models.Row, 0, len(b.order))
	for _, t := range b.order {
		rows = append(rows, models.Row{Ticker: t, State: b.sessions[t].State()})
	}
	return rows, b.sort
}

// Wait blocks until every currently tracked session has finished resolving
// or ctx is done.
func (b *Board) Wait(ctx context.Context) error {
	b.mu.RLock()
	pending := make([]<-chan struct{}, 0, len(b.sessions))
	for _, s := range b.sessions {
		pending = append(pending, s.Done())
	}
	b.mu.RUnlock()

	for _, done := range pending {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Subscribe returns a channel that receives a signal whenever the board
// changes. Signals coalesce: a slow reader sees at most one pending
// notification. The returned func releases the subscription.
func (b *Board) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.subMu.Lock()
	b.nextSub++
	id := b.nextSub
	b.subs[id] = ch
	b.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.subMu.Lock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
			b.subMu.Unlock()
		})
	}
}

func (b *Board) notify() {
	b.subMu.Lock()
	defer b.subMu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close destroys every session and releases all subscribers. Further
// Add calls are rejected.
func (b *Board) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for t, s := range b.sessions {
		s.Destroy()
		delete(b.sessions, t)
	}
	b.order = nil
	b.mu.Unlock()

	b.metrics.SetTracked(0)

	b.subMu.Lock()
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	b.subMu.Unlock()
	b.logger.Info("board closed")
}
