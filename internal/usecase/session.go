package usecase

import (
	"context"
	"sync"
	"time"

	"TickerBoard/internal/domain/models"
	drepo "TickerBoard/internal/domain/repository"
	"TickerBoard/internal/domain/service"
	applogger "TickerBoard/pkg/logger"
)

// Session drives the quote lifecycle of one ticker lifetime:
// Idle -> Loading -> Success | Failure. It is started at most once.
// After Destroy, a late completion is dropped without any state change.
type Session struct {
	id       uint64
	ticker   models.Ticker
	resolver service.QuoteResolver
	metrics  drepo.Metrics
	logger   *applogger.Logger
	onChange func()

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.RWMutex
	state     models.FetchState
	started   bool
	destroyed bool
}

func newSession(id uint64, ticker models.Ticker, resolver service.QuoteResolver, metrics drepo.Metrics, l *applogger.Logger, onChange func()) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:       id,
		ticker:   ticker,
		resolver: resolver,
		metrics:  metrics,
		logger:   l.With(applogger.String("ticker", ticker.String()), applogger.Int64("session", int64(id))),
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		state:    models.Idle(),
	}
}

func (s *Session) ID() uint64            { return s.id }
func (s *Session) Ticker() models.Ticker { return s.ticker }

// Done is closed once a started resolution attempt has returned.
func (s *Session) Done() <-chan struct{} { return s.done }

// State returns the current fetch state.
func (s *Session) State() models.FetchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Start moves the session to Loading and resolves in the background.
// It reports false if the session was already started or destroyed.
func (s *Session) Start() bool {
	s.mu.Lock()
	if s.started || s.destroyed || !s.state.CanStart() {
		s.mu.Unlock()
		return false
	}
	s.started = true
	s.state = models.Loading()
	s.mu.Unlock()

	s.notify()
	go s.run()
	return true
}

// Destroy detaches the session from its ticker. Any result that arrives
// afterwards is discarded.
func (s *Session) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	s.mu.Unlock()
	s.cancel()
}

func (s *Session) run() {
	defer close(s.done)

	start := time.Now()
	q, err := s.resolver.Resolve(s.ctx, s.ticker)
	s.complete(q, err, time.Since(start))
}

func (s *Session) complete(q models.Quote, err error, took time.Duration) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		s.logger.Debug("discarding stale completion", applogger.Duration("duration_ms", took))
		return
	}
	if err != nil {
		s.state = models.Failed(models.AsFetchError(err))
	} else {
		s.state = models.Succeeded(q)
	}
	state := s.state
	s.mu.Unlock()

	s.metrics.RecordLatency("resolve", took.Seconds())
	if state.IsSuccess() {
		s.metrics.RecordLastPrice(s.ticker.String(), state.Quote.Price.InexactFloat64())
		s.logger.Info("quote resolved",
			applogger.String("price", state.Quote.Price.StringFixed(2)),
			applogger.Duration("duration_ms", took),
		)
	} else {
		s.metrics.RecordError(string(state.Err.Kind))
		s.logger.Warn("quote fetch failed",
			applogger.String("kind", string(state.Err.Kind)),
			applogger.Error(state.Err),
			applogger.Duration("duration_ms", took),
		)
	}
	s.notify()
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
