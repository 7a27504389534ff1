package usecase

import (
	"context"
	"testing"
	"time"

	"TickerBoard/internal/domain/mocks"
	"TickerBoard/internal/domain/models"
	applogger "TickerBoard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func waitDone(t *testing.T, s *Session) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not finish")
	}
}

func TestSessionLifecycleSuccess(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "175.43"})
	s := newSession(1, "AAPL", res, newTestMetrics(t), applogger.Nop(), nil)

	assert.Equal(t, models.StatusIdle, s.State().Status)
	require.True(t, s.Start())
	waitDone(t, s)

	st := s.State()
	require.Equal(t, models.StatusSuccess, st.Status)
	assert.Equal(t, "175.43", st.Quote.Price.StringFixed(2))
	assert.Nil(t, st.Err)
}

func TestSessionLifecycleFailure(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{})
	s := newSession(1, "ZZZZ", res, newTestMetrics(t), applogger.Nop(), nil)

	require.True(t, s.Start())
	waitDone(t, s)

	st := s.State()
	require.Equal(t, models.StatusFailure, st.Status)
	assert.Equal(t, models.ErrNoData, st.Err.Kind)
}

func TestSessionStartsOnce(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "1"})
	s := newSession(1, "AAPL", res, newTestMetrics(t), applogger.Nop(), nil)

	require.True(t, s.Start())
	assert.False(t, s.Start())
	waitDone(t, s)
	assert.False(t, s.Start())
	assert.Equal(t, 1, res.callCount("AAPL"))
}

func TestSessionDestroyedBeforeStart(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "1"})
	s := newSession(1, "AAPL", res, newTestMetrics(t), applogger.Nop(), nil)

	s.Destroy()
	assert.False(t, s.Start())
	assert.Equal(t, 0, res.callCount("AAPL"))
}

func TestSessionDiscardsLateCompletion(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "1"})
	release := res.hold("AAPL")
	changes := 0
	s := newSession(1, "AAPL", res, newTestMetrics(t), applogger.Nop(), func() { changes++ })

	require.True(t, s.Start())
	s.Destroy()
	release()
	waitDone(t, s)

	assert.Equal(t, models.StatusLoading, s.State().Status)
	assert.Equal(t, 1, changes, "only the Loading transition is observed")
}

func TestSessionDestroyCancelsResolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockQuoteResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), models.Ticker("SLOW")).
		DoAndReturn(func(ctx context.Context, _ models.Ticker) (models.Quote, error) {
			<-ctx.Done()
			return models.Quote{}, ctx.Err()
		})

	s := newSession(1, "SLOW", resolver, newTestMetrics(t), applogger.Nop(), nil)
	require.True(t, s.Start())
	s.Destroy()
	waitDone(t, s)

	assert.Equal(t, models.StatusLoading, s.State().Status)
}
