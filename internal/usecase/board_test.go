package usecase

import (
	"context"
	"testing"
	"time"

	"TickerBoard/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, res *stubResolver, initial ...string) *Board {
	t.Helper()
	b := NewBoard(res, newTestMetrics(t), nil, WithInitialTickers(initial))
	t.Cleanup(b.Close)
	return b
}

func waitBoard(t *testing.T, b *Board) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, b.Wait(ctx))
}

func rowTickers(b *Board) []string {
	return tickers(b.Rows())
}

func TestNewBoardSeedsDefaults(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "175.43", "GOOGL": "142.56", "MSFT": "378.85"})
	b := NewBoard(res, newTestMetrics(t), nil)
	t.Cleanup(b.Close)

	waitBoard(t, b)
	assert.Equal(t, []string{"AAPL", "GOOGL", "MSFT"}, rowTickers(b))
	for _, r := range b.Rows() {
		assert.True(t, r.State.IsSuccess(), r.Ticker)
	}
}

func TestAddNormalizesAndDedupes(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{})
	b := newTestBoard(t, res)

	got, ok := b.Add("  aapl ")
	require.True(t, ok)
	assert.Equal(t, models.Ticker("AAPL"), got)

	_, ok = b.Add("AAPL")
	assert.False(t, ok)
	_, ok = b.Add("")
	assert.False(t, ok)
	_, ok = b.Add("   ")
	assert.False(t, ok)
	_, ok = b.Add("BRK.B")
	assert.False(t, ok)

	assert.Equal(t, []models.Ticker{"AAPL"}, b.Tickers())
	waitBoard(t, b)
	assert.Equal(t, 1, res.callCount("AAPL"))
}

func TestAddRemovePreservesOrder(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{})
	b := newTestBoard(t, res, "AAPL", "GOOGL", "MSFT")

	b.Add("TSLA")
	assert.True(t, b.Remove("GOOGL"))
	assert.False(t, b.Remove("GOOGL"))
	b.Add("GOOGL")

	assert.Equal(t, []models.Ticker{"AAPL", "MSFT", "TSLA", "GOOGL"}, b.Tickers())
	assert.Equal(t, 4, b.Len())
}

func TestNewTickerStartsLoading(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"IBM": "190"})
	release := res.hold("IBM")
	b := newTestBoard(t, res)

	b.Add("IBM")
	rows := b.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusLoading, rows[0].State.Status)

	release()
	waitBoard(t, b)
	assert.Equal(t, models.StatusSuccess, b.Rows()[0].State.Status)
}

func TestReAddedTickerIgnoresStaleCompletion(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "1.00"})
	release := res.hold("AAPL")
	b := newTestBoard(t, res)

	b.Add("AAPL")
	b.mu.RLock()
	stale := b.sessions["AAPL"]
	b.mu.RUnlock()

	require.True(t, b.Remove("AAPL"))
	res.unhold("AAPL")
	res.setPrice("AAPL", "2.00")
	b.Add("AAPL")
	waitBoard(t, b)

	release()
	waitDone(t, stale)

	rows := b.Rows()
	require.Len(t, rows, 1)
	require.True(t, rows[0].State.IsSuccess())
	assert.Equal(t, "2.00", rows[0].State.Quote.Price.StringFixed(2))
	assert.Equal(t, models.StatusLoading, stale.State().Status)
	assert.Equal(t, 2, res.callCount("AAPL"))
}

func TestSetSortToggles(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "175.43", "GOOGL": "142.56", "MSFT": "378.85"})
	b := newTestBoard(t, res, "AAPL", "GOOGL", "MSFT")
	waitBoard(t, b)

	spec := b.SetSort(models.SortPrice)
	assert.Equal(t, models.SortSpec{Field: models.SortPrice, Direction: models.Ascending}, spec)
	assert.Equal(t, []string{"GOOGL", "AAPL", "MSFT"}, rowTickers(b))

	spec = b.SetSort(models.SortPrice)
	assert.Equal(t, models.Descending, spec.Direction)
	assert.Equal(t, []string{"MSFT", "AAPL", "GOOGL"}, rowTickers(b))

	spec = b.SetSort(models.SortSymbol)
	assert.Equal(t, models.SortSpec{Field: models.SortSymbol, Direction: models.Ascending}, spec)

	b.SetSort(models.SortNone)
	assert.Equal(t, models.DefaultSort(), b.Sort())
	assert.Equal(t, []string{"AAPL", "GOOGL", "MSFT"}, rowTickers(b))
}

func TestFailedRowsSortLast(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{"AAPL": "175.43", "MSFT": "378.85"})
	b := newTestBoard(t, res, "ZZZZ", "MSFT", "AAPL")
	waitBoard(t, b)

	b.SetSort(models.SortPrice)
	assert.Equal(t, []string{"AAPL", "MSFT", "ZZZZ"}, rowTickers(b))
	b.SetSort(models.SortPrice)
	assert.Equal(t, []string{"MSFT", "AAPL", "ZZZZ"}, rowTickers(b))

	rows, spec := b.View()
	assert.Equal(t, models.Descending, spec.Direction)
	assert.Equal(t, models.ErrNoData, rows[2].State.Err.Kind)
}

func TestSubscribeReceivesChanges(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{})
	b := newTestBoard(t, res)

	ch, cancel := b.Subscribe()
	defer cancel()

	b.SetSort(models.SortSymbol)
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no notification")
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestCloseReleasesSubscribersAndRejectsAdds(t *testing.T) {
	res := newStubResolver(map[models.Ticker]string{})
	b := NewBoard(res, newTestMetrics(t), nil, WithInitialTickers(nil))
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Close()
	for range ch {
	}
	_, ok := b.Add("AAPL")
	assert.False(t, ok)
	assert.Zero(t, b.Len())
	b.Close()
}
