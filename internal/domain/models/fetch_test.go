package models

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsFetchError(t *testing.T) {
	t.Parallel()

	require.Nil(t, AsFetchError(nil))

	wrapped := fmt.Errorf("remote: %w", RateLimited("slow down"))
	fe := AsFetchError(wrapped)
	require.Equal(t, ErrRateLimited, fe.Kind)
	require.Equal(t, "slow down", fe.Message)

	fe = AsFetchError(errors.New("dial tcp: connection refused"))
	require.Equal(t, ErrTransportError, fe.Kind)
	require.Contains(t, fe.Message, "connection refused")

	fe = AsFetchError(context.Canceled)
	require.Equal(t, ErrTransportError, fe.Kind)
	require.ErrorIs(t, fe, context.Canceled)
}

func TestIsKind(t *testing.T) {
	t.Parallel()

	require.True(t, IsKind(NoData(), ErrNoData))
	require.True(t, IsKind(fmt.Errorf("wrap: %w", NoData()), ErrNoData))
	require.False(t, IsKind(SourceError("x"), ErrNoData))
	require.False(t, IsKind(errors.New("plain"), ErrNoData))
}

func TestFetchErrorDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "API Rate Limit: 25 per day", RateLimited("25 per day").Display())
	assert.Equal(t, "API Error: Invalid API call", SourceError("Invalid API call").Display())
	assert.Equal(t, "No data available. Try a popular ticker like AAPL, GOOGL, MSFT", NoData().Display())
	assert.Equal(t, "Error fetching data: boom", TransportError(errors.New("boom")).Display())
}

func TestFetchStateTransitions(t *testing.T) {
	t.Parallel()

	require.True(t, Idle().CanStart())
	require.False(t, Loading().CanStart())
	require.True(t, Failed(NoData()).CanStart())
	require.True(t, Succeeded(Quote{Symbol: "AAPL"}).CanStart())
	require.True(t, Succeeded(Quote{}).IsSuccess())
	require.False(t, Failed(NoData()).IsSuccess())
}
