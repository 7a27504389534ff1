package alphavantage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"TickerBoard/internal/domain/models"
	xhttp "TickerBoard/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		q := r.URL.Query()
		assert.Equal(t, "GLOBAL_QUOTE", q.Get("function"))
		assert.Equal(t, "secret", q.Get("apikey"))
		assert.NotEmpty(t, q.Get("symbol"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchSuccess(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := newServer(t, http.StatusOK, `{"Global Quote":{"01. symbol":"IBM","05. price":"231.4500","09. change":"-1.2300","10. change percent":"-0.5287%"}}`, &calls)
	c := New("secret", srv.URL, xhttp.NewClient(), nil)

	p, err := c.Fetch(t.Context(), "IBM")
	require.NoError(t, err)
	require.Equal(t, models.RawPayload{Symbol: "IBM", Price: "231.4500", Change: "-1.2300", ChangePercent: "-0.5287%"}, p)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestFetchClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		kind   models.ErrorKind
		msg    string
	}{
		{name: "note", status: 200, body: `{"Note":"Thank you for using Alpha Vantage! 25 requests per day"}`, kind: models.ErrRateLimited, msg: "Thank you for using Alpha Vantage! 25 requests per day"},
		{name: "information", status: 200, body: `{"Information":"daily limit reached"}`, kind: models.ErrRateLimited, msg: "daily limit reached"},
		{name: "error message", status: 200, body: `{"Error Message":"Invalid API call."}`, kind: models.ErrSourceError, msg: "Invalid API call."},
		{name: "empty quote", status: 200, body: `{"Global Quote":{}}`, kind: models.ErrNoData},
		{name: "missing quote", status: 200, body: `{}`, kind: models.ErrNoData},
		{name: "not json", status: 200, body: `<html>`, kind: models.ErrSourceError},
		{name: "server error", status: 500, body: `oops`, kind: models.ErrTransportError},
		{name: "too many requests", status: 429, body: ``, kind: models.ErrTransportError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls int32
			srv := newServer(t, tt.status, tt.body, &calls)
			_, err := New("secret", srv.URL, nil, nil).Fetch(t.Context(), "ZZZZ")
			require.Error(t, err)
			fe := models.AsFetchError(err)
			require.Equal(t, tt.kind, fe.Kind, "got %v", err)
			if tt.msg != "" {
				require.Equal(t, tt.msg, fe.Message)
			}
			require.EqualValues(t, 1, atomic.LoadInt32(&calls), "exactly one attempt")
		})
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New("secret", url, nil, nil).Fetch(t.Context(), "IBM")
	require.True(t, models.IsKind(err, models.ErrTransportError), "got %v", err)
}

func TestFetchCanceledContext(t *testing.T) {
	t.Parallel()

	srv := newServer(t, http.StatusOK, `{}`, nil)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := New("secret", srv.URL, nil, nil).Fetch(ctx, "IBM")
	require.True(t, models.IsKind(err, models.ErrTransportError), "got %v", err)
	require.ErrorIs(t, err, context.Canceled)
}
