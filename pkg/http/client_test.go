package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndParseQueryAndJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "tickerboard/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := NewClient().SendAndParse(t.Context(), &RequestOptions{
		Method:      MethodGet,
		URL:         srv.URL,
		QueryParams: map[string][]string{"function": {"GLOBAL_QUOTE"}},
	}, &out)
	require.NoError(t, err)
	require.True(t, out.OK)
}

func TestSendAndParseStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	var raw []byte
	err := NewClient(WithTimeout(0)).SendAndParse(t.Context(), &RequestOptions{Method: MethodGet, URL: srv.URL}, &raw)
	var se *StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	require.Equal(t, http.StatusBadGateway, se.Code)
	require.Equal(t, "upstream down", se.Body)
}
