package alphavantage

import (
	"context"
	"encoding/json"
	"time"

	"TickerBoard/internal/domain/models"
	drepo "TickerBoard/internal/domain/repository"
	xhttp "TickerBoard/pkg/http"
	applogger "TickerBoard/pkg/logger"
)

const (
	// Name identifies the remote tier in logs and metrics.
	Name = "alphavantage"

	DefaultBaseURL = "https://www.alphavantage.co/query"
)

// Client implements a QuoteSource backed by the Alpha Vantage GLOBAL_QUOTE
// endpoint. Every Fetch is exactly one HTTP request: no retry, no backoff.
type Client struct {
	apiKey  string
	baseURL string
	http    *xhttp.Client
	logger  *applogger.Logger
}

// New creates a new Alpha Vantage QuoteSource.
func New(apiKey, baseURL string, hc *xhttp.Client, l *applogger.Logger) drepo.QuoteSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = xhttp.NewClient(xhttp.WithTimeout(0))
	}
	if l == nil {
		l = applogger.Nop()
	}
	return &Client{apiKey: apiKey, baseURL: baseURL, http: hc, logger: l}
}

func (c *Client) Name() string { return Name }

// Fetch performs one GLOBAL_QUOTE request. Provider-level notices are
// classified here: "Note"/"Information" -> RateLimited, "Error Message" ->
// SourceError, no quote fields -> NoData, non-2xx or network failure ->
// TransportError.
func (c *Client) Fetch(ctx context.Context, symbol models.Ticker) (models.RawPayload, error) {
	c.logger.Warn("using remote quote source", applogger.String("symbol", symbol.String()))

	start := time.Now()
	var body []byte
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL,
		QueryParams: map[string][]string{
			"function": {"GLOBAL_QUOTE"},
			"symbol":   {symbol.String()},
			"apikey":   {c.apiKey},
		},
	}, &body)
	if err != nil {
		c.logger.Error("alphavantage request failed",
			applogger.String("symbol", symbol.String()),
			applogger.Duration("duration_ms", time.Since(start)),
			applogger.Error(err),
		)
		return models.RawPayload{}, models.TransportError(err)
	}

	p, err := parseGlobalQuote(body)
	if err != nil {
		c.logger.Warn("alphavantage response rejected",
			applogger.String("symbol", symbol.String()),
			applogger.Error(err),
		)
		return models.RawPayload{}, err
	}
	return p, nil
}

type globalQuote struct {
	Symbol        string `json:"01. symbol"`
	Price         string `json:"05. price"`
	Change        string `json:"09. change"`
	ChangePercent string `json:"10. change percent"`
}

func parseGlobalQuote(body []byte) (models.RawPayload, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return models.RawPayload{}, models.SourceErrorf("decode response: %v", err)
	}

	if note, ok := notice(top, "Note"); ok {
		return models.RawPayload{}, models.RateLimited(note)
	}
	if info, ok := notice(top, "Information"); ok {
		return models.RawPayload{}, models.RateLimited(info)
	}
	if msg, ok := notice(top, "Error Message"); ok {
		return models.RawPayload{}, models.SourceError(msg)
	}

	raw, ok := top["Global Quote"]
	if !ok {
		return models.RawPayload{}, models.NoData()
	}
	var gq globalQuote
	if err := json.Unmarshal(raw, &gq); err != nil {
		return models.RawPayload{}, models.SourceErrorf("decode global quote: %v", err)
	}
	if gq.Price == "" {
		return models.RawPayload{}, models.NoData()
	}

	return models.RawPayload{
		Symbol:        gq.Symbol,
		Price:         gq.Price,
		Change:        gq.Change,
		ChangePercent: gq.ChangePercent,
	}, nil
}

// notice returns the text of a top-level provider notice. Presence of the
// key is what matters; non-string values are returned as raw JSON.
func notice(top map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := top[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw), true
	}
	return s, true
}
