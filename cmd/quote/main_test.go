package main

import (
	"bytes"
	"strings"
	"testing"

	"TickerBoard/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	rows := []models.Row{
		{Ticker: "AAPL", State: models.Succeeded(models.Quote{
			Symbol:        "AAPL",
			Price:         decimal.RequireFromString("175.43"),
			Change:        decimal.RequireFromString("2.15"),
			ChangePercent: decimal.RequireFromString("1.24"),
		})},
		{Ticker: "ZZZZ", State: models.Failed(models.RateLimited("Thank you for using Alpha Vantage!"))},
		{Ticker: "IBM", State: models.Loading()},
	}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "SYMBOL")
	assert.Contains(t, lines[1], "$175.43")
	assert.Contains(t, lines[1], "+2.15")
	assert.Contains(t, lines[1], "+1.24%")
	assert.Contains(t, lines[2], "API Rate Limit: Thank you for using Alpha Vantage!")
	assert.Contains(t, lines[3], "Loading...")
}
