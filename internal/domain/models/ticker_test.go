package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTicker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Ticker
		ok   bool
	}{
		{raw: "aapl ", want: "AAPL", ok: true},
		{raw: "  msft", want: "MSFT", ok: true},
		{raw: "brk1", want: "BRK1", ok: true},
		{raw: "ABCDEFGHIJ", want: "ABCDEFGHIJ", ok: true},
		{raw: "", ok: false},
		{raw: "   ", ok: false},
		{raw: "ABCDEFGHIJK", ok: false},
		{raw: "BRK.B", ok: false},
		{raw: "A B", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseTicker(tt.raw)
		require.Equalf(t, tt.ok, ok, "ParseTicker(%q)", tt.raw)
		require.Equalf(t, tt.want, got, "ParseTicker(%q)", tt.raw)
	}
}
