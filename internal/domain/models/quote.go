package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RawPayload is the unnormalized quote shape produced by a QuoteSource.
// Fields are kept as the provider sent them.
type RawPayload struct {
	Symbol        string
	Price         string
	Change        string
	ChangePercent string
}

// Quote is an immutable, normalized quote with 2 fraction digits per field.
// ChangePercent is stored without the "%" suffix.
type Quote struct {
	Symbol        string
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
}

// Positive reports whether the quote moved up (or stayed flat).
func (q Quote) Positive() bool { return !q.Change.IsNegative() }

// MarshalJSON renders decimals as fixed 2-digit strings, e.g. "175.43".
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Symbol        string `json:"symbol"`
		Price         string `json:"price"`
		Change        string `json:"change"`
		ChangePercent string `json:"changePercent"`
	}{
		Symbol:        q.Symbol,
		Price:         q.Price.StringFixed(2),
		Change:        q.Change.StringFixed(2),
		ChangePercent: q.ChangePercent.StringFixed(2),
	})
}

// FormatPrice renders the price as "$175.43".
func (q Quote) FormatPrice() string { return "$" + q.Price.StringFixed(2) }

// FormatChange renders the change with an explicit sign, e.g. "+2.15".
func (q Quote) FormatChange() string { return signed(q.Change) }

// FormatChangePercent renders e.g. "+1.24%".
func (q Quote) FormatChangePercent() string { return signed(q.ChangePercent) + "%" }

func signed(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsNegative() {
		return s
	}
	return "+" + s
}
