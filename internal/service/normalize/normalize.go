// Package normalize turns raw provider payloads into canonical quotes.
package normalize

import (
	"strings"

	"TickerBoard/internal/domain/models"

	"github.com/shopspring/decimal"
)

// Places is the number of fraction digits kept on every quote field.
const Places = 2

// Normalize parses p into a Quote. Decimals are rounded half-to-even to two
// places; the symbol is copied verbatim from the payload. Any missing or
// malformed field, a negative price, or change/changePercent disagreeing in
// sign fails with a SourceError.
func Normalize(p models.RawPayload) (models.Quote, error) {
	if strings.TrimSpace(p.Symbol) == "" {
		return models.Quote{}, models.SourceError("missing symbol")
	}

	price, err := parseField("price", p.Price)
	if err != nil {
		return models.Quote{}, err
	}
	if price.IsNegative() {
		return models.Quote{}, models.SourceErrorf("negative price %s", p.Price)
	}

	change, err := parseField("change", p.Change)
	if err != nil {
		return models.Quote{}, err
	}

	pct, err := parseField("changePercent", strings.TrimSuffix(strings.TrimSpace(p.ChangePercent), "%"))
	if err != nil {
		return models.Quote{}, err
	}

	if change.IsNegative() != pct.IsNegative() {
		return models.Quote{}, models.SourceErrorf("change %s and change percent %s disagree in sign",
			change.StringFixed(Places), pct.StringFixed(Places))
	}

	return models.Quote{
		Symbol:        p.Symbol,
		Price:         price,
		Change:        change,
		ChangePercent: pct,
	}, nil
}

func parseField(name, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, models.SourceErrorf("missing %s", name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, models.SourceErrorf("malformed %s %q", name, raw)
	}
	return d.RoundBank(Places), nil
}
