package usecase

import (
	"slices"
	"strings"

	"TickerBoard/internal/domain/models"
)

// Order returns rows arranged for display under spec. The input is not
// modified.
//
// Rows without a quote always come last, in their original order. Quoted
// rows are stable-sorted ascending by the selected field (ties keep original
// order); descending reverses that whole group.
func Order(rows []models.Row, spec models.SortSpec) []models.Row {
	out := make([]models.Row, 0, len(rows))
	cmp := comparator(spec.Field)
	if cmp == nil {
		return append(out, rows...)
	}

	quoted := make([]models.Row, 0, len(rows))
	pending := make([]models.Row, 0)
	for _, r := range rows {
		if r.State.IsSuccess() {
			quoted = append(quoted, r)
		} else {
			pending = append(pending, r)
		}
	}

	slices.SortStableFunc(quoted, func(a, b models.Row) int {
		return cmp(a.State.Quote, b.State.Quote)
	})
	if spec.Direction == models.Descending {
		slices.Reverse(quoted)
	}

	out = append(out, quoted...)
	return append(out, pending...)
}

func comparator(field models.SortField) func(a, b models.Quote) int {
	switch field {
	case models.SortSymbol:
		return func(a, b models.Quote) int { return strings.Compare(a.Symbol, b.Symbol) }
	case models.SortPrice:
		return func(a, b models.Quote) int { return a.Price.Cmp(b.Price) }
	case models.SortChange:
		return func(a, b models.Quote) int { return a.Change.Cmp(b.Change) }
	case models.SortChangePercent:
		return func(a, b models.Quote) int { return a.ChangePercent.Cmp(b.ChangePercent) }
	default:
		return nil
	}
}
