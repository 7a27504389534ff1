package models

// SortField names a sortable column. SortNone keeps insertion order.
type SortField string

const (
	SortNone          SortField = "none"
	SortSymbol        SortField = "symbol"
	SortPrice         SortField = "price"
	SortChange        SortField = "change"
	SortChangePercent SortField = "changePercent"
)

// IsValid reports whether f is a known sort field.
func (f SortField) IsValid() bool {
	switch f {
	case SortNone, SortSymbol, SortPrice, SortChange, SortChangePercent:
		return true
	default:
		return false
	}
}

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec is the table-wide ordering state.
type SortSpec struct {
	Field     SortField `json:"field"`
	Direction Direction `json:"direction"`
}

// DefaultSort keeps TickerSet order.
func DefaultSort() SortSpec {
	return SortSpec{Field: SortNone, Direction: Ascending}
}

// Toggle selects field: the same field flips direction, a different field
// resets to ascending. Selecting SortNone clears sorting.
func (s SortSpec) Toggle(field SortField) SortSpec {
	if field == "" || field == SortNone {
		return DefaultSort()
	}
	if field == s.Field {
		if s.Direction == Ascending {
			return SortSpec{Field: field, Direction: Descending}
		}
		return SortSpec{Field: field, Direction: Ascending}
	}
	return SortSpec{Field: field, Direction: Ascending}
}

// Row pairs a tracked ticker with its current fetch state.
type Row struct {
	Ticker Ticker
	State  FetchState
}
