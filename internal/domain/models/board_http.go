package models

// Requests for board HTTP endpoints.

type AddTickerRequest struct {
	Symbol string `json:"symbol" validate:"max=32"`
}

type SortRequest struct {
	Field string `json:"field" default:"none" validate:"oneof=none symbol price change changePercent"`
}

// BoardView is the serialized board snapshot.
type BoardView struct {
	Sort SortSpec  `json:"sort"`
	Rows []RowView `json:"rows"`
}

type RowView struct {
	Ticker  string       `json:"ticker"`
	Status  FetchStatus  `json:"status"`
	Quote   *Quote       `json:"quote,omitempty"`
	Error   *ErrorView   `json:"error,omitempty"`
	Display *DisplayView `json:"display,omitempty"`
}

type ErrorView struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

type DisplayView struct {
	Price         string `json:"price"`
	Change        string `json:"change"`
	ChangePercent string `json:"changePercent"`
	Positive      bool   `json:"positive"`
}

type AddTickerResponse struct {
	Added  bool      `json:"added"`
	Ticker string    `json:"ticker,omitempty"`
	Board  BoardView `json:"board"`
}

type RemoveTickerResponse struct {
	Removed bool      `json:"removed"`
	Board   BoardView `json:"board"`
}

// NewBoardView converts ordered rows into their wire form.
func NewBoardView(rows []Row, spec SortSpec) BoardView {
	out := BoardView{Sort: spec, Rows: make([]RowView, 0, len(rows))}
	for _, r := range rows {
		rv := RowView{Ticker: r.Ticker.String(), Status: r.State.Status}
		switch r.State.Status {
		case StatusSuccess:
			q := r.State.Quote
			rv.Quote = &q
			rv.Display = &DisplayView{
				Price:         q.FormatPrice(),
				Change:        q.FormatChange(),
				ChangePercent: q.FormatChangePercent(),
				Positive:      q.Positive(),
			}
		case StatusFailure:
			rv.Error = &ErrorView{Kind: r.State.Err.Kind, Message: r.State.Err.Display()}
		}
		out.Rows = append(out.Rows, rv)
	}
	return out
}
