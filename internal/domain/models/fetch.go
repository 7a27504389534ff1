package models

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies why a quote could not be resolved.
type ErrorKind string

const (
	ErrRateLimited    ErrorKind = "rate_limited"
	ErrSourceError    ErrorKind = "source_error"
	ErrNoData         ErrorKind = "no_data"
	ErrTransportError ErrorKind = "transport_error"
)

const noDataHint = "No data available. Try a popular ticker like AAPL, GOOGL, MSFT"

// FetchError is the classified failure of a quote fetch.
type FetchError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Display returns the inline text rendered in a failed row.
func (e *FetchError) Display() string {
	switch e.Kind {
	case ErrRateLimited:
		return "API Rate Limit: " + e.Message
	case ErrSourceError:
		return "API Error: " + e.Message
	case ErrNoData:
		return noDataHint
	default:
		msg := e.Message
		if msg == "" && e.Err != nil {
			msg = e.Err.Error()
		}
		return "Error fetching data: " + msg
	}
}

// RateLimited creates a rate-limit failure carrying the provider notice.
func RateLimited(note string) *FetchError {
	return &FetchError{Kind: ErrRateLimited, Message: note}
}

// SourceError creates a provider/normalization failure.
func SourceError(message string) *FetchError {
	return &FetchError{Kind: ErrSourceError, Message: message}
}

// SourceErrorf creates a provider/normalization failure with formatting.
func SourceErrorf(format string, a ...interface{}) *FetchError {
	return SourceError(fmt.Sprintf(format, a...))
}

// NoData creates a known-absence failure.
func NoData() *FetchError {
	return &FetchError{Kind: ErrNoData}
}

// TransportError wraps a network or HTTP failure.
func TransportError(err error) *FetchError {
	return &FetchError{Kind: ErrTransportError, Message: err.Error(), Err: err}
}

// AsFetchError classifies err. Errors that are not already a FetchError
// (dial failures, context cancellation, ...) become TransportError.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: ErrTransportError, Message: "request canceled", Err: err}
	}
	return TransportError(err)
}

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}

// FetchStatus is the active tag of a FetchState.
type FetchStatus string

const (
	StatusIdle    FetchStatus = "idle"
	StatusLoading FetchStatus = "loading"
	StatusSuccess FetchStatus = "success"
	StatusFailure FetchStatus = "failure"
)

// FetchState is a tagged variant: Quote is set only for StatusSuccess and
// Err only for StatusFailure.
type FetchState struct {
	Status FetchStatus
	Quote  Quote
	Err    *FetchError
}

func Idle() FetchState    { return FetchState{Status: StatusIdle} }
func Loading() FetchState { return FetchState{Status: StatusLoading} }

func Succeeded(q Quote) FetchState {
	return FetchState{Status: StatusSuccess, Quote: q}
}

func Failed(err *FetchError) FetchState {
	return FetchState{Status: StatusFailure, Err: err}
}

// IsSuccess reports whether the state carries a Quote.
func (s FetchState) IsSuccess() bool { return s.Status == StatusSuccess }

// CanStart reports whether a Loading transition is allowed from s.
func (s FetchState) CanStart() bool { return s.Status != StatusLoading }
