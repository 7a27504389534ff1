package models

import (
	"regexp"
	"strings"
)

// Ticker is a normalized stock symbol: 1-10 uppercase alphanumeric characters.
type Ticker string

var tickerPattern = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)

// ParseTicker trims and uppercases raw user input and reports whether the
// result is a valid Ticker.
func ParseTicker(raw string) (Ticker, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if !tickerPattern.MatchString(s) {
		return "", false
	}
	return Ticker(s), true
}

func (t Ticker) String() string { return string(t) }
