package web

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Comma renders an integer with thousands separators.
func Comma(n int64) string {
	return humanize.Comma(n)
}

// Abbreviate shortens large counts with K/M/B suffixes and one decimal
// place (1234000 → "1.2M"). Values below 1000 keep comma formatting.
func Abbreviate(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000_000, 'f', 1, 64) + "B"
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return humanize.Comma(n)
	}
}

// FormatTime renders the snapshot timestamp for the "last updated" line.
func FormatTime(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006 15:04:05 MST")
}
