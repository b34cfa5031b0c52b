package humanize

import (
	"strconv"
	"strings"
	"time"
)

// periods is ordered largest-first; months and years use the civil
// approximations of 30 and 365 days.
var periods = []struct {
	singular string
	plural   string
	seconds  int64
}{
	{"year", "years", 60 * 60 * 24 * 365},
	{"month", "months", 60 * 60 * 24 * 30},
	{"day", "days", 60 * 60 * 24},
	{"hour", "hours", 60 * 60},
	{"minute", "minutes", 60},
	{"second", "seconds", 1},
}

// Duration renders d as a readable phrase like "1 hour, 2 minutes, 5 seconds".
// Fractional seconds are dropped; durations under one second yield an empty
// string.
func Duration(d time.Duration) string {
	return Seconds(int64(d.Seconds()))
}

// Seconds renders a second count the same way Duration does.
func Seconds(n int64) string {
	var parts []string
	for _, p := range periods {
		if n < p.seconds {
			continue
		}
		value := n / p.seconds
		n %= p.seconds
		if value == 0 {
			continue
		}
		unit := p.singular
		if value > 1 {
			unit = p.plural
		}
		parts = append(parts, strconv.FormatInt(value, 10)+" "+unit)
	}
	return strings.Join(parts, ", ")
}
