package dataset

import "time"

// Timestamp layouts for the source tables. The primary tables use LayoutFull
// exclusively; the external dataset falls back through all three, loosest
// last.
const (
	LayoutFull    = "02/01/2006 15:04:05"
	LayoutMinutes = "02/01/2006 15:04"
	LayoutDate    = "02/01/2006"
)

// NowSentinel is the landing-time cell value that maps to the current
// wall-clock time at load.
const NowSentinel = "<now>"

// Timestamp is an instant that may be unknown (an ongoing mission or a
// missing cell). The zero value is unknown.
type Timestamp struct {
	Time  time.Time
	Known bool
}

// At returns a known timestamp.
func At(t time.Time) Timestamp { return Timestamp{Time: t, Known: true} }

// Unknown returns the unknown timestamp.
func Unknown() Timestamp { return Timestamp{} }

// ParseAny tries the given layouts in order and returns the first successful
// parse. The second result is false when no layout matches; intermediate
// failures are not swallowed silently, they simply advance to the next
// layout.
func ParseAny(s string, layouts ...string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
