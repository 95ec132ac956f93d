package units

import (
	"math"
	"time"
)

// Duration converts s to a time.Duration, rounded to the
// nanosecond. Values beyond the time.Duration range, infinities
// included, saturate to its bounds. NaN converts to 0.
func (s Seconds) Duration() time.Duration {
	ns := math.Round(float64(s) * float64(time.Second))
	switch {
	case math.IsNaN(ns):
		return 0
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ns)
}

// SecondsOf converts a time.Duration to Seconds, keeping the
// fractional part.
func SecondsOf(d time.Duration) Seconds {
	return Seconds(d.Seconds())
}
