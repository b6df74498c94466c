package duration

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidDuration indicates that a duration string could not be parsed.
var ErrInvalidDuration = errors.New("invalid duration string")

// Duration is a parsed token lifetime.
//
// Valid follows the convention of the sql.Null types: when false, the input
// requested a lifetime with no expiry at all, which is distinct from a
// zero-length duration such as "0s".
type Duration struct {
	Duration time.Duration
	Valid    bool
}

// NoExpiry returns a Duration representing an unlimited lifetime.
func NoExpiry() Duration {
	return Duration{}
}

// Of returns a valid Duration wrapping d.
func Of(d time.Duration) Duration {
	return Duration{Duration: d, Valid: true}
}

// Seconds returns the duration as a whole number of seconds,
// truncating any sub-second remainder.
func (d Duration) Seconds() int {
	return int(d.Duration / time.Second)
}

var units = map[string]time.Duration{
	"ms": time.Millisecond,
	"s":  time.Second,
	"m":  time.Minute,
	"h":  time.Hour,
	"d":  24 * time.Hour,
	"w":  7 * 24 * time.Hour,
}

// Parse parses a compact duration string such as "4w", "30d" or "1h30m".
//
// The input is one or more <integer><unit> segments, where the unit is one
// of ms, s, m, h, d or w. Segment values are summed. The bare sentinel
// values "-1" and "0" request no expiry and yield an invalid Duration
// rather than an error. Anything else that is not entirely made up of
// valid segments fails with ErrInvalidDuration.
func Parse(s string) (Duration, error) {
	if s == "-1" || s == "0" {
		return NoExpiry(), nil
	}
	if s == "" {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	var total time.Duration
	for i := 0; i < len(s); {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		amount, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}

		if i == len(s) {
			// Trailing number with no unit.
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}

		unit := string(s[i])
		if s[i] == 'm' && i+1 < len(s) && s[i+1] == 's' {
			unit = "ms"
		}
		i += len(unit)

		unitDuration, ok := units[unit]
		if !ok {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}

		total += time.Duration(amount) * unitDuration
	}

	return Of(total), nil
}
