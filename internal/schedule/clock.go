package schedule

import (
	"errors"
	"fmt"
	"strings"
)

// ── Time-of-day values ──────────────────────────────────────
//
// All comparisons in this package run on integer minutes since
// midnight. The upstream sources deliver two textual shapes:
//
//   - the raw offering table uses the compact 24-hour form "0700-0859"
//   - processed sheets carry the display form "07:00 AM - 08:59 AM"
//
// Both are normalized here; nothing downstream ever re-parses text.
// ─────────────────────────────────────────────────────────────

// MinutesPerDay bounds a TimeOfDay value.
const MinutesPerDay = 24 * 60

// TimeOfDay is a clock time as minutes since midnight, 0–1439.
type TimeOfDay int

func (t TimeOfDay) Valid() bool { return t >= 0 && t < MinutesPerDay }

// Clock12 renders the value in the 12-hour display form used by the
// offering sheets, e.g. "07:30 AM".
func (t TimeOfDay) Clock12() string {
	h, m := int(t)/60, int(t)%60
	meridiem := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		meridiem = "PM"
	case h > 12:
		h -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", h, m, meridiem)
}

// TimeRange is a same-day interval. Invariant: Start < End; the
// constructor and parser reject zero-length and inverted ranges.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ErrInvalidRange marks a parsed range whose start does not precede
// its end.
var ErrInvalidRange = errors.New("time range start must precede end")

// NewTimeRange validates and builds a TimeRange.
func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Valid() || !end.Valid() {
		return TimeRange{}, fmt.Errorf("time of day out of bounds: %d-%d", start, end)
	}
	if start >= end {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether two ranges share any minute, using strict
// half-open semantics: a range ending at the exact minute another
// begins does not overlap it.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// Valid reports whether the range satisfies its invariant. The zero
// TimeRange is invalid, so a forgotten parse can never masquerade as
// a midnight meeting.
func (r TimeRange) Valid() bool {
	return r.Start.Valid() && r.End.Valid() && r.Start < r.End
}

func (r TimeRange) String() string {
	return r.Start.Clock12() + " - " + r.End.Clock12()
}

// ParseError reports time or day text that could not be normalized.
// Callers must treat the affected record as "unknown time": it is
// excluded from overlap computation, never compared as midnight.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseClock normalizes a single clock-time string. Accepted forms:
//
//	"0730"       compact 24-hour, as in the raw offering table
//	"07:30"      24-hour with separator
//	"07:30 PM"   12-hour with meridiem, case-insensitive
func ParseClock(s string) (TimeOfDay, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, &ParseError{Input: s, Reason: "empty time"}
	}

	upper := strings.ToUpper(text)
	meridiem := ""
	for _, suffix := range []string{"AM", "A.M.", "PM", "P.M."} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = string(suffix[0])
			text = strings.TrimSpace(text[:len(text)-len(suffix)])
			break
		}
	}

	var hour, minute int
	switch {
	case strings.Contains(text, ":"):
		if _, err := fmt.Sscanf(text, "%d:%d", &hour, &minute); err != nil {
			return 0, &ParseError{Input: s, Reason: "malformed clock time"}
		}
	case len(text) == 4 && isDigits(text):
		hour = int(text[0]-'0')*10 + int(text[1]-'0')
		minute = int(text[2]-'0')*10 + int(text[3]-'0')
	default:
		return 0, &ParseError{Input: s, Reason: "unrecognized time format"}
	}

	if minute < 0 || minute > 59 {
		return 0, &ParseError{Input: s, Reason: "minute out of range"}
	}

	switch meridiem {
	case "A":
		if hour < 1 || hour > 12 {
			return 0, &ParseError{Input: s, Reason: "hour out of range"}
		}
		if hour == 12 {
			hour = 0
		}
	case "P":
		if hour < 1 || hour > 12 {
			return 0, &ParseError{Input: s, Reason: "hour out of range"}
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, &ParseError{Input: s, Reason: "hour out of range"}
		}
	}

	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeRange normalizes a full range string in either source
// shape ("0700-0859" or "07:00 AM - 08:59 AM"). Zero-length and
// inverted ranges are rejected with a ParseError wrapping
// ErrInvalidRange.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return TimeRange{}, &ParseError{Input: s, Reason: "expected start-end pair"}
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return TimeRange{}, &ParseError{Input: s, Reason: "bad start: " + err.(*ParseError).Reason}
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return TimeRange{}, &ParseError{Input: s, Reason: "bad end: " + err.(*ParseError).Reason}
	}
	if start >= end {
		return TimeRange{}, &ParseError{Input: s, Reason: ErrInvalidRange.Error(), Err: ErrInvalidRange}
	}
	return TimeRange{Start: start, End: end}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
