package schedule

import (
	"errors"
	"strings"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"compact 24h morning", "0700", 7 * 60, false},
		{"compact 24h evening", "2059", 20*60 + 59, false},
		{"24h with colon", "13:45", 13*60 + 45, false},
		{"12h AM", "07:30 AM", 7*60 + 30, false},
		{"12h PM", "01:15 PM", 13*60 + 15, false},
		{"noon", "12:00 PM", 12 * 60, false},
		{"midnight", "12:00 AM", 0, false},
		{"lowercase meridiem", "07:30 pm", 19*60 + 30, false},
		{"dotted meridiem", "07:30 p.m.", 19*60 + 30, false},
		{"surrounding spaces", "  08:00 AM ", 8 * 60, false},
		{"empty", "", 0, true},
		{"garbage", "garbage", 0, true},
		{"hour out of range 24h", "25:00", 0, true},
		{"hour out of range 12h", "13:00 PM", 0, true},
		{"minute out of range", "07:75", 0, true},
		{"compact wrong length", "070", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %d", tt.name, got)
				continue
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("%s: expected *ParseError, got %T", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: ParseClock(%q) = %d, want %d", tt.name, tt.input, got, tt.want)
		}
	}
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeRange
		wantErr bool
	}{
		{"compact offering form", "0700-0859", TimeRange{7 * 60, 8*60 + 59}, false},
		{"display form", "07:00 AM - 08:59 AM", TimeRange{7 * 60, 8*60 + 59}, false},
		{"display form across noon", "11:00 AM - 01:00 PM", TimeRange{11 * 60, 13 * 60}, false},
		{"no separator", "0700", TimeRange{}, true},
		{"bad start", "xx:00-08:00", TimeRange{}, true},
		{"bad end", "07:00-xx:00", TimeRange{}, true},
		{"zero length", "0800-0800", TimeRange{}, true},
		{"inverted", "0900-0800", TimeRange{}, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeRange(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", tt.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: ParseTimeRange(%q) = %v, want %v", tt.name, tt.input, got, tt.want)
		}
	}

	if _, err := ParseTimeRange("0900-0800"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted range should wrap ErrInvalidRange, got %v", err)
	}
}

// Formatting a valid range to the 12-hour display form and parsing it
// back must return the original minutes, across the whole day.
func TestClock12RoundTrip(t *testing.T) {
	samples := []TimeRange{
		{0, 1},
		{0, 30},
		{7 * 60, 8*60 + 59},
		{11*60 + 59, 12 * 60},
		{12 * 60, 12*60 + 1},
		{12*60 + 30, 13 * 60},
		{20 * 60, 23*60 + 59},
		{23 * 60, 23*60 + 59},
	}
	for _, r := range samples {
		text := r.String()
		back, err := ParseTimeRange(text)
		if err != nil {
			t.Errorf("round trip of %v: parse %q failed: %v", r, text, err)
			continue
		}
		if back != r {
			t.Errorf("round trip of %v via %q = %v", r, text, back)
		}
	}
}

func TestTimeRangeOverlapSymmetry(t *testing.T) {
	ranges := []TimeRange{
		{7 * 60, 8 * 60},
		{7*60 + 30, 8*60 + 30},
		{8 * 60, 9 * 60},
		{6 * 60, 10 * 60},
		{10 * 60, 11 * 60},
	}
	for _, a := range ranges {
		for _, b := range ranges {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Errorf("overlap not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestTouchingRangesDoNotOverlap(t *testing.T) {
	a := TimeRange{7 * 60, 8 * 60}
	b := TimeRange{8 * 60, 9 * 60}
	if a.Overlaps(b) || b.Overlaps(a) {
		t.Error("ranges touching at one endpoint must not overlap")
	}
}

func TestNewTimeRange(t *testing.T) {
	if _, err := NewTimeRange(8*60, 7*60); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted range: expected ErrInvalidRange, got %v", err)
	}
	if _, err := NewTimeRange(8*60, 8*60); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("zero-length range: expected ErrInvalidRange, got %v", err)
	}
	if _, err := NewTimeRange(-1, 60); err == nil {
		t.Error("negative start: expected error")
	}
	r, err := NewTimeRange(7*60, 8*60)
	if err != nil || r.Start != 7*60 || r.End != 8*60 {
		t.Errorf("valid range: got %v, %v", r, err)
	}
}

func TestClock12Format(t *testing.T) {
	tests := []struct {
		minutes TimeOfDay
		want    string
	}{
		{0, "12:00 AM"},
		{7*60 + 5, "07:05 AM"},
		{12 * 60, "12:00 PM"},
		{13*60 + 30, "01:30 PM"},
		{23*60 + 59, "11:59 PM"},
	}
	for _, tt := range tests {
		if got := tt.minutes.Clock12(); got != tt.want {
			t.Errorf("Clock12(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseClock("nope")
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("parse error should quote the input, got %v", err)
	}
}
