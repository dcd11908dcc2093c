package schedule

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    Day
		wantErr bool
	}{
		{"L", Monday, false},
		{"M", Tuesday, false},
		{"I", Wednesday, false},
		{"J", Thursday, false},
		{"V", Friday, false},
		{"S", Saturday, false},
		{"l", Monday, false},
		{"Lunes", Monday, false},
		{"Miércoles", Wednesday, false},
		{"miercoles", Wednesday, false},
		{"Sábado", Saturday, false},
		{"Wednesday", Wednesday, false},
		{" Martes ", Tuesday, false},
		{"D", 0, true},
		{"Domingo", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDay(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDay(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDay(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDay(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExpandDays(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Day
		wantErr bool
	}{
		{"spaced pair", "L I", []Day{Monday, Wednesday}, false},
		{"packed triple", "LMI", []Day{Monday, Tuesday, Wednesday}, false},
		{"dotted", "M.J.", []Day{Tuesday, Thursday}, false},
		{"single", "V", []Day{Friday}, false},
		{"unknown letter", "LXD", nil, true},
		{"separators only", " .-", nil, true},
		{"empty", "", nil, true},
	}
	for _, tt := range tests {
		got, err := ExpandDays(tt.pattern)
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
		if len(got) != len(tt.want) {
			t.Errorf("%s: ExpandDays(%q) = %v, want %v", tt.name, tt.pattern, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: day %d = %v, want %v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDayWeekday(t *testing.T) {
	if Monday.Weekday() != time.Monday {
		t.Errorf("Monday.Weekday() = %v", Monday.Weekday())
	}
	if Saturday.Weekday() != time.Saturday {
		t.Errorf("Saturday.Weekday() = %v", Saturday.Weekday())
	}
}

func TestAllDaysOrder(t *testing.T) {
	days := AllDays()
	if len(days) != 6 || days[0] != Monday || days[5] != Saturday {
		t.Errorf("AllDays() = %v", days)
	}
}
