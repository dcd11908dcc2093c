package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Day is one column of the weekly grid. SIIAU publishes offerings from
// Monday through Saturday; Sunday never appears in the source data.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// numDays is the size of the fixed weekday set.
const numDays = int(Saturday) + 1

var dayNames = [numDays]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// siiauDayCodes maps the single-letter day codes used by the SIIAU
// offering table. Note "I" is Wednesday (Miércoles) and "M" is Tuesday
// (Martes); the codes come from the Spanish day names.
var siiauDayCodes = map[rune]Day{
	'L': Monday,
	'M': Tuesday,
	'I': Wednesday,
	'J': Thursday,
	'V': Friday,
	'S': Saturday,
}

// dayAliases accepts spelled-out names in English and in the source
// locale, lowercase and accent-stripped.
var dayAliases = map[string]Day{
	"monday": Monday, "lunes": Monday,
	"tuesday": Tuesday, "martes": Tuesday,
	"wednesday": Wednesday, "miercoles": Wednesday,
	"thursday": Thursday, "jueves": Thursday,
	"friday": Friday, "viernes": Friday,
	"saturday": Saturday, "sabado": Saturday,
}

// AllDays returns Monday through Saturday in grid order.
func AllDays() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

func (d Day) Valid() bool { return d >= Monday && d <= Saturday }

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Weekday maps a Day onto Go's time.Weekday, for anchoring calendar
// exports onto concrete dates.
func (d Day) Weekday() time.Weekday {
	return time.Weekday((int(d) + 1) % 7)
}

// ParseDay accepts a SIIAU single-letter code ("L", "M", "I", "J", "V",
// "S") or a spelled-out day name in English or Spanish (accents
// optional).
func ParseDay(s string) (Day, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &ParseError{Input: s, Reason: "empty day"}
	}
	runes := []rune(strings.ToUpper(trimmed))
	if len(runes) == 1 {
		if d, ok := siiauDayCodes[runes[0]]; ok {
			return d, nil
		}
		return 0, &ParseError{Input: s, Reason: "unknown day code"}
	}
	if d, ok := dayAliases[stripAccents(strings.ToLower(trimmed))]; ok {
		return d, nil
	}
	return 0, &ParseError{Input: s, Reason: "unknown day name"}
}

// ExpandDays converts a raw SIIAU day-pattern string such as "L I" or
// "LMI" into the list of days it names, in pattern order. Separator
// characters (spaces, dots, dashes) are skipped; any other unknown
// letter fails the whole pattern so corrupt rows surface as
// diagnostics instead of silently losing meetings.
func ExpandDays(pattern string) ([]Day, error) {
	var days []Day
	for _, r := range strings.ToUpper(pattern) {
		switch r {
		case ' ', '.', '-', ',', '\t':
			continue
		}
		d, ok := siiauDayCodes[r]
		if !ok {
			return nil, &ParseError{Input: pattern, Reason: fmt.Sprintf("unknown day code %q", string(r))}
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, &ParseError{Input: pattern, Reason: "no day codes"}
	}
	return days, nil
}

// stripAccents folds the handful of accented vowels that appear in
// Spanish day names. Full Unicode normalization is not needed here.
func stripAccents(s string) string {
	replacer := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")
	return replacer.Replace(s)
}
