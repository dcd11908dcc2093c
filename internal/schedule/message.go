package schedule

import "fmt"

// FormatConflict renders one pair as a single human-readable line,
// naming both sections, the shared day, and both time ranges. The UI
// and export layers use the text verbatim.
func FormatConflict(day Day, p ConflictPair) string {
	return fmt.Sprintf("%s: %s at %s overlaps %s at %s",
		day, p.A.Label(), p.A.Range, p.B.Label(), p.B.Range)
}

// FormatConflicts renders the whole set, one line per pair, in the
// set's iteration order: day order first, then detection order within
// the day. Pure function; an empty set yields an empty slice.
func FormatConflicts(set *ConflictSet) []string {
	if set.Empty() {
		return nil
	}
	lines := make([]string, 0, set.Len())
	for _, day := range set.Days() {
		for _, p := range set.Pairs(day) {
			lines = append(lines, FormatConflict(day, p))
		}
	}
	return lines
}
