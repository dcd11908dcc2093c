package schedule

import (
	"errors"
)

// ── Calendar projection ─────────────────────────────────────
//
// The weekly grid is (hour bucket × day). A section lands in every
// bucket its range overlaps, so a two-hour class fills two cells; any
// visual merging of consecutive cells belongs to the rendering layer.
// ─────────────────────────────────────────────────────────────

// Entry is one section's presence in one grid cell.
type Entry struct {
	Section     Section
	Conflicting bool
}

// Grid is the projected weekly calendar. Cells preserve the order in
// which sections were supplied; the grid is rebuilt from scratch on
// every projection, never patched.
type Grid struct {
	Buckets []TimeRange
	Days    []Day

	cells  [][][]Entry // [bucket][day position]
	dayPos map[Day]int
}

// Cell returns the entries active during one bucket on one day. Out of
// range coordinates return nil.
func (g *Grid) Cell(bucket int, day Day) []Entry {
	if g == nil || bucket < 0 || bucket >= len(g.cells) {
		return nil
	}
	pos, ok := g.dayPos[day]
	if !ok {
		return nil
	}
	return g.cells[bucket][pos]
}

// ErrNoBuckets rejects a projection with no bucket list: that is a
// caller configuration bug, not a per-record data problem.
var ErrNoBuckets = errors.New("calendar projection requires a bucket list")

// ErrNoDays rejects a projection with no day columns.
var ErrNoDays = errors.New("calendar projection requires a day list")

// ProjectCalendar lays the sections onto a (bucket × day) grid. The
// bucket list is the caller's configuration (typically
// HourlyBuckets(7, 20) for the institution's class hours) and is used
// as given. Sections with invalid ranges are skipped, matching the
// conflict detector. A cell entry is flagged Conflicting when its
// section participates in any conflict recorded for that day.
func ProjectCalendar(sections []Section, buckets []TimeRange, days []Day, conflicts *ConflictSet) (*Grid, error) {
	if len(buckets) == 0 {
		return nil, ErrNoBuckets
	}
	if len(days) == 0 {
		return nil, ErrNoDays
	}

	grid := &Grid{
		Buckets: buckets,
		Days:    days,
		cells:   make([][][]Entry, len(buckets)),
		dayPos:  make(map[Day]int, len(days)),
	}
	for i := range buckets {
		grid.cells[i] = make([][]Entry, len(days))
	}
	for pos, d := range days {
		grid.dayPos[d] = pos
	}

	for _, sec := range sections {
		pos, shown := grid.dayPos[sec.Day]
		if !shown || !sec.Range.Valid() {
			continue
		}
		flagged := conflicts.Involves(sec.Day, sec.NRC)
		for i, bucket := range buckets {
			if bucket.Overlaps(sec.Range) {
				grid.cells[i][pos] = append(grid.cells[i][pos], Entry{Section: sec, Conflicting: flagged})
			}
		}
	}
	return grid, nil
}

// HourlyBuckets builds the display windows for whole clock hours from
// firstHour through lastHour inclusive. Each window spans :00–:59 of
// its hour, mirroring the printed sheet's "07:00 AM - 07:59 AM" rows;
// the one-minute gap between windows is display convention, and a
// section crossing an hour boundary still lands in both windows.
func HourlyBuckets(firstHour, lastHour int) []TimeRange {
	if firstHour < 0 || lastHour > 23 || firstHour > lastHour {
		return nil
	}
	buckets := make([]TimeRange, 0, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		buckets = append(buckets, TimeRange{Start: TimeOfDay(h * 60), End: TimeOfDay(h*60 + 59)})
	}
	return buckets
}
