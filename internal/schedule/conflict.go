package schedule

import (
	"errors"
	"fmt"
)

// ── Conflict detection ──────────────────────────────────────
//
// Design notes:
//   - Sections are grouped by day and compared pairwise within each
//     group; selection sets are tens of sections, so the O(n²) pass
//     needs no sweep-line.
//   - Overlap is strict half-open everywhere: a section ending at the
//     exact minute another begins is not a conflict. The source
//     program used this rule in some copies and a closed variant in
//     others; this package standardizes on half-open.
//   - Two meeting rows under the same NRC (lecture + lab) are not
//     reported against each other by default; Options.IncludeSameNRC
//     flips that policy. Exact duplicate rows are never reported.
// ─────────────────────────────────────────────────────────────

// ErrTooManySections rejects a selection larger than Options.MaxSections
// before any pairwise work happens.
var ErrTooManySections = errors.New("selection exceeds the section limit")

// ConflictPair is an unordered pair of sections that overlap in time
// on the same day. A is always the section with the smaller NRC so
// repeated runs report pairs in identical order.
type ConflictPair struct {
	A Section
	B Section
}

// ConflictSet groups detected pairs by day. Days iterate in grid order
// (Monday first); pairs within a day keep detection order.
type ConflictSet struct {
	days  []Day
	pairs map[Day][]ConflictPair
}

// Days lists the days that have at least one conflict, Monday first.
func (s *ConflictSet) Days() []Day {
	if s == nil {
		return nil
	}
	return s.days
}

// Pairs returns the conflicts recorded for one day, in detection order.
func (s *ConflictSet) Pairs(d Day) []ConflictPair {
	if s == nil {
		return nil
	}
	return s.pairs[d]
}

// Len counts recorded pairs across all days.
func (s *ConflictSet) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, ps := range s.pairs {
		n += len(ps)
	}
	return n
}

// Empty reports whether no conflicts were found.
func (s *ConflictSet) Empty() bool { return s.Len() == 0 }

// Involves reports whether the given NRC participates in any conflict
// recorded for the given day. The calendar projector uses this to flag
// cells.
func (s *ConflictSet) Involves(d Day, nrc string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.pairs[d] {
		if p.A.NRC == nrc || p.B.NRC == nrc {
			return true
		}
	}
	return false
}

func (s *ConflictSet) add(d Day, p ConflictPair) {
	if _, seen := s.pairs[d]; !seen {
		s.days = append(s.days, d)
	}
	s.pairs[d] = append(s.pairs[d], p)
}

// Options tunes conflict detection.
type Options struct {
	// IncludeSameNRC reports overlapping meetings that share one NRC
	// (e.g. a lecture and lab registered under the same offering).
	// Off by default: selecting one NRC is one registration, so its
	// internal overlaps are the institution's problem, not the
	// student's.
	IncludeSameNRC bool
	// MaxSections caps the input size; zero means no cap.
	MaxSections int
}

// DetectConflicts finds every pair of sections that overlap in time on
// a shared day. Sections with an invalid range are skipped entirely
// (the caller surfaces those as diagnostics) so malformed data can
// never produce a false conflict.
//
// Output is deterministic for a given input order: days appear Monday
// first, pairs within a day in detection order, and each pair is
// NRC-ordered.
func DetectConflicts(sections []Section, opts Options) (*ConflictSet, error) {
	if opts.MaxSections > 0 && len(sections) > opts.MaxSections {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManySections, len(sections), opts.MaxSections)
	}

	byDay := make(map[Day][]Section, numDays)
	for _, sec := range sections {
		if !sec.Day.Valid() || !sec.Range.Valid() {
			continue
		}
		byDay[sec.Day] = append(byDay[sec.Day], sec)
	}

	set := &ConflictSet{pairs: make(map[Day][]ConflictPair)}
	for _, day := range AllDays() {
		group := byDay[day]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if a.NRC == b.NRC {
					if !opts.IncludeSameNRC {
						continue
					}
					if a.Range == b.Range {
						// Duplicate rows of one meeting are data noise,
						// never a conflict.
						continue
					}
				}
				if !a.Range.Overlaps(b.Range) {
					continue
				}
				set.add(day, orderPair(a, b))
			}
		}
	}
	return set, nil
}

// orderPair fixes the in-pair ordering: smaller NRC first, earlier
// start first when NRCs tie.
func orderPair(a, b Section) ConflictPair {
	if a.NRC > b.NRC || (a.NRC == b.NRC && a.Range.Start > b.Range.Start) {
		a, b = b, a
	}
	return ConflictPair{A: a, B: b}
}
