package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
)

// ── SIIAU workbook parser ───────────────────────────────────
//
// Responsibility: turn a published course-offering workbook into
// CourseSection rows with their Meetings.
//
// Design decisions:
//   - The header row is located by content (the cell "NRC"), not by
//     position; the published sheets carry a variable-height banner
//     above it.
//   - Section-level cells (NRC, Clave, Materia, Sec, CR, CUP, DIS)
//     are forward-filled: a multi-session offering prints them only
//     on its first row.
//   - Rows without both a time and a day pattern are counted as
//     skipped, never fatal; the sheets mix in subtotal and note rows.
//   - Time and day text is stored verbatim. Normalization happens at
//     preview time so one bad cell degrades to a diagnostic there.
// ─────────────────────────────────────────────────────────────

const workbookMaxWarnings = 20

// ErrWorkbookNoHeader means no sheet contained the expected NRC
// header row.
var ErrWorkbookNoHeader = errors.New("workbook has no offering header row")

// workbookColumns maps normalized header captions to canonical keys.
var workbookColumns = map[string]string{
	"NRC":      "nrc",
	"CLAVE":    "clave",
	"MATERIA":  "materia",
	"SEC":      "sec",
	"SECC":     "sec",
	"CR":       "cr",
	"CUP":      "cup",
	"DIS":      "dis",
	"SES":      "ses",
	"HORA":     "hora",
	"DIAS":     "dias",
	"DÍAS":     "dias",
	"EDIF":     "edif",
	"AULA":     "aula",
	"PERIODO":  "periodo",
	"PROFESOR": "profesor",
}

// WorkbookStats summarizes one parse run.
type WorkbookStats struct {
	Sections    int
	Meetings    int
	SkippedRows int
	Warnings    []string
}

func (st *WorkbookStats) warn(format string, args ...interface{}) {
	if len(st.Warnings) < workbookMaxWarnings {
		st.Warnings = append(st.Warnings, fmt.Sprintf(format, args...))
	}
}

// ParseWorkbook reads a SIIAU offering workbook and returns the
// catalog it describes. Sections keep sheet order; meetings keep row
// order within their section.
func ParseWorkbook(reader io.Reader) ([]model.CourseSection, WorkbookStats, error) {
	var stats WorkbookStats

	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, stats, fmt.Errorf("workbook open failed: %w", err)
	}
	defer f.Close()

	byNRC := make(map[string]*model.CourseSection)
	var order []string
	headerFound := false

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, stats, fmt.Errorf("sheet %q read failed: %w", sheet, err)
		}
		headerIdx, cols := findHeader(rows)
		if cols == nil {
			continue
		}
		headerFound = true

		var carry model.CourseSection // forward-filled section fields
		for i := headerIdx + 1; i < len(rows); i++ {
			row := rows[i]
			nrc := cellAt(row, cols["nrc"])
			if nrc != "" {
				if !isNumeric(nrc) {
					// Subtotal or banner noise between blocks.
					stats.SkippedRows++
					continue
				}
				carry = model.CourseSection{
					NRC:       nrc,
					CourseKey: cellAt(row, cols["clave"]),
					Subject:   cellAt(row, cols["materia"]),
					Section:   cellAt(row, cols["sec"]),
					Credits:   cellInt(row, cols["cr"]),
					Capacity:  cellInt(row, cols["cup"]),
					Available: cellInt(row, cols["dis"]),
				}
			}
			if carry.NRC == "" {
				stats.SkippedRows++
				continue
			}

			timeText := cellAt(row, cols["hora"])
			daysText := cellAt(row, cols["dias"])
			if timeText == "" && daysText == "" {
				stats.SkippedRows++
				continue
			}
			if timeText == "" || daysText == "" {
				stats.SkippedRows++
				stats.warn("NRC %s: row %d has time %q days %q, skipped", carry.NRC, i+1, timeText, daysText)
				continue
			}

			sec, seen := byNRC[carry.NRC]
			if !seen {
				copied := carry
				byNRC[carry.NRC] = &copied
				order = append(order, carry.NRC)
				sec = &copied
			}
			session := cellInt(row, cols["ses"])
			if session == 0 {
				session = len(sec.Meetings) + 1
			}
			sec.Meetings = append(sec.Meetings, model.Meeting{
				Session:    session,
				TimeText:   timeText,
				DaysText:   daysText,
				Building:   cellAt(row, cols["edif"]),
				Room:       cellAt(row, cols["aula"]),
				Period:     cellAt(row, cols["periodo"]),
				Instructor: cellAt(row, cols["profesor"]),
			})
			stats.Meetings++
		}
	}

	if !headerFound {
		return nil, stats, ErrWorkbookNoHeader
	}

	sections := make([]model.CourseSection, 0, len(order))
	for _, nrc := range order {
		sections = append(sections, *byNRC[nrc])
	}
	stats.Sections = len(sections)
	return sections, stats, nil
}

// findHeader locates the header row (the one holding "NRC") and maps
// canonical column keys to column indexes.
func findHeader(rows [][]string) (int, map[string]int) {
	for i, row := range rows {
		cols := map[string]int{
			"nrc": -1, "clave": -1, "materia": -1, "sec": -1,
			"cr": -1, "cup": -1, "dis": -1, "ses": -1,
			"hora": -1, "dias": -1, "edif": -1, "aula": -1,
			"periodo": -1, "profesor": -1,
		}
		for j, cell := range row {
			key, known := workbookColumns[strings.ToUpper(strings.TrimSpace(cell))]
			if known && cols[key] < 0 {
				cols[key] = j
			}
		}
		if cols["nrc"] < 0 || cols["hora"] < 0 || cols["dias"] < 0 {
			continue
		}
		return i, cols
	}
	return -1, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, idx int) int {
	n, err := strconv.Atoi(cellAt(row, idx))
	if err != nil {
		return 0
	}
	return n
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
