package dto

// ── Schedule preview ──

// PreviewScheduleRequest asks for the conflict report and weekly grid
// of an NRC selection.
type PreviewScheduleRequest struct {
	TermID         string   `json:"term_id"          binding:"required,uuid"`
	NRCs           []string `json:"nrcs"             binding:"required,min=1,dive,numeric"`
	IncludeSameNRC bool     `json:"include_same_nrc"`
}

// SectionView is one expanded meeting placed on the preview.
type SectionView struct {
	NRC        string `json:"nrc"`
	Subject    string `json:"subject"`
	Day        string `json:"day"`
	Time       string `json:"time"`
	Building   string `json:"building,omitempty"`
	Room       string `json:"room,omitempty"`
	Instructor string `json:"instructor,omitempty"`
}

// ConflictView is one detected overlap.
type ConflictView struct {
	Day     string      `json:"day"`
	First   SectionView `json:"first"`
	Second  SectionView `json:"second"`
	Message string      `json:"message"`
}

// DiagnosticView reports a catalog row that was excluded from the
// computation because its time or day text could not be normalized.
type DiagnosticView struct {
	NRC    string `json:"nrc"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// GridCell is one (hour, day) cell of the weekly grid.
type GridCell struct {
	Entries []GridEntry `json:"entries"`
}

// GridEntry is one section's presence in a cell.
type GridEntry struct {
	NRC         string `json:"nrc"`
	Subject     string `json:"subject"`
	Room        string `json:"room,omitempty"`
	Conflicting bool   `json:"conflicting"`
}

// GridRow is one hour bucket across the week.
type GridRow struct {
	Hour  string     `json:"hour"` // e.g. "07:00 AM - 07:59 AM"
	Cells []GridCell `json:"cells"`
}

// GridView is the projected weekly calendar.
type GridView struct {
	Days []string  `json:"days"`
	Rows []GridRow `json:"rows"`
}

// PreviewScheduleResponse is the full preview: the placed sections,
// the conflict report, the weekly grid, and any data problems found
// along the way.
type PreviewScheduleResponse struct {
	TermID      string           `json:"term_id"`
	Sections    []SectionView    `json:"sections"`
	Conflicts   []ConflictView   `json:"conflicts"`
	Messages    []string         `json:"messages"`
	Grid        GridView         `json:"grid"`
	Diagnostics []DiagnosticView `json:"diagnostics,omitempty"`
	UnknownNRCs []string         `json:"unknown_nrcs,omitempty"`
}

// ── Saved schedules ──

// CreateSavedScheduleRequest stores a named NRC selection.
type CreateSavedScheduleRequest struct {
	TermID         string   `json:"term_id"          binding:"required,uuid"`
	Name           string   `json:"name"             binding:"required,min=1,max=100"`
	NRCs           []string `json:"nrcs"             binding:"required,min=1,dive,numeric"`
	IncludeSameNRC bool     `json:"include_same_nrc"`
}

// UpdateSavedScheduleRequest updates a stored selection. Nil fields
// stay as-is.
type UpdateSavedScheduleRequest struct {
	Name           *string  `json:"name"             binding:"omitempty,min=1,max=100"`
	NRCs           []string `json:"nrcs"             binding:"omitempty,min=1,dive,numeric"`
	IncludeSameNRC *bool    `json:"include_same_nrc"`
}

// SavedScheduleResponse is one stored selection.
type SavedScheduleResponse struct {
	ID             string   `json:"id"`
	TermID         string   `json:"term_id"`
	Name           string   `json:"name"`
	NRCs           []string `json:"nrcs"`
	IncludeSameNRC bool     `json:"include_same_nrc"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}
