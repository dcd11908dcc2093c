package dto

// ── Catalog import ──

// ImportCatalogResponse reports a workbook import.
type ImportCatalogResponse struct {
	TermID       string   `json:"term_id"`
	SectionCount int      `json:"section_count"`
	MeetingCount int      `json:"meeting_count"`
	SkippedRows  int      `json:"skipped_rows"`
	Warnings     []string `json:"warnings,omitempty"`
}

// ── Catalog listing ──

// ListSectionsRequest narrows and pages a catalog listing.
type ListSectionsRequest struct {
	PaginationRequest
	CourseKey string `form:"course_key" binding:"omitempty,max=10"`
	Subject   string `form:"subject"    binding:"omitempty,max=150"`
	OnlyOpen  bool   `form:"only_open"`
}

// MeetingResponse is one session row of an offering.
type MeetingResponse struct {
	Session    int    `json:"session"`
	Time       string `json:"time"`
	Days       string `json:"days"`
	Building   string `json:"building,omitempty"`
	Room       string `json:"room,omitempty"`
	Period     string `json:"period,omitempty"`
	Instructor string `json:"instructor,omitempty"`
}

// SectionResponse is one catalog offering with its meetings.
type SectionResponse struct {
	NRC       string            `json:"nrc"`
	CourseKey string            `json:"course_key"`
	Subject   string            `json:"subject"`
	Section   string            `json:"section"`
	Credits   int               `json:"credits"`
	Capacity  int               `json:"capacity"`
	Available int               `json:"available"`
	Meetings  []MeetingResponse `json:"meetings"`
}

// ListSectionsResponse is a page of catalog offerings.
type ListSectionsResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Sections []SectionResponse `json:"sections"`
}
