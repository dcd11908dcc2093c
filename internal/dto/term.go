package dto

// ── Term requests ──

// CreateTermRequest registers a new academic term.
type CreateTermRequest struct {
	Code      string `json:"code"       binding:"required,len=6,numeric"`
	Name      string `json:"name"       binding:"required,max=100"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	IsCurrent bool   `json:"is_current"`
}

// UpdateTermRequest updates an existing term. Nil fields stay as-is.
type UpdateTermRequest struct {
	Name      *string `json:"name"       binding:"omitempty,max=100"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	IsCurrent *bool   `json:"is_current"`
}
