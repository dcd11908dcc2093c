package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/service"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/pkg/response"
)

// ScheduleHandler serves the schedule preview and saved-schedule
// endpoints.
type ScheduleHandler struct {
	svc service.ScheduleService
}

// NewScheduleHandler builds a ScheduleHandler.
func NewScheduleHandler(svc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Preview computes the conflict report and weekly grid for an NRC
// selection.
// POST /api/v1/schedules/preview
func (h *ScheduleHandler) Preview(c *gin.Context) {
	var req dto.PreviewScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13000, err.Error())
		return
	}

	resp, err := h.svc.Preview(c.Request.Context(), &req)
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// CreateSaved stores a named selection.
// POST /api/v1/schedules
func (h *ScheduleHandler) CreateSaved(c *gin.Context) {
	var req dto.CreateSavedScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13000, err.Error())
		return
	}

	resp, err := h.svc.CreateSaved(c.Request.Context(), &req)
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetSaved fetches one stored selection.
// GET /api/v1/schedules/:id
func (h *ScheduleHandler) GetSaved(c *gin.Context) {
	resp, err := h.svc.GetSaved(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// PreviewSaved recomputes a stored selection's preview.
// GET /api/v1/schedules/:id/preview
func (h *ScheduleHandler) PreviewSaved(c *gin.Context) {
	resp, err := h.svc.PreviewSaved(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// ListSaved lists a term's stored selections.
// GET /api/v1/schedules?term_id=xxx
func (h *ScheduleHandler) ListSaved(c *gin.Context) {
	termID := c.Query("term_id")
	if termID == "" {
		response.BadRequest(c, 13000, "term_id is required")
		return
	}

	resp, err := h.svc.ListSaved(c.Request.Context(), termID)
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// UpdateSaved updates a stored selection.
// PATCH /api/v1/schedules/:id
func (h *ScheduleHandler) UpdateSaved(c *gin.Context) {
	var req dto.UpdateSavedScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13000, err.Error())
		return
	}

	resp, err := h.svc.UpdateSaved(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// DeleteSaved removes a stored selection.
// DELETE /api/v1/schedules/:id
func (h *ScheduleHandler) DeleteSaved(c *gin.Context) {
	if err := h.svc.DeleteSaved(c.Request.Context(), c.Param("id")); err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, nil)
}

func handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleTermNotFound):
		response.NotFound(c, 13001, "term not found")
	case errors.Is(err, service.ErrSavedScheduleNotFound):
		response.NotFound(c, 13002, "saved schedule not found")
	case errors.Is(err, service.ErrScheduleNoSections):
		response.UnprocessableEntity(c, 13003, "none of the requested NRCs exist in this term")
	case errors.Is(err, service.ErrScheduleTooLarge):
		response.UnprocessableEntity(c, 13004, "selection exceeds the section limit")
	default:
		response.InternalError(c)
	}
}
