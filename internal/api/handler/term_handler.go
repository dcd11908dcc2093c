package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/service"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/pkg/response"
)

// TermHandler serves the term endpoints.
type TermHandler struct {
	svc service.TermService
}

// NewTermHandler builds a TermHandler.
func NewTermHandler(svc service.TermService) *TermHandler {
	return &TermHandler{svc: svc}
}

// Create registers a term.
// POST /api/v1/terms
func (h *TermHandler) Create(c *gin.Context) {
	var req dto.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11000, err.Error())
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleTermError(c, err)
		return
	}
	response.Created(c, resp)
}

// Get fetches one term.
// GET /api/v1/terms/:id
func (h *TermHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleTermError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetCurrent fetches the term marked current.
// GET /api/v1/terms/current
func (h *TermHandler) GetCurrent(c *gin.Context) {
	resp, err := h.svc.GetCurrent(c.Request.Context())
	if err != nil {
		handleTermError(c, err)
		return
	}
	response.OK(c, resp)
}

// List lists every term, newest first.
// GET /api/v1/terms
func (h *TermHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleTermError(c, err)
		return
	}
	response.OK(c, resp)
}

// Update updates a term.
// PATCH /api/v1/terms/:id
func (h *TermHandler) Update(c *gin.Context) {
	var req dto.UpdateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11000, err.Error())
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleTermError(c, err)
		return
	}
	response.OK(c, resp)
}

func handleTermError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTermNotFound):
		response.NotFound(c, 11001, "term not found")
	case errors.Is(err, service.ErrNoCurrentTerm):
		response.NotFound(c, 11002, "no term is marked current")
	case errors.Is(err, service.ErrTermCodeTaken):
		response.Conflict(c, 11003, "a term with this code already exists")
	case errors.Is(err, service.ErrTermBadDates):
		response.BadRequest(c, 11004, "term dates are invalid")
	default:
		response.InternalError(c)
	}
}
