package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/service"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/pkg/response"
)

// ExportHandler serves the download endpoints.
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler builds an ExportHandler.
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportICS downloads a saved schedule as an iCalendar file.
// GET /api/v1/schedules/:id/export/ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	buf, filename, err := h.svc.ExportICS(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleExportError(c, err)
		return
	}
	writeDownload(c, buf.Bytes(), filename, "text/calendar")
}

// ExportJSON downloads a saved schedule's preview as JSON.
// GET /api/v1/schedules/:id/export/json
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	buf, filename, err := h.svc.ExportJSON(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleExportError(c, err)
		return
	}
	writeDownload(c, buf.Bytes(), filename, "application/json")
}

func writeDownload(c *gin.Context, body []byte, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, body)
}

func handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSavedScheduleNotFound):
		response.NotFound(c, 14001, "saved schedule not found")
	case errors.Is(err, service.ErrScheduleTermNotFound):
		response.NotFound(c, 14002, "term not found")
	case errors.Is(err, service.ErrScheduleNoSections):
		response.UnprocessableEntity(c, 14003, "none of the schedule's NRCs exist in this term")
	case errors.Is(err, service.ErrExportNothingToExport):
		response.UnprocessableEntity(c, 14004, "schedule has no placeable sections")
	default:
		response.InternalError(c)
	}
}
