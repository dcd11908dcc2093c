package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/service"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/pkg/response"
)

// CatalogHandler serves the course-catalog endpoints.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler builds a CatalogHandler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Import replaces a term's catalog from an uploaded offering workbook.
// POST /api/v1/terms/:id/catalog
// multipart/form-data, field="file"
func (h *CatalogHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 12000, "upload the offering workbook in the \"file\" field")
		return
	}
	defer file.Close()

	resp, err := h.svc.ImportWorkbook(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.Created(c, resp)
}

// List pages through a term's catalog.
// GET /api/v1/terms/:id/catalog
func (h *CatalogHandler) List(c *gin.Context) {
	var req dto.ListSectionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 12000, err.Error())
		return
	}

	resp, err := h.svc.ListSections(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OKPage(c, resp.Sections, resp.Total, resp.Page, resp.PageSize)
}

// Get fetches one offering.
// GET /api/v1/terms/:id/catalog/:nrc
func (h *CatalogHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetSection(c.Request.Context(), c.Param("id"), c.Param("nrc"))
	if err != nil {
		handleCatalogError(c, err)
		return
	}
	response.OK(c, resp)
}

func handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCatalogTermNotFound):
		response.NotFound(c, 12001, "term not found")
	case errors.Is(err, service.ErrCatalogSectionNotFound):
		response.NotFound(c, 12002, "section not found in this term")
	case errors.Is(err, service.ErrCatalogWorkbookInvalid):
		response.UnprocessableEntity(c, 12003, "offering workbook could not be parsed")
	case errors.Is(err, service.ErrCatalogEmpty):
		response.UnprocessableEntity(c, 12004, "offering workbook contains no sections")
	default:
		response.InternalError(c)
	}
}
