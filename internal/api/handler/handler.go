package handler

import "github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Term     *TermHandler
	Catalog  *CatalogHandler
	Schedule *ScheduleHandler
	Export   *ExportHandler
}

// NewHandler builds the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Term:     NewTermHandler(svc.Term),
		Catalog:  NewCatalogHandler(svc.Catalog),
		Schedule: NewScheduleHandler(svc.Schedule),
		Export:   NewExportHandler(svc.Export),
	}
}
