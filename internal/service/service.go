package service

import (
	"go.uber.org/zap"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/config"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/repository"
)

// Service aggregates every business-logic interface.
type Service struct {
	Term     TermService
	Catalog  CatalogService
	Schedule ScheduleService
	Export   ExportService
}

// NewService builds the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	schedules := NewScheduleService(cfg, repo, logger)
	return &Service{
		Term:     NewTermService(repo, logger),
		Catalog:  NewCatalogService(repo, logger),
		Schedule: schedules,
		Export:   NewExportService(repo, schedules, logger),
	}
}
