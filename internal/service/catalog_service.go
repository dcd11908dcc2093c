package service

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/repository"
)

// ── Catalog module business errors ──

var (
	ErrCatalogTermNotFound    = errors.New("catalog term not found")
	ErrCatalogWorkbookInvalid = errors.New("offering workbook could not be parsed")
	ErrCatalogEmpty           = errors.New("offering workbook contains no sections")
	ErrCatalogSectionNotFound = errors.New("section not found in this term")
)

// CatalogService manages the per-term course catalog.
//
// Imports use a full-replace strategy: parse the workbook first, then
// swap the term's whole catalog in one transaction. A failed parse
// leaves the stored catalog untouched.
type CatalogService interface {
	// ImportWorkbook replaces a term's catalog from a SIIAU offering
	// workbook.
	ImportWorkbook(ctx context.Context, termID string, reader io.Reader) (*dto.ImportCatalogResponse, error)
	// ListSections pages through a term's catalog.
	ListSections(ctx context.Context, termID string, req *dto.ListSectionsRequest) (*dto.ListSectionsResponse, error)
	// GetSection fetches one offering by NRC.
	GetSection(ctx context.Context, termID, nrc string) (*dto.SectionResponse, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService builds a CatalogService.
func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ImportWorkbook(ctx context.Context, termID string, reader io.Reader) (*dto.ImportCatalogResponse, error) {
	term, err := s.resolveTerm(ctx, termID)
	if err != nil {
		return nil, err
	}

	sections, stats, err := ParseWorkbook(reader)
	if err != nil {
		s.logger.Warn("workbook parse failed", zap.String("term", term.Code), zap.Error(err))
		return nil, ErrCatalogWorkbookInvalid
	}
	if len(sections) == 0 {
		return nil, ErrCatalogEmpty
	}
	for i := range sections {
		sections[i].TermID = term.TermID
	}

	if err := s.repo.CourseSection.ReplaceByTerm(ctx, term.TermID, sections); err != nil {
		s.logger.Error("catalog replace failed", zap.String("term", term.Code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("catalog imported",
		zap.String("term", term.Code),
		zap.Int("sections", stats.Sections),
		zap.Int("meetings", stats.Meetings),
		zap.Int("skipped_rows", stats.SkippedRows),
	)
	return &dto.ImportCatalogResponse{
		TermID:       term.TermID,
		SectionCount: stats.Sections,
		MeetingCount: stats.Meetings,
		SkippedRows:  stats.SkippedRows,
		Warnings:     stats.Warnings,
	}, nil
}

func (s *catalogService) ListSections(ctx context.Context, termID string, req *dto.ListSectionsRequest) (*dto.ListSectionsResponse, error) {
	term, err := s.resolveTerm(ctx, termID)
	if err != nil {
		return nil, err
	}

	filter := repository.SectionFilter{
		CourseKey: req.CourseKey,
		Subject:   req.Subject,
		OnlyOpen:  req.OnlyOpen,
		Limit:     req.GetPageSize(),
		Offset:    req.GetOffset(),
	}
	sections, total, err := s.repo.CourseSection.ListByTerm(ctx, term.TermID, filter)
	if err != nil {
		s.logger.Error("catalog list failed", zap.String("term", term.Code), zap.Error(err))
		return nil, err
	}

	out := make([]dto.SectionResponse, 0, len(sections))
	for i := range sections {
		out = append(out, *sectionToResponse(&sections[i]))
	}
	return &dto.ListSectionsResponse{
		Total:    total,
		Page:     req.GetPage(),
		PageSize: req.GetPageSize(),
		Sections: out,
	}, nil
}

func (s *catalogService) GetSection(ctx context.Context, termID, nrc string) (*dto.SectionResponse, error) {
	term, err := s.resolveTerm(ctx, termID)
	if err != nil {
		return nil, err
	}
	sec, err := s.repo.CourseSection.GetByNRC(ctx, term.TermID, nrc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogSectionNotFound
		}
		s.logger.Error("section lookup failed", zap.String("nrc", nrc), zap.Error(err))
		return nil, err
	}
	return sectionToResponse(sec), nil
}

func (s *catalogService) resolveTerm(ctx context.Context, termID string) (*model.Term, error) {
	term, err := s.repo.Term.GetByID(ctx, termID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogTermNotFound
		}
		s.logger.Error("term lookup failed", zap.Error(err))
		return nil, err
	}
	return term, nil
}

func sectionToResponse(sec *model.CourseSection) *dto.SectionResponse {
	meetings := make([]dto.MeetingResponse, 0, len(sec.Meetings))
	for _, m := range sec.Meetings {
		meetings = append(meetings, dto.MeetingResponse{
			Session:    m.Session,
			Time:       m.TimeText,
			Days:       m.DaysText,
			Building:   m.Building,
			Room:       m.Room,
			Period:     m.Period,
			Instructor: m.Instructor,
		})
	}
	return &dto.SectionResponse{
		NRC:       sec.NRC,
		CourseKey: sec.CourseKey,
		Subject:   sec.Subject,
		Section:   sec.Section,
		Credits:   sec.Credits,
		Capacity:  sec.Capacity,
		Available: sec.Available,
		Meetings:  meetings,
	}
}
