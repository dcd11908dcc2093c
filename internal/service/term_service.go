package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/repository"
)

// ── Term module business errors ──

var (
	ErrTermNotFound  = errors.New("term not found")
	ErrTermCodeTaken = errors.New("a term with this code already exists")
	ErrTermBadDates  = errors.New("term end date must be after its start date")
	ErrNoCurrentTerm = errors.New("no term is marked current")
)

const termDateLayout = "2006-01-02"

// TermService manages academic terms.
type TermService interface {
	Create(ctx context.Context, req *dto.CreateTermRequest) (*dto.TermResponse, error)
	Get(ctx context.Context, id string) (*dto.TermResponse, error)
	GetCurrent(ctx context.Context) (*dto.TermResponse, error)
	List(ctx context.Context) ([]dto.TermResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTermRequest) (*dto.TermResponse, error)
}

type termService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTermService builds a TermService.
func NewTermService(repo *repository.Repository, logger *zap.Logger) TermService {
	return &termService{repo: repo, logger: logger}
}

func (s *termService) Create(ctx context.Context, req *dto.CreateTermRequest) (*dto.TermResponse, error) {
	start, err := time.Parse(termDateLayout, req.StartDate)
	if err != nil {
		return nil, ErrTermBadDates
	}
	end, err := time.Parse(termDateLayout, req.EndDate)
	if err != nil || !end.After(start) {
		return nil, ErrTermBadDates
	}

	if _, err := s.repo.Term.GetByCode(ctx, req.Code); err == nil {
		return nil, ErrTermCodeTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("term lookup failed", zap.Error(err))
		return nil, err
	}

	if req.IsCurrent {
		if err := s.repo.Term.ClearCurrent(ctx); err != nil {
			s.logger.Error("clearing current term failed", zap.Error(err))
			return nil, err
		}
	}

	term := &model.Term{
		Code:      req.Code,
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		IsCurrent: req.IsCurrent,
	}
	if err := s.repo.Term.Create(ctx, term); err != nil {
		s.logger.Error("term create failed", zap.Error(err))
		return nil, err
	}
	return termToResponse(term), nil
}

func (s *termService) Get(ctx context.Context, id string) (*dto.TermResponse, error) {
	term, err := s.repo.Term.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		s.logger.Error("term lookup failed", zap.Error(err))
		return nil, err
	}
	return termToResponse(term), nil
}

func (s *termService) GetCurrent(ctx context.Context) (*dto.TermResponse, error) {
	term, err := s.repo.Term.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCurrentTerm
		}
		s.logger.Error("current term lookup failed", zap.Error(err))
		return nil, err
	}
	return termToResponse(term), nil
}

func (s *termService) List(ctx context.Context) ([]dto.TermResponse, error) {
	terms, err := s.repo.Term.List(ctx)
	if err != nil {
		s.logger.Error("term list failed", zap.Error(err))
		return nil, err
	}
	out := make([]dto.TermResponse, 0, len(terms))
	for i := range terms {
		out = append(out, *termToResponse(&terms[i]))
	}
	return out, nil
}

func (s *termService) Update(ctx context.Context, id string, req *dto.UpdateTermRequest) (*dto.TermResponse, error) {
	term, err := s.repo.Term.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTermNotFound
		}
		s.logger.Error("term lookup failed", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		term.Name = *req.Name
	}
	if req.StartDate != nil {
		start, err := time.Parse(termDateLayout, *req.StartDate)
		if err != nil {
			return nil, ErrTermBadDates
		}
		term.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(termDateLayout, *req.EndDate)
		if err != nil {
			return nil, ErrTermBadDates
		}
		term.EndDate = end
	}
	if !term.EndDate.After(term.StartDate) {
		return nil, ErrTermBadDates
	}
	if req.IsCurrent != nil && *req.IsCurrent && !term.IsCurrent {
		if err := s.repo.Term.ClearCurrent(ctx); err != nil {
			s.logger.Error("clearing current term failed", zap.Error(err))
			return nil, err
		}
		term.IsCurrent = true
	}

	if err := s.repo.Term.Update(ctx, term); err != nil {
		s.logger.Error("term update failed", zap.Error(err))
		return nil, err
	}
	return termToResponse(term), nil
}

func termToResponse(t *model.Term) *dto.TermResponse {
	return &dto.TermResponse{
		ID:        t.TermID,
		Code:      t.Code,
		Name:      t.Name,
		StartDate: t.StartDate.Format(termDateLayout),
		EndDate:   t.EndDate.Format(termDateLayout),
		IsCurrent: t.IsCurrent,
	}
}
