package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/config"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/repository"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/schedule"
)

// ── Schedule module business errors ──

var (
	ErrScheduleTermNotFound  = errors.New("schedule term not found")
	ErrScheduleNoSections    = errors.New("none of the requested NRCs exist in this term")
	ErrScheduleTooLarge      = errors.New("selection exceeds the section limit")
	ErrSavedScheduleNotFound = errors.New("saved schedule not found")
)

// ── ScheduleService interface ───────────────────────────────
//
// Design notes:
//   - Preview is pure computation over the stored catalog: no state is
//     written, and the same request always yields the same response.
//   - Catalog rows whose time or day text cannot be normalized are
//     excluded from the conflict and grid computation and surfaced as
//     diagnostics; they never fail the whole preview.
//   - Saved schedules store the NRC selection only. The preview is
//     recomputed on demand so a catalog refresh is picked up
//     automatically.
// ─────────────────────────────────────────────────────────────

// ScheduleService builds schedule previews and manages saved
// selections.
type ScheduleService interface {
	// Preview computes the conflict report and weekly grid for an NRC
	// selection.
	Preview(ctx context.Context, req *dto.PreviewScheduleRequest) (*dto.PreviewScheduleResponse, error)
	// PreviewSaved recomputes the preview of a stored selection.
	PreviewSaved(ctx context.Context, id string) (*dto.PreviewScheduleResponse, error)
	// CreateSaved stores a named selection.
	CreateSaved(ctx context.Context, req *dto.CreateSavedScheduleRequest) (*dto.SavedScheduleResponse, error)
	// GetSaved fetches one stored selection.
	GetSaved(ctx context.Context, id string) (*dto.SavedScheduleResponse, error)
	// ListSaved lists a term's stored selections.
	ListSaved(ctx context.Context, termID string) ([]dto.SavedScheduleResponse, error)
	// UpdateSaved updates a stored selection.
	UpdateSaved(ctx context.Context, id string, req *dto.UpdateSavedScheduleRequest) (*dto.SavedScheduleResponse, error)
	// DeleteSaved removes a stored selection.
	DeleteSaved(ctx context.Context, id string) error
}

type scheduleService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService builds a ScheduleService.
func NewScheduleService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{cfg: cfg, repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Preview: conflict report and weekly grid
// ════════════════════════════════════════════════════════════
//
// Flow:
//   1. Resolve the term and load the requested NRCs; the ones the
//      catalog does not know go into unknown_nrcs.
//   2. Expand each meeting row into per-day placed sections, collecting
//      diagnostics for rows that fail normalization.
//   3. Detect conflicts and project the hourly grid.

func (s *scheduleService) Preview(ctx context.Context, req *dto.PreviewScheduleRequest) (*dto.PreviewScheduleResponse, error) {
	term, err := s.resolveTerm(ctx, req.TermID)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.CourseSection.ListByNRCs(ctx, term.TermID, req.NRCs)
	if err != nil {
		s.logger.Error("section load failed", zap.String("term", term.Code), zap.Error(err))
		return nil, err
	}
	if len(stored) == 0 {
		return nil, ErrScheduleNoSections
	}
	unknown := missingNRCs(req.NRCs, stored)

	placed, diagnostics := expandSections(stored)

	opts := schedule.Options{
		IncludeSameNRC: req.IncludeSameNRC,
		MaxSections:    s.cfg.Schedule.MaxSections,
	}
	conflicts, err := schedule.DetectConflicts(placed, opts)
	if err != nil {
		if errors.Is(err, schedule.ErrTooManySections) {
			return nil, ErrScheduleTooLarge
		}
		return nil, err
	}

	buckets := schedule.HourlyBuckets(s.cfg.Schedule.FirstHour, s.cfg.Schedule.LastHour)
	grid, err := schedule.ProjectCalendar(placed, buckets, schedule.AllDays(), conflicts)
	if err != nil {
		return nil, err
	}

	resp := &dto.PreviewScheduleResponse{
		TermID:      term.TermID,
		Sections:    sectionViews(placed),
		Conflicts:   conflictViews(conflicts),
		Messages:    schedule.FormatConflicts(conflicts),
		Grid:        gridView(grid),
		Diagnostics: diagnostics,
		UnknownNRCs: unknown,
	}
	if resp.Messages == nil {
		resp.Messages = []string{}
	}
	return resp, nil
}

func (s *scheduleService) PreviewSaved(ctx context.Context, id string) (*dto.PreviewScheduleResponse, error) {
	saved, err := s.loadSaved(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Preview(ctx, &dto.PreviewScheduleRequest{
		TermID:         saved.TermID,
		NRCs:           saved.NRCs,
		IncludeSameNRC: saved.IncludeSameNRC,
	})
}

// ── Saved selections ──

func (s *scheduleService) CreateSaved(ctx context.Context, req *dto.CreateSavedScheduleRequest) (*dto.SavedScheduleResponse, error) {
	term, err := s.resolveTerm(ctx, req.TermID)
	if err != nil {
		return nil, err
	}
	saved := &model.SavedSchedule{
		TermID:         term.TermID,
		Name:           req.Name,
		NRCs:           model.StringArray(req.NRCs),
		IncludeSameNRC: req.IncludeSameNRC,
	}
	if err := s.repo.SavedSchedule.Create(ctx, saved); err != nil {
		s.logger.Error("saved schedule create failed", zap.Error(err))
		return nil, err
	}
	return savedToResponse(saved), nil
}

func (s *scheduleService) GetSaved(ctx context.Context, id string) (*dto.SavedScheduleResponse, error) {
	saved, err := s.loadSaved(ctx, id)
	if err != nil {
		return nil, err
	}
	return savedToResponse(saved), nil
}

func (s *scheduleService) ListSaved(ctx context.Context, termID string) ([]dto.SavedScheduleResponse, error) {
	term, err := s.resolveTerm(ctx, termID)
	if err != nil {
		return nil, err
	}
	schedules, err := s.repo.SavedSchedule.ListByTerm(ctx, term.TermID)
	if err != nil {
		s.logger.Error("saved schedule list failed", zap.Error(err))
		return nil, err
	}
	out := make([]dto.SavedScheduleResponse, 0, len(schedules))
	for i := range schedules {
		out = append(out, *savedToResponse(&schedules[i]))
	}
	return out, nil
}

func (s *scheduleService) UpdateSaved(ctx context.Context, id string, req *dto.UpdateSavedScheduleRequest) (*dto.SavedScheduleResponse, error) {
	saved, err := s.loadSaved(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		saved.Name = *req.Name
	}
	if req.NRCs != nil {
		saved.NRCs = model.StringArray(req.NRCs)
	}
	if req.IncludeSameNRC != nil {
		saved.IncludeSameNRC = *req.IncludeSameNRC
	}
	if err := s.repo.SavedSchedule.Update(ctx, saved); err != nil {
		s.logger.Error("saved schedule update failed", zap.Error(err))
		return nil, err
	}
	return savedToResponse(saved), nil
}

func (s *scheduleService) DeleteSaved(ctx context.Context, id string) error {
	if _, err := s.loadSaved(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SavedSchedule.Delete(ctx, id); err != nil {
		s.logger.Error("saved schedule delete failed", zap.Error(err))
		return err
	}
	return nil
}

// ── Helpers ──

func (s *scheduleService) resolveTerm(ctx context.Context, termID string) (*model.Term, error) {
	term, err := s.repo.Term.GetByID(ctx, termID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleTermNotFound
		}
		s.logger.Error("term lookup failed", zap.Error(err))
		return nil, err
	}
	return term, nil
}

func (s *scheduleService) loadSaved(ctx context.Context, id string) (*model.SavedSchedule, error) {
	saved, err := s.repo.SavedSchedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedScheduleNotFound
		}
		s.logger.Error("saved schedule lookup failed", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

// expandSections turns stored catalog rows into per-day placed
// sections. Each meeting contributes one section per day in its
// pattern; meetings whose time or day text fails normalization are
// reported as diagnostics and left out.
func expandSections(stored []model.CourseSection) ([]schedule.Section, []dto.DiagnosticView) {
	var placed []schedule.Section
	var diagnostics []dto.DiagnosticView

	for i := range stored {
		sec := &stored[i]
		for _, m := range sec.Meetings {
			timeRange, err := schedule.ParseTimeRange(m.TimeText)
			if err != nil {
				diagnostics = append(diagnostics, diagnosticFrom(sec.NRC, err))
				continue
			}
			days, err := schedule.ExpandDays(m.DaysText)
			if err != nil {
				diagnostics = append(diagnostics, diagnosticFrom(sec.NRC, err))
				continue
			}
			for _, day := range days {
				placed = append(placed, schedule.Section{
					NRC:        sec.NRC,
					Subject:    sec.Subject,
					Building:   m.Building,
					Room:       m.Room,
					Instructor: m.Instructor,
					Day:        day,
					Range:      timeRange,
				})
			}
		}
	}
	return placed, diagnostics
}

func diagnosticFrom(nrc string, err error) dto.DiagnosticView {
	var perr *schedule.ParseError
	if errors.As(err, &perr) {
		return dto.DiagnosticView{NRC: nrc, Input: perr.Input, Reason: perr.Reason}
	}
	return dto.DiagnosticView{NRC: nrc, Reason: err.Error()}
}

func missingNRCs(requested []string, found []model.CourseSection) []string {
	have := make(map[string]bool, len(found))
	for i := range found {
		have[found[i].NRC] = true
	}
	var missing []string
	seen := make(map[string]bool, len(requested))
	for _, nrc := range requested {
		if !have[nrc] && !seen[nrc] {
			seen[nrc] = true
			missing = append(missing, nrc)
		}
	}
	sort.Strings(missing)
	return missing
}

func sectionViews(placed []schedule.Section) []dto.SectionView {
	out := make([]dto.SectionView, 0, len(placed))
	for _, sec := range placed {
		out = append(out, sectionView(sec))
	}
	return out
}

func sectionView(sec schedule.Section) dto.SectionView {
	return dto.SectionView{
		NRC:        sec.NRC,
		Subject:    sec.Subject,
		Day:        sec.Day.String(),
		Time:       sec.Range.String(),
		Building:   sec.Building,
		Room:       sec.Room,
		Instructor: sec.Instructor,
	}
}

func conflictViews(set *schedule.ConflictSet) []dto.ConflictView {
	out := make([]dto.ConflictView, 0, set.Len())
	for _, day := range set.Days() {
		for _, p := range set.Pairs(day) {
			out = append(out, dto.ConflictView{
				Day:     day.String(),
				First:   sectionView(p.A),
				Second:  sectionView(p.B),
				Message: schedule.FormatConflict(day, p),
			})
		}
	}
	return out
}

func gridView(grid *schedule.Grid) dto.GridView {
	days := make([]string, 0, len(grid.Days))
	for _, d := range grid.Days {
		days = append(days, d.String())
	}
	rows := make([]dto.GridRow, 0, len(grid.Buckets))
	for i, bucket := range grid.Buckets {
		row := dto.GridRow{Hour: bucket.String(), Cells: make([]dto.GridCell, 0, len(grid.Days))}
		for _, d := range grid.Days {
			cell := dto.GridCell{Entries: []dto.GridEntry{}}
			for _, e := range grid.Cell(i, d) {
				cell.Entries = append(cell.Entries, dto.GridEntry{
					NRC:         e.Section.NRC,
					Subject:     e.Section.Subject,
					Room:        e.Section.Room,
					Conflicting: e.Conflicting,
				})
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return dto.GridView{Days: days, Rows: rows}
}

func savedToResponse(s *model.SavedSchedule) *dto.SavedScheduleResponse {
	return &dto.SavedScheduleResponse{
		ID:             s.ScheduleID,
		TermID:         s.TermID,
		Name:           s.Name,
		NRCs:           append([]string(nil), s.NRCs...),
		IncludeSameNRC: s.IncludeSameNRC,
		CreatedAt:      s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
