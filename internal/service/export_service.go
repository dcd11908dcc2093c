package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/repository"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/schedule"
)

// ── Export module business errors ──

var (
	ErrExportNothingToExport = errors.New("schedule has no placeable sections")
)

// ExportService renders saved schedules for download.
//
// Design notes:
//   - ICS export emits one weekly-recurring VEVENT per placed section,
//     anchored to the first matching weekday on or after the term
//     start and ending with the term.
//   - JSON export is the recomputed preview payload, so a script gets
//     the same conflicts and grid the API serves.
//   - Both return a bytes.Buffer plus a suggested filename; the
//     handler layer sets the HTTP headers and writes the body.
type ExportService interface {
	// ExportICS renders a saved schedule as an iCalendar file.
	ExportICS(ctx context.Context, savedID string) (*bytes.Buffer, string, error)
	// ExportJSON renders a saved schedule's preview as pretty JSON.
	ExportJSON(ctx context.Context, savedID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo      *repository.Repository
	schedules ScheduleService
	logger    *zap.Logger
}

// NewExportService builds an ExportService.
func NewExportService(repo *repository.Repository, schedules ScheduleService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, schedules: schedules, logger: logger}
}

func (s *exportService) ExportICS(ctx context.Context, savedID string) (*bytes.Buffer, string, error) {
	saved, term, err := s.loadSavedWithTerm(ctx, savedID)
	if err != nil {
		return nil, "", err
	}

	stored, err := s.repo.CourseSection.ListByNRCs(ctx, term.TermID, saved.NRCs)
	if err != nil {
		s.logger.Error("section load failed", zap.Error(err))
		return nil, "", err
	}
	placed, _ := expandSections(stored)
	if len(placed) == 0 {
		return nil, "", ErrExportNothingToExport
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Crear Horarios UDG//Horarios//ES")

	// One VEVENT per placed section, recurring weekly until the term
	// ends.
	until := term.EndDate.AddDate(0, 0, 1) // inclusive end date
	now := time.Now().UTC()
	for i, sec := range placed {
		first := firstOnOrAfter(term.StartDate, sec.Day.Weekday())
		start := first.Add(time.Duration(sec.Range.Start) * time.Minute)
		end := first.Add(time.Duration(sec.Range.End) * time.Minute)

		evt := cal.AddEvent(fmt.Sprintf("%s-%d-%s@crear-horarios-udg", sec.NRC, i, term.Code))
		evt.SetDtStampTime(now)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(sec.Label())
		if loc := meetingLocation(sec); loc != "" {
			evt.SetLocation(loc)
		}
		if sec.Instructor != "" {
			evt.SetDescription("Profesor: " + sec.Instructor)
		}
		evt.AddRrule(fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s", until.UTC().Format("20060102T000000Z")))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, exportFilename(saved.Name, term.Code, "ics"), nil
}

func (s *exportService) ExportJSON(ctx context.Context, savedID string) (*bytes.Buffer, string, error) {
	saved, term, err := s.loadSavedWithTerm(ctx, savedID)
	if err != nil {
		return nil, "", err
	}

	preview, err := s.schedules.PreviewSaved(ctx, savedID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(preview); err != nil {
		s.logger.Error("preview encode failed", zap.Error(err))
		return nil, "", err
	}
	return &buf, exportFilename(saved.Name, term.Code, "json"), nil
}

func (s *exportService) loadSavedWithTerm(ctx context.Context, savedID string) (*model.SavedSchedule, *model.Term, error) {
	saved, err := s.repo.SavedSchedule.GetByID(ctx, savedID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSavedScheduleNotFound
		}
		s.logger.Error("saved schedule lookup failed", zap.Error(err))
		return nil, nil, err
	}
	term, err := s.repo.Term.GetByID(ctx, saved.TermID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrScheduleTermNotFound
		}
		s.logger.Error("term lookup failed", zap.Error(err))
		return nil, nil, err
	}
	return saved, term, nil
}

// firstOnOrAfter finds the first date with the given weekday on or
// after start, at midnight in start's location.
func firstOnOrAfter(start time.Time, wd time.Weekday) time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	offset := (int(wd) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}

func meetingLocation(sec schedule.Section) string {
	switch {
	case sec.Building != "" && sec.Room != "":
		return sec.Building + " " + sec.Room
	case sec.Building != "":
		return sec.Building
	default:
		return sec.Room
	}
}

func exportFilename(name, termCode, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		default:
			return -1
		}
	}, name)
	if slug == "" {
		slug = "horario"
	}
	return fmt.Sprintf("%s_%s.%s", slug, termCode, ext)
}
