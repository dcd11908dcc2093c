package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
)

func setupExportService() (ExportService, *mockTermRepo, *mockCourseSectionRepo, *mockSavedScheduleRepo) {
	repo, termRepo, sectionRepo, savedRepo := testRepo()
	schedules := NewScheduleService(testConfig(), repo, zap.NewNop())
	svc := NewExportService(repo, schedules, zap.NewNop())
	return svc, termRepo, sectionRepo, savedRepo
}

func seedSaved(savedRepo *mockSavedScheduleRepo, termID string, nrcs ...string) *model.SavedSchedule {
	saved := &model.SavedSchedule{
		ScheduleID: "saved-export",
		TermID:     termID,
		Name:       "Plan A",
		NRCs:       model.StringArray(nrcs),
	}
	savedRepo.schedules[saved.ScheduleID] = saved
	return saved
}

func TestExportService_ExportICS(t *testing.T) {
	svc, termRepo, sectionRepo, savedRepo := setupExportService()
	term := seedTerm(termRepo)
	sectionRepo.sections[term.TermID] = []model.CourseSection{
		catalogSection("10001", "Cálculo I", "0700-0859", "L I"),
	}
	saved := seedSaved(savedRepo, term.TermID, "10001")

	buf, filename, err := svc.ExportICS(context.Background(), saved.ScheduleID)
	if err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	if filename != "Plan_A_202620.ics" {
		t.Errorf("filename = %s", filename)
	}

	body := buf.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Fatalf("not a calendar:\n%s", body)
	}
	// One VEVENT per placed day: Monday and Wednesday.
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}
	if !strings.Contains(body, "SUMMARY:Cálculo I (NRC 10001)") {
		t.Errorf("missing summary in:\n%s", body)
	}
	if !strings.Contains(body, "RRULE:FREQ=WEEKLY;UNTIL=20261212T000000Z") {
		t.Errorf("missing weekly rule in:\n%s", body)
	}
	// Term starts Monday 2026-08-17; the Monday meeting anchors there.
	if !strings.Contains(body, "DTSTART:20260817T070000Z") {
		t.Errorf("missing Monday anchor in:\n%s", body)
	}
}

func TestExportService_ExportJSON(t *testing.T) {
	svc, termRepo, sectionRepo, savedRepo := setupExportService()
	term := seedTerm(termRepo)
	sectionRepo.sections[term.TermID] = []model.CourseSection{
		catalogSection("10001", "Cálculo I", "0700-0859", "L"),
	}
	saved := seedSaved(savedRepo, term.TermID, "10001")

	buf, filename, err := svc.ExportJSON(context.Background(), saved.ScheduleID)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if filename != "Plan_A_202620.json" {
		t.Errorf("filename = %s", filename)
	}

	var preview dto.PreviewScheduleResponse
	if err := json.Unmarshal(buf.Bytes(), &preview); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if len(preview.Sections) != 1 || preview.Sections[0].NRC != "10001" {
		t.Errorf("preview = %+v", preview)
	}
}

func TestExportService_NotFound(t *testing.T) {
	svc, _, _, _ := setupExportService()

	if _, _, err := svc.ExportICS(context.Background(), "nope"); !errors.Is(err, ErrSavedScheduleNotFound) {
		t.Errorf("ExportICS err = %v", err)
	}
}

func TestExportService_NothingToExport(t *testing.T) {
	svc, termRepo, sectionRepo, savedRepo := setupExportService()
	term := seedTerm(termRepo)
	// The only stored section has unusable time text.
	sectionRepo.sections[term.TermID] = []model.CourseSection{
		catalogSection("10001", "Cálculo I", "garbage", "L"),
	}
	saved := seedSaved(savedRepo, term.TermID, "10001")

	if _, _, err := svc.ExportICS(context.Background(), saved.ScheduleID); !errors.Is(err, ErrExportNothingToExport) {
		t.Errorf("err = %v, want ErrExportNothingToExport", err)
	}
}
