package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/dto"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/service"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock TermService ──

type mockTermService struct {
	createResult  *dto.TermResponse
	createErr     error
	getResult     *dto.TermResponse
	getErr        error
	currentResult *dto.TermResponse
	currentErr    error
	listResult    []dto.TermResponse
	listErr       error
	updateResult  *dto.TermResponse
	updateErr     error
}

func (m *mockTermService) Create(_ context.Context, _ *dto.CreateTermRequest) (*dto.TermResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockTermService) Get(_ context.Context, _ string) (*dto.TermResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockTermService) GetCurrent(_ context.Context) (*dto.TermResponse, error) {
	return m.currentResult, m.currentErr
}
func (m *mockTermService) List(_ context.Context) ([]dto.TermResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockTermService) Update(_ context.Context, _ string, _ *dto.UpdateTermRequest) (*dto.TermResponse, error) {
	return m.updateResult, m.updateErr
}

// ── Mock ScheduleService ──

type mockScheduleService struct {
	previewResult      *dto.PreviewScheduleResponse
	previewErr         error
	previewSavedResult *dto.PreviewScheduleResponse
	previewSavedErr    error
	createResult       *dto.SavedScheduleResponse
	createErr          error
	getResult          *dto.SavedScheduleResponse
	getErr             error
	listResult         []dto.SavedScheduleResponse
	listErr            error
	updateResult       *dto.SavedScheduleResponse
	updateErr          error
	deleteErr          error
}

func (m *mockScheduleService) Preview(_ context.Context, _ *dto.PreviewScheduleRequest) (*dto.PreviewScheduleResponse, error) {
	return m.previewResult, m.previewErr
}
func (m *mockScheduleService) PreviewSaved(_ context.Context, _ string) (*dto.PreviewScheduleResponse, error) {
	return m.previewSavedResult, m.previewSavedErr
}
func (m *mockScheduleService) CreateSaved(_ context.Context, _ *dto.CreateSavedScheduleRequest) (*dto.SavedScheduleResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockScheduleService) GetSaved(_ context.Context, _ string) (*dto.SavedScheduleResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockScheduleService) ListSaved(_ context.Context, _ string) ([]dto.SavedScheduleResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockScheduleService) UpdateSaved(_ context.Context, _ string, _ *dto.UpdateSavedScheduleRequest) (*dto.SavedScheduleResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockScheduleService) DeleteSaved(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	icsBuf       *bytes.Buffer
	icsFilename  string
	icsErr       error
	jsonBuf      *bytes.Buffer
	jsonFilename string
	jsonErr      error
}

func (m *mockExportService) ExportICS(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.icsBuf, m.icsFilename, m.icsErr
}
func (m *mockExportService) ExportJSON(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.jsonBuf, m.jsonFilename, m.jsonErr
}

// ═══════════════════════════════════════════════════════════
// Helpers
// ═══════════════════════════════════════════════════════════

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response: %v\nbody: %s", err, w.Body.String())
	}
	return env
}

// ═══════════════════════════════════════════════════════════
// ScheduleHandler
// ═══════════════════════════════════════════════════════════

func scheduleRouter(svc service.ScheduleService) *gin.Engine {
	h := NewScheduleHandler(svc)
	r := gin.New()
	r.POST("/schedules/preview", h.Preview)
	r.POST("/schedules", h.CreateSaved)
	r.GET("/schedules/:id", h.GetSaved)
	r.GET("/schedules", h.ListSaved)
	r.DELETE("/schedules/:id", h.DeleteSaved)
	return r
}

func TestScheduleHandler_Preview_OK(t *testing.T) {
	svc := &mockScheduleService{
		previewResult: &dto.PreviewScheduleResponse{
			TermID:   "term-202620",
			Messages: []string{},
		},
	}
	r := scheduleRouter(svc)

	w := performRequest(r, http.MethodPost, "/schedules/preview", dto.PreviewScheduleRequest{
		TermID: "123e4567-e89b-12d3-a456-426614174000",
		NRCs:   []string{"10001"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Code != 0 {
		t.Errorf("envelope code = %d", env.Code)
	}
}

func TestScheduleHandler_Preview_BindFailure(t *testing.T) {
	r := scheduleRouter(&mockScheduleService{})

	// Missing the required nrcs field.
	w := performRequest(r, http.MethodPost, "/schedules/preview", map[string]interface{}{
		"term_id": "123e4567-e89b-12d3-a456-426614174000",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestScheduleHandler_Preview_TermNotFound(t *testing.T) {
	r := scheduleRouter(&mockScheduleService{previewErr: service.ErrScheduleTermNotFound})

	w := performRequest(r, http.MethodPost, "/schedules/preview", dto.PreviewScheduleRequest{
		TermID: "123e4567-e89b-12d3-a456-426614174000",
		NRCs:   []string{"10001"},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != 13001 {
		t.Errorf("envelope code = %d", env.Code)
	}
}

func TestScheduleHandler_Preview_TooLarge(t *testing.T) {
	r := scheduleRouter(&mockScheduleService{previewErr: service.ErrScheduleTooLarge})

	w := performRequest(r, http.MethodPost, "/schedules/preview", dto.PreviewScheduleRequest{
		TermID: "123e4567-e89b-12d3-a456-426614174000",
		NRCs:   []string{"10001"},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestScheduleHandler_CreateSaved_OK(t *testing.T) {
	svc := &mockScheduleService{
		createResult: &dto.SavedScheduleResponse{ID: "saved-1", Name: "Plan A"},
	}
	r := scheduleRouter(svc)

	w := performRequest(r, http.MethodPost, "/schedules", dto.CreateSavedScheduleRequest{
		TermID: "123e4567-e89b-12d3-a456-426614174000",
		Name:   "Plan A",
		NRCs:   []string{"10001"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestScheduleHandler_ListSaved_RequiresTermID(t *testing.T) {
	r := scheduleRouter(&mockScheduleService{})

	w := performRequest(r, http.MethodGet, "/schedules", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestScheduleHandler_GetSaved_NotFound(t *testing.T) {
	r := scheduleRouter(&mockScheduleService{getErr: service.ErrSavedScheduleNotFound})

	w := performRequest(r, http.MethodGet, "/schedules/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// TermHandler
// ═══════════════════════════════════════════════════════════

func termRouter(svc service.TermService) *gin.Engine {
	h := NewTermHandler(svc)
	r := gin.New()
	r.POST("/terms", h.Create)
	r.GET("/terms", h.List)
	r.GET("/terms/current", h.GetCurrent)
	r.GET("/terms/:id", h.Get)
	return r
}

func TestTermHandler_Create_OK(t *testing.T) {
	svc := &mockTermService{
		createResult: &dto.TermResponse{ID: "term-1", Code: "202620"},
	}
	r := termRouter(svc)

	w := performRequest(r, http.MethodPost, "/terms", dto.CreateTermRequest{
		Code:      "202620",
		Name:      "Calendario 2026 B",
		StartDate: "2026-08-17",
		EndDate:   "2026-12-11",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestTermHandler_Create_BadCode(t *testing.T) {
	r := termRouter(&mockTermService{})

	// A five-digit code fails the len=6 binding.
	w := performRequest(r, http.MethodPost, "/terms", dto.CreateTermRequest{
		Code:      "20262",
		Name:      "Calendario 2026 B",
		StartDate: "2026-08-17",
		EndDate:   "2026-12-11",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestTermHandler_GetCurrent_None(t *testing.T) {
	r := termRouter(&mockTermService{currentErr: service.ErrNoCurrentTerm})

	w := performRequest(r, http.MethodGet, "/terms/current", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler
// ═══════════════════════════════════════════════════════════

func exportRouter(svc service.ExportService) *gin.Engine {
	h := NewExportHandler(svc)
	r := gin.New()
	r.GET("/schedules/:id/export/ics", h.ExportICS)
	r.GET("/schedules/:id/export/json", h.ExportJSON)
	return r
}

func TestExportHandler_ICS_OK(t *testing.T) {
	svc := &mockExportService{
		icsBuf:      bytes.NewBufferString("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		icsFilename: "Plan_A_202620.ics",
	}
	r := exportRouter(svc)

	w := performRequest(r, http.MethodGet, "/schedules/saved-1/export/ics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar" {
		t.Errorf("content type = %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Plan_A_202620.ics") {
		t.Errorf("content disposition = %s", cd)
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestExportHandler_ICS_NotFound(t *testing.T) {
	r := exportRouter(&mockExportService{icsErr: service.ErrSavedScheduleNotFound})

	w := performRequest(r, http.MethodGet, "/schedules/nope/export/ics", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}
