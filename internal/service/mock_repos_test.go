package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/repository"
)

// ── Mock TermRepository ──

type mockTermRepo struct {
	terms map[string]*model.Term
}

func newMockTermRepo() *mockTermRepo {
	return &mockTermRepo{terms: make(map[string]*model.Term)}
}

func (m *mockTermRepo) Create(_ context.Context, term *model.Term) error {
	if term.TermID == "" {
		term.TermID = "term-" + term.Code
	}
	m.terms[term.TermID] = term
	return nil
}

func (m *mockTermRepo) GetByID(_ context.Context, id string) (*model.Term, error) {
	if t, ok := m.terms[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTermRepo) GetByCode(_ context.Context, code string) (*model.Term, error) {
	for _, t := range m.terms {
		if t.Code == code {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTermRepo) GetCurrent(_ context.Context) (*model.Term, error) {
	for _, t := range m.terms {
		if t.IsCurrent {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTermRepo) List(_ context.Context) ([]model.Term, error) {
	var result []model.Term
	for _, t := range m.terms {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTermRepo) Update(_ context.Context, term *model.Term) error {
	m.terms[term.TermID] = term
	return nil
}

func (m *mockTermRepo) ClearCurrent(_ context.Context) error {
	for _, t := range m.terms {
		t.IsCurrent = false
	}
	return nil
}

// ── Mock CourseSectionRepository ──

type mockCourseSectionRepo struct {
	sections map[string][]model.CourseSection // term_id → sections
}

func newMockCourseSectionRepo() *mockCourseSectionRepo {
	return &mockCourseSectionRepo{sections: make(map[string][]model.CourseSection)}
}

func (m *mockCourseSectionRepo) ListByTerm(_ context.Context, termID string, filter repository.SectionFilter) ([]model.CourseSection, int64, error) {
	var result []model.CourseSection
	for _, sec := range m.sections[termID] {
		if filter.CourseKey != "" && sec.CourseKey != filter.CourseKey {
			continue
		}
		if filter.Subject != "" && !strings.Contains(strings.ToLower(sec.Subject), strings.ToLower(filter.Subject)) {
			continue
		}
		if filter.OnlyOpen && sec.Available <= 0 {
			continue
		}
		result = append(result, sec)
	}
	total := int64(len(result))
	if filter.Limit > 0 {
		lo := filter.Offset
		if lo > len(result) {
			lo = len(result)
		}
		hi := lo + filter.Limit
		if hi > len(result) {
			hi = len(result)
		}
		result = result[lo:hi]
	}
	return result, total, nil
}

func (m *mockCourseSectionRepo) ListByNRCs(_ context.Context, termID string, nrcs []string) ([]model.CourseSection, error) {
	want := make(map[string]bool, len(nrcs))
	for _, nrc := range nrcs {
		want[nrc] = true
	}
	var result []model.CourseSection
	for _, sec := range m.sections[termID] {
		if want[sec.NRC] {
			result = append(result, sec)
		}
	}
	return result, nil
}

func (m *mockCourseSectionRepo) GetByNRC(_ context.Context, termID, nrc string) (*model.CourseSection, error) {
	for i := range m.sections[termID] {
		if m.sections[termID][i].NRC == nrc {
			return &m.sections[termID][i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseSectionRepo) ReplaceByTerm(_ context.Context, termID string, sections []model.CourseSection) error {
	m.sections[termID] = sections
	return nil
}

func (m *mockCourseSectionRepo) CountByTerm(_ context.Context, termID string) (int64, error) {
	return int64(len(m.sections[termID])), nil
}

// ── Mock SavedScheduleRepository ──

type mockSavedScheduleRepo struct {
	schedules map[string]*model.SavedSchedule
	nextID    int
}

func newMockSavedScheduleRepo() *mockSavedScheduleRepo {
	return &mockSavedScheduleRepo{schedules: make(map[string]*model.SavedSchedule)}
}

func (m *mockSavedScheduleRepo) Create(_ context.Context, schedule *model.SavedSchedule) error {
	if schedule.ScheduleID == "" {
		m.nextID++
		schedule.ScheduleID = fmt.Sprintf("saved-%d", m.nextID)
	}
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockSavedScheduleRepo) GetByID(_ context.Context, id string) (*model.SavedSchedule, error) {
	if s, ok := m.schedules[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSavedScheduleRepo) ListByTerm(_ context.Context, termID string) ([]model.SavedSchedule, error) {
	var result []model.SavedSchedule
	for _, s := range m.schedules {
		if s.TermID == termID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSavedScheduleRepo) Update(_ context.Context, schedule *model.SavedSchedule) error {
	m.schedules[schedule.ScheduleID] = schedule
	return nil
}

func (m *mockSavedScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}
