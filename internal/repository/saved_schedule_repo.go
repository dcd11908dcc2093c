package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
)

// SavedScheduleRepository is the data-access interface for named NRC
// selections.
type SavedScheduleRepository interface {
	Create(ctx context.Context, schedule *model.SavedSchedule) error
	GetByID(ctx context.Context, id string) (*model.SavedSchedule, error)
	ListByTerm(ctx context.Context, termID string) ([]model.SavedSchedule, error)
	Update(ctx context.Context, schedule *model.SavedSchedule) error
	Delete(ctx context.Context, id string) error
}

type savedScheduleRepo struct {
	db *gorm.DB
}

// NewSavedScheduleRepo builds a SavedScheduleRepository.
func NewSavedScheduleRepo(db *gorm.DB) SavedScheduleRepository {
	return &savedScheduleRepo{db: db}
}

func (r *savedScheduleRepo) Create(ctx context.Context, schedule *model.SavedSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *savedScheduleRepo) GetByID(ctx context.Context, id string) (*model.SavedSchedule, error) {
	var schedule model.SavedSchedule
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *savedScheduleRepo) ListByTerm(ctx context.Context, termID string) ([]model.SavedSchedule, error) {
	var schedules []model.SavedSchedule
	err := r.db.WithContext(ctx).
		Where("term_id = ?", termID).
		Order("created_at DESC").
		Find(&schedules).Error
	return schedules, err
}

func (r *savedScheduleRepo) Update(ctx context.Context, schedule *model.SavedSchedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *savedScheduleRepo) Delete(ctx context.Context, id string) error {
	// Soft delete via gorm.DeletedAt.
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.SavedSchedule{}).Error
}
