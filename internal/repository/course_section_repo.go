package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Miguel962jaliscoedu/Crear-horarios-udg/internal/model"
)

// SectionFilter narrows catalog listings. Zero values mean "no filter".
type SectionFilter struct {
	CourseKey string // exact "Clave" match
	Subject   string // case-insensitive substring of the course name
	OnlyOpen  bool   // available > 0
	Limit     int
	Offset    int
}

// CourseSectionRepository is the data-access interface for the course
// catalog.
type CourseSectionRepository interface {
	ListByTerm(ctx context.Context, termID string, filter SectionFilter) ([]model.CourseSection, int64, error)
	ListByNRCs(ctx context.Context, termID string, nrcs []string) ([]model.CourseSection, error)
	GetByNRC(ctx context.Context, termID, nrc string) (*model.CourseSection, error)
	// ReplaceByTerm swaps the whole catalog of one term inside a
	// transaction: delete the old sections (meetings cascade), then
	// batch-insert the new ones.
	ReplaceByTerm(ctx context.Context, termID string, sections []model.CourseSection) error
	CountByTerm(ctx context.Context, termID string) (int64, error)
}

type courseSectionRepo struct {
	db *gorm.DB
}

// NewCourseSectionRepo builds a CourseSectionRepository.
func NewCourseSectionRepo(db *gorm.DB) CourseSectionRepository {
	return &courseSectionRepo{db: db}
}

func (r *courseSectionRepo) ListByTerm(ctx context.Context, termID string, filter SectionFilter) ([]model.CourseSection, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CourseSection{}).
		Where("term_id = ?", termID)
	if filter.CourseKey != "" {
		query = query.Where("course_key = ?", filter.CourseKey)
	}
	if filter.Subject != "" {
		query = query.Where("subject ILIKE ?", "%"+strings.TrimSpace(filter.Subject)+"%")
	}
	if filter.OnlyOpen {
		query = query.Where("available > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	var sections []model.CourseSection
	err := query.
		Preload("Meetings", func(db *gorm.DB) *gorm.DB { return db.Order("session ASC") }).
		Order("course_key ASC, nrc ASC").
		Find(&sections).Error
	return sections, total, err
}

func (r *courseSectionRepo) ListByNRCs(ctx context.Context, termID string, nrcs []string) ([]model.CourseSection, error) {
	if len(nrcs) == 0 {
		return nil, nil
	}
	var sections []model.CourseSection
	err := r.db.WithContext(ctx).
		Where("term_id = ? AND nrc IN ?", termID, nrcs).
		Preload("Meetings", func(db *gorm.DB) *gorm.DB { return db.Order("session ASC") }).
		Order("nrc ASC").
		Find(&sections).Error
	return sections, err
}

func (r *courseSectionRepo) GetByNRC(ctx context.Context, termID, nrc string) (*model.CourseSection, error) {
	var sec model.CourseSection
	err := r.db.WithContext(ctx).
		Where("term_id = ? AND nrc = ?", termID, nrc).
		Preload("Meetings", func(db *gorm.DB) *gorm.DB { return db.Order("session ASC") }).
		First(&sec).Error
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

func (r *courseSectionRepo) ReplaceByTerm(ctx context.Context, termID string, sections []model.CourseSection) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Hard delete: a catalog refresh has no audit value in the
		// replaced rows. Meetings go first; the FK also cascades, this
		// keeps the transaction explicit.
		sub := tx.Model(&model.CourseSection{}).Select("section_id").Where("term_id = ?", termID)
		if err := tx.Unscoped().Where("section_id IN (?)", sub).Delete(&model.Meeting{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("term_id = ?", termID).Delete(&model.CourseSection{}).Error; err != nil {
			return err
		}
		if len(sections) > 0 {
			if err := tx.CreateInBatches(&sections, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *courseSectionRepo) CountByTerm(ctx context.Context, termID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.CourseSection{}).
		Where("term_id = ?", termID).
		Count(&total).Error
	return total, err
}
