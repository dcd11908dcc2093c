package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Term          TermRepository
	CourseSection CourseSectionRepository
	SavedSchedule SavedScheduleRepository
}

// NewRepository builds the Repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Term:          NewTermRepo(db),
		CourseSection: NewCourseSectionRepo(db),
		SavedSchedule: NewSavedScheduleRepo(db),
	}
}
