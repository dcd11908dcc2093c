package model

// SavedSchedule is a named NRC selection a student keeps between
// visits. Maps to saved_schedules.
type SavedSchedule struct {
	ScheduleID     string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_id"`
	TermID         string      `gorm:"type:uuid;not null;index"                       json:"term_id"`
	Name           string      `gorm:"type:varchar(100);not null"                     json:"name"`
	NRCs           StringArray `gorm:"type:text[];not null"                           json:"nrcs"`
	IncludeSameNRC bool        `gorm:"not null;default:false"                         json:"include_same_nrc"`
	SoftDeleteModel

	// Associations
	Term *Term `gorm:"foreignKey:TermID;references:TermID" json:"term,omitempty"`
}

// TableName sets the table name.
func (SavedSchedule) TableName() string { return "saved_schedules" }
