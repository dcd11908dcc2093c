package model

// CourseSection is one offering of a course in a term, keyed by its
// NRC registration number. Maps to course_sections.
type CourseSection struct {
	SectionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"      json:"section_id"`
	TermID    string `gorm:"type:uuid;not null;index;uniqueIndex:uq_term_nrc"    json:"term_id"`
	NRC       string `gorm:"type:varchar(10);not null;uniqueIndex:uq_term_nrc"   json:"nrc"`
	CourseKey string `gorm:"type:varchar(10);not null"                           json:"course_key"` // SIIAU "Clave"
	Subject   string `gorm:"type:varchar(150);not null"                          json:"subject"`    // SIIAU "Materia"
	Section   string `gorm:"type:varchar(10);not null"                           json:"section"`    // SIIAU "Sec"
	Credits   int    `gorm:"type:smallint;not null;default:0"                    json:"credits"`
	Capacity  int    `gorm:"type:smallint;not null;default:0"                    json:"capacity"`  // SIIAU "CUP"
	Available int    `gorm:"type:smallint;not null;default:0"                    json:"available"` // SIIAU "DIS"
	BaseModel

	// Associations
	Term     *Term     `gorm:"foreignKey:TermID;references:TermID"                           json:"term,omitempty"`
	Meetings []Meeting `gorm:"foreignKey:SectionID;references:SectionID;constraint:OnDelete:CASCADE" json:"meetings,omitempty"`
}

// TableName sets the table name.
func (CourseSection) TableName() string { return "course_sections" }

// Meeting is one session row of an offering: a time slot, a day
// pattern, and a room. Maps to meetings. Time and day text are kept
// as published; normalization happens at computation time so a bad
// row degrades to a diagnostic instead of blocking the import.
type Meeting struct {
	MeetingID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"meeting_id"`
	SectionID  string `gorm:"type:uuid;not null;index"                       json:"section_id"`
	Session    int    `gorm:"type:smallint;not null;default:1"               json:"session"`   // SIIAU "Ses"
	TimeText   string `gorm:"type:varchar(20);not null"                      json:"time_text"` // e.g. "0700-0859"
	DaysText   string `gorm:"type:varchar(20);not null"                      json:"days_text"` // e.g. "L. I"
	Building   string `gorm:"type:varchar(10);not null;default:''"           json:"building"`
	Room       string `gorm:"type:varchar(10);not null;default:''"           json:"room"`
	Period     string `gorm:"type:varchar(30);not null;default:''"           json:"period"`
	Instructor string `gorm:"type:varchar(150);not null;default:''"          json:"instructor"`
	BaseModel
}

// TableName sets the table name.
func (Meeting) TableName() string { return "meetings" }
