package model

import "time"

// Term is one academic cycle ("ciclo"). Maps to terms.
type Term struct {
	TermID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"term_id"`
	Code      string    `gorm:"type:varchar(10);not null;uniqueIndex"          json:"code"` // SIIAU cycle code, e.g. 202620
	Name      string    `gorm:"type:varchar(100);not null"                     json:"name"` // e.g. "Calendario 2026 A"
	StartDate time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                             json:"end_date"`
	IsCurrent bool      `gorm:"not null;default:false"                         json:"is_current"`
	BaseModel
}

// TableName sets the table name.
func (Term) TableName() string { return "terms" }
