package models

import "time"

type WorkingHours struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_professional_weekday" json:"professional_id"`

	Weekday int `gorm:"uniqueIndex:idx_professional_weekday" json:"weekday"`

	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
