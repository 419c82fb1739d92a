package models

import "time"

// BlockedTime is one-off unavailability (time off, personal errand) layered
// on top of the recurring working hours for a single date.
type BlockedTime struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Date      string `gorm:"size:10;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Reason    string `gorm:"size:200" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
