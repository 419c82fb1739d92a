package models

import "time"

// ProfessionalPrice overrides the catalog price and/or duration of a service
// for one professional. At most one active override per (professional, service).
type ProfessionalPrice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"uniqueIndex:idx_professional_service" json:"professional_id"`
	ServiceID      uint `gorm:"uniqueIndex:idx_professional_service" json:"service_id"`

	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      bool     `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
