package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// PublicID is the identifier exposed to clients.
	PublicID string `gorm:"size:36;uniqueIndex;not null" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Snapshot taken at booking time so history survives catalog edits.
	ServiceName string  `gorm:"size:100" json:"service_name"`
	TotalPrice  float64 `json:"total_price"`
	DurationMin int     `json:"duration_min"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	// Derived timestamps kept alongside date/time for SQL overlap queries.
	StartsAt time.Time `gorm:"index" json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes        string `gorm:"size:255" json:"notes"`
	CancelReason string `gorm:"size:255" json:"cancel_reason"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
