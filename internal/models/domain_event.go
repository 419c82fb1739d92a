package models

import "time"

// DomainEvent is the transition log consumed by the notification collaborator.
type DomainEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:36" json:"entity_id"`

	ActorID   *uint  `json:"actor_id"`
	ActorRole string `gorm:"size:20" json:"actor_role"`

	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
