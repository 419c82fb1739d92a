package events

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.DomainEvent{
		Action:         ev.Action,
		Entity:         ev.Entity,
		EntityID:       ev.EntityID,
		ActorID:        ev.ActorID,
		ActorRole:      ev.ActorRole,
		ProfessionalID: ev.ProfessionalID,
		Metadata:       metaJSON,
	}

	return l.db.Create(&row).Error
}
