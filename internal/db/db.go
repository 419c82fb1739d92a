package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/groomly/salon-scheduler/internal/config"
	"github.com/groomly/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Professional{},
		&models.Client{},
		&models.Service{},
		&models.ProfessionalPrice{},
		&models.WorkingHours{},
		&models.BlockedTime{},
		&models.Appointment{},
		&models.DomainEvent{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Last line of defense against a booking race: two non-cancelled
	// appointments can never share the exact slot. The in-transaction
	// overlap recheck handles partial overlaps.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (professional_id, date, time)
        WHERE status <> 'cancelled'
    `)

	return db
}
