package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessionalByID(
	ctx context.Context,
	id uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).First(&pro, id).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetPriceOverride(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) (*models.ProfessionalPrice, error) {

	var override models.ProfessionalPrice
	err := r.db.WithContext(ctx).
		Where(
			"professional_id = ? AND service_id = ? AND active = ?",
			professionalID, serviceID, true,
		).
		First(&override).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	professionalID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *AppointmentGormRepository) ListBlockedTimes(
	ctx context.Context,
	professionalID uint,
	date string,
) ([]models.BlockedTime, error) {

	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment re-validates the overlap condition inside the insert
// transaction. Check-then-insert outside a transaction would leave a race
// window between two bookings for the same slot; here the loser either
// sees the committed row on recheck or trips the partial unique index.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Select("public_id", "starts_at", "ends_at").
			Where(
				"professional_id = ? AND status <> ? AND starts_at < ? AND ends_at > ?",
				ap.ProfessionalID,
				string(domain.StatusCancelled),
				ap.EndsAt,
				ap.StartsAt,
			).
			Limit(1).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			other := conflicts[0]
			return httperr.ErrBusinessDetail(
				"slot_taken",
				other.StartsAt.Format("15:04")+"-"+other.EndsAt.Format("15:04"),
			)
		}

		if err := tx.Create(ap).Error; err != nil {
			if isDuplicateKey(err) {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		return nil
	})
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	// Overlap, not containment: a booking that starts before the window
	// but spills into it still occupies slots.
	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("public_id", "starts_at", "ends_at", "status").
		Where(
			"professional_id = ? AND status <> ? AND starts_at < ? AND ends_at > ?",
			professionalID, string(domain.StatusCancelled), end, start,
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByPublicID(
	ctx context.Context,
	publicID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	fromStatus string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, fromStatus).
		Updates(map[string]any{
			"status":        ap.Status,
			"cancel_reason": ap.CancelReason,
			"cancelled_at":  ap.CancelledAt,
			"completed_at":  ap.CompletedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Professional").
		Where("client_id = ?", clientID).
		Order("starts_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"professional_id = ? AND starts_at >= ? AND starts_at < ?",
			professionalID,
			start,
			end,
		).
		Order("starts_at ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Sweeper
// --------------------------------------------------

func (r *AppointmentGormRepository) ListSweepCandidates(
	ctx context.Context,
	now time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status IN ? AND starts_at <= ?",
			domain.PreCompletionStatuses(),
			now,
		).
		Order("starts_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
