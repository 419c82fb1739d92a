package appointment

import (
	"context"
	"time"

	"github.com/groomly/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// GetPriceOverride returns (nil, nil) when the professional has no
	// active override for the service.
	GetPriceOverride(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (*models.ProfessionalPrice, error)

	// -------- Schedule --------

	// GetWorkingHours returns (nil, nil) when the professional has no
	// record for that weekday (closed).
	GetWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListBlockedTimes(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.BlockedTime, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persists a booking. The overlap condition is
	// re-validated inside the same transaction as the insert; a losing
	// concurrent writer surfaces as the slot_taken business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentByPublicID(
		ctx context.Context,
		publicID string,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus persists a transition guarded by the status
	// it was computed from. A concurrent transition that committed first
	// leaves zero matching rows and surfaces as invalid_transition, so
	// last-write-wins overwrites of a terminal state cannot happen.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		fromStatus string,
	) error

	// -------- Listings --------
	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Sweeper --------

	// ListSweepCandidates returns appointments still in a pre-completion
	// status whose start is not in the future.
	ListSweepCandidates(
		ctx context.Context,
		now time.Time,
	) ([]models.Appointment, error)
}
