package appointment

import (
	"time"

	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves an appointment to cancelled. Cancellation is a soft
// transition: the row is kept so that reviews and revenue history
// remain stable.
func Cancel(ap *models.Appointment, reason string, now time.Time, deadline time.Duration) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	if now.After(ap.StartsAt.Add(-deadline)) {
		return httperr.ErrBusiness("too_late_to_cancel")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelReason = reason
	ap.CancelledAt = &now
	return nil
}

// Transition applies a professional-driven status change.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_transition")
	}
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	if to == StatusCompleted {
		ap.CompletedAt = &now
	}
	return nil
}

// AutoComplete is the sweeper's transition to completed.
func AutoComplete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
