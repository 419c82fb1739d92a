package appointment

import (
	"context"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/events"
	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/models"
)

type TransitionStatus struct {
	repo   domain.Repository
	events *events.Dispatcher
	loc    *time.Location
	now    func() time.Time
}

func NewTransitionStatus(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
	loc *time.Location,
) *TransitionStatus {
	return &TransitionStatus{
		repo:   repo,
		events: dispatcher,
		loc:    loc,
		now:    time.Now,
	}
}

// Execute applies a professional-driven transition (confirm, start,
// complete, no-show). Cancellation goes through CancelAppointment, which
// owns the deadline check.
func (uc *TransitionStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	publicID string,
	target domain.Status,
) (*models.Appointment, error) {

	if actor.Role != domain.RoleProfessional {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if target == domain.StatusCancelled {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, publicID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	if ap.ProfessionalID != actor.ID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	from := ap.Status

	now := uc.now().In(uc.loc)
	if err := domain.Transition(ap, target, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:         "appointment_" + string(target),
		Entity:         "appointment",
		EntityID:       ap.PublicID,
		ActorID:        &actor.ID,
		ActorRole:      actor.Role,
		ProfessionalID: ap.ProfessionalID,
		Metadata: map[string]any{
			"date": ap.Date,
			"time": ap.Time,
		},
	})

	return ap, nil
}
