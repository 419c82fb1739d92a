package appointment

import (
	"context"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/events"
	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/models"
)

type CancelAppointment struct {
	repo   domain.Repository
	events *events.Dispatcher
	policy domain.Policy
	loc    *time.Location
	now    func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
	policy domain.Policy,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		events: dispatcher,
		policy: policy,
		loc:    loc,
		now:    time.Now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	publicID string,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, publicID)
	if err != nil {
		return nil, httperr.ErrBusiness("not_found")
	}

	switch actor.Role {
	case domain.RoleClient:
		if ap.ClientID != actor.ID {
			return nil, httperr.ErrBusiness("not_owner")
		}
	case domain.RoleProfessional:
		if ap.ProfessionalID != actor.ID {
			return nil, httperr.ErrBusiness("not_owner")
		}
	default:
		return nil, httperr.ErrBusiness("forbidden")
	}

	from := ap.Status

	now := uc.now().In(uc.loc)
	if err := domain.Cancel(ap, reason, now, uc.policy.CancelDeadline); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:         "appointment_cancelled",
		Entity:         "appointment",
		EntityID:       ap.PublicID,
		ActorID:        &actor.ID,
		ActorRole:      actor.Role,
		ProfessionalID: ap.ProfessionalID,
		Metadata: map[string]any{
			"date":   ap.Date,
			"time":   ap.Time,
			"reason": reason,
		},
	})

	return ap, nil
}
