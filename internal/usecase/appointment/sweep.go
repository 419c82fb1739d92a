package appointment

import (
	"context"
	"log"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/events"
	"github.com/groomly/salon-scheduler/internal/httperr"
)

// SweepCompleted advances stale appointments to completed once their end
// time has elapsed. It runs opportunistically before request handling,
// so it is strictly best effort: a failed row is skipped, never fatal.
type SweepCompleted struct {
	repo   domain.Repository
	events *events.Dispatcher
}

func NewSweepCompleted(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
) *SweepCompleted {
	return &SweepCompleted{
		repo:   repo,
		events: dispatcher,
	}
}

func (uc *SweepCompleted) Execute(ctx context.Context, now time.Time) (int, error) {
	candidates, err := uc.repo.ListSweepCandidates(ctx, now)
	if err != nil {
		return 0, err
	}

	type pair struct{ pro, svc uint }
	durations := map[pair]int{}

	count := 0
	for i := range candidates {
		ap := &candidates[i]

		key := pair{ap.ProfessionalID, ap.ServiceID}
		durMin, ok := durations[key]
		if !ok {
			durMin = uc.resolveDuration(ctx, ap.ProfessionalID, ap.ServiceID)
			durations[key] = durMin
		}

		if ap.StartsAt.Add(time.Duration(durMin) * time.Minute).After(now) {
			continue
		}

		from := ap.Status

		if err := domain.AutoComplete(ap, now); err != nil {
			continue
		}

		if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
			// losing to a concurrent transition is expected, not a fault
			if !httperr.IsBusiness(err, "invalid_transition") {
				log.Printf("sweep: failed to complete appointment %s: %v", ap.PublicID, err)
			}
			continue
		}

		count++

		uc.events.Dispatch(events.Event{
			Action:         "appointment_completed",
			Entity:         "appointment",
			EntityID:       ap.PublicID,
			ActorRole:      domain.RoleSystem,
			ProfessionalID: ap.ProfessionalID,
			Metadata: map[string]any{
				"date": ap.Date,
				"time": ap.Time,
			},
		})
	}

	return count, nil
}

// resolveDuration follows the precedence the resolver uses at booking
// time: professional override, then catalog, then the fixed fallback.
// Missing records never fail the sweep.
func (uc *SweepCompleted) resolveDuration(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
) int {

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		svc = nil
	}

	override, err := uc.repo.GetPriceOverride(ctx, professionalID, serviceID)
	if err != nil {
		override = nil
	}

	return domain.ResolveDuration(override, svc)
}
