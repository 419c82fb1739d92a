package appointment

import (
	"context"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo   domain.Repository
	policy domain.Policy
	now    func() time.Time
}

func NewGetAvailability(repo domain.Repository, policy domain.Policy) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		policy: policy,
		now:    time.Now,
	}
}

// Execute computes the bookable start times for one professional, date
// and service. The result is advisory: the booking path re-runs the same
// rules authoritatively inside a transaction.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	// a deactivated professional is delisted, not just hidden
	pro, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil || !pro.Active {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	now := uc.now().In(in.Date.Location())

	// Beyond the booking horizon the day is not "fully booked", it is
	// not open for booking yet. Distinct signal so clients can tell.
	horizon := now.AddDate(0, 0, uc.policy.MaxAdvanceDays)
	if in.Date.After(horizon) {
		return nil, httperr.ErrBusiness("too_far_in_future")
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.ProfessionalID, int(in.Date.Weekday()))
	if err != nil {
		return nil, err
	}

	sched, open := domain.ResolveDaySchedule(wh, in.Date)
	if !open {
		return nil, httperr.ErrBusiness("closed_that_day")
	}

	override, err := uc.repo.GetPriceOverride(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	duration := time.Duration(domain.ResolveDuration(override, svc)) * time.Minute

	blocks, err := uc.repo.ListBlockedTimes(
		ctx,
		in.ProfessionalID,
		in.Date.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	blocked := domain.BlockedIntervals(blocks, in.Date)

	taken, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ProfessionalID,
		sched.Open.Start,
		sched.Open.End,
	)
	if err != nil {
		return nil, err
	}

	minStart := now.Add(uc.policy.MinAdvance)

	slots := []domain.TimeSlot{}

	for cur := sched.Open.Start; !cur.Add(duration).After(sched.Open.End); cur = cur.Add(uc.policy.SlotGranularity) {

		slot := domain.Interval{Start: cur, End: cur.Add(duration)}

		// today: candidates inside the minimum-advance window are gone
		if cur.Before(minStart) {
			continue
		}

		if !sched.Fits(slot) {
			continue
		}

		conflict := false
		for _, b := range blocked {
			if slot.Overlaps(b) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		for _, ap := range taken {
			if slot.Overlaps(domain.Interval{Start: ap.StartsAt, End: ap.EndsAt}) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: slot.Start.Format("15:04"),
			End:   slot.End.Format("15:04"),
		})
	}

	return slots, nil
}
