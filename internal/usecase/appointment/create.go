package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/events"
	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/lock"
	"github.com/groomly/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProfessionalID uint
	ServiceID      uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker lock.SlotLocker
	events *events.Dispatcher
	policy domain.Policy
	loc    *time.Location
	now    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.SlotLocker,
	dispatcher *events.Dispatcher,
	policy domain.Policy,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		events: dispatcher,
		policy: policy,
		loc:    loc,
		now:    time.Now,
	}
}

// Execute runs the booking guard in order: advance window, working
// hours, blocked times, slot conflict. The first failure wins; the slot
// conflict is re-checked inside the repository transaction so a race
// between two bookings surfaces as slot_taken for the loser.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if actor.Role != domain.RoleClient {
		return nil, httperr.ErrBusiness("forbidden")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	now := uc.now().In(uc.loc)
	if !start.After(now.Add(uc.policy.MinAdvance)) {
		return nil, httperr.ErrBusiness("past_or_too_soon")
	}

	pro, err := uc.repo.GetProfessionalByID(ctx, in.ProfessionalID)
	if err != nil || !pro.Active {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	override, err := uc.repo.GetPriceOverride(ctx, pro.ID, svc.ID)
	if err != nil {
		return nil, err
	}

	durationMin := domain.ResolveDuration(override, svc)
	end := start.Add(time.Duration(durationMin) * time.Minute)
	slot := domain.Interval{Start: start, End: end}

	wh, err := uc.repo.GetWorkingHours(ctx, pro.ID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}

	sched, open := domain.ResolveDaySchedule(wh, start)
	if !open || !sched.Fits(slot) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	blocks, err := uc.repo.ListBlockedTimes(ctx, pro.ID, in.Date)
	if err != nil {
		return nil, err
	}
	for _, b := range domain.BlockedIntervals(blocks, start) {
		if slot.Overlaps(b) {
			return nil, httperr.ErrBusinessDetail(
				"blocked",
				b.Start.Format("15:04")+"-"+b.End.Format("15:04"),
			)
		}
	}

	// Advisory serialization of identical-slot races. The lock is best
	// effort; the transaction below stays authoritative.
	key := fmt.Sprintf("slot:%d:%s:%s", pro.ID, in.Date, in.Time)
	acquired, lockErr := uc.locker.Lock(ctx, key, 10*time.Second)
	if lockErr == nil {
		if !acquired {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		defer uc.locker.Unlock(ctx, key)
	}

	ap := &models.Appointment{
		PublicID:       uuid.NewString(),
		ClientID:       actor.ID,
		ProfessionalID: pro.ID,
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		TotalPrice:     domain.ResolvePrice(override, svc),
		DurationMin:    durationMin,
		Date:           in.Date,
		Time:           in.Time,
		StartsAt:       start,
		EndsAt:         end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       ap.PublicID,
		ActorID:        &actor.ID,
		ActorRole:      actor.Role,
		ProfessionalID: pro.ID,
		Metadata: map[string]any{
			"date":    ap.Date,
			"time":    ap.Time,
			"service": ap.ServiceName,
		},
	})

	return ap, nil
}
