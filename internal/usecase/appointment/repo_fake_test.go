package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository. CreateAppointment re-checks the
// overlap under a mutex, mirroring the transactional guard of the real
// implementation, which makes it usable for the concurrency tests.
type fakeRepo struct {
	mu sync.Mutex

	professionals map[uint]*models.Professional
	services      map[uint]*models.Service
	overrides     map[[2]uint]*models.ProfessionalPrice
	workingHours  map[[2]uint]*models.WorkingHours
	blocked       []models.BlockedTime
	appointments  []models.Appointment

	nextID     uint
	failUpdate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		professionals: map[uint]*models.Professional{},
		services:      map[uint]*models.Service{},
		overrides:     map[[2]uint]*models.ProfessionalPrice{},
		workingHours:  map[[2]uint]*models.WorkingHours{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetProfessionalByID(_ context.Context, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.professionals[id]
	if !ok {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	return p, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return s, nil
}

func (r *fakeRepo) GetPriceOverride(_ context.Context, proID, svcID uint) (*models.ProfessionalPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overrides[[2]uint{proID, svcID}], nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, proID uint, weekday int) (*models.WorkingHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.workingHours[[2]uint{proID, uint(weekday)}], nil
}

func (r *fakeRepo) ListBlockedTimes(_ context.Context, proID uint, date string) ([]models.BlockedTime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.BlockedTime{}
	for _, b := range r.blocked {
		if b.ProfessionalID == proID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot := domain.Interval{Start: ap.StartsAt, End: ap.EndsAt}
	for _, existing := range r.appointments {
		if existing.ProfessionalID != ap.ProfessionalID {
			continue
		}
		if existing.Status == string(domain.StatusCancelled) {
			continue
		}
		if slot.Overlaps(domain.Interval{Start: existing.StartsAt, End: existing.EndsAt}) {
			return httperr.ErrBusinessDetail(
				"slot_taken",
				existing.StartsAt.Format("15:04")+"-"+existing.EndsAt.Format("15:04"),
			)
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, proID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.ProfessionalID != proID || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.StartsAt.Before(end) && start.Before(ap.EndsAt) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointmentByPublicID(_ context.Context, publicID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.appointments {
		if ap.PublicID == publicID {
			cp := ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (r *fakeRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment, fromStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate {
		return httperr.ErrBusiness("update_failed")
	}
	for i := range r.appointments {
		if r.appointments[i].PublicID != ap.PublicID {
			continue
		}
		if r.appointments[i].Status != fromStatus {
			return httperr.ErrBusiness("invalid_transition")
		}
		r.appointments[i] = *ap
		return nil
	}
	return httperr.ErrBusiness("not_found")
}

func (r *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, proID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.ProfessionalID != proID {
			continue
		}
		if !ap.StartsAt.Before(start) && ap.StartsAt.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListSweepCandidates(_ context.Context, now time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		switch ap.Status {
		case string(domain.StatusScheduled), string(domain.StatusConfirmed), string(domain.StatusInProgress):
			if !ap.StartsAt.After(now) {
				out = append(out, ap)
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) find(publicID string) *models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].PublicID == publicID {
			return &r.appointments[i]
		}
	}
	return nil
}
