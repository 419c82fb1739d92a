package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/httperr"
	"github.com/groomly/salon-scheduler/internal/models"
)

func seedBooking(r *fakeRepo, publicID string, clientID, proID uint, start time.Time) {
	r.appointments = append(r.appointments, models.Appointment{
		PublicID:       publicID,
		ClientID:       clientID,
		ProfessionalID: proID,
		Status:         string(domain.StatusScheduled),
		Date:           start.Format("2006-01-02"),
		Time:           start.Format("15:04"),
		StartsAt:       start,
		EndsAt:         start.Add(30 * time.Minute),
	})
}

func cancelUC(r *fakeRepo, now time.Time) *CancelAppointment {
	uc := NewCancelAppointment(r, nil, domain.DefaultPolicy(), time.UTC)
	uc.now = func() time.Time { return now }
	return uc
}

func TestCancelAppointment_ByClient(t *testing.T) {
	repo := newFakeRepo()
	start := bookingMonday().Add(14 * time.Hour)
	seedBooking(repo, "a1", 7, 1, start)

	uc := cancelUC(repo, start.Add(-5*time.Hour))
	ap, err := uc.Execute(context.Background(), client(7), "a1", "imprevisto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(domain.StatusCancelled) {
		t.Fatalf("expected cancelled, got %s", ap.Status)
	}

	stored := repo.find("a1")
	if stored.Status != string(domain.StatusCancelled) {
		t.Fatalf("cancellation not persisted: %s", stored.Status)
	}
	if stored.CancelReason != "imprevisto" || stored.CancelledAt == nil {
		t.Fatalf("cancel metadata not persisted: %q %v", stored.CancelReason, stored.CancelledAt)
	}
}

func TestCancelAppointment_ByProfessional(t *testing.T) {
	repo := newFakeRepo()
	start := bookingMonday().Add(14 * time.Hour)
	seedBooking(repo, "a1", 7, 1, start)

	uc := cancelUC(repo, start.Add(-5*time.Hour))
	actor := domain.Actor{ID: 1, Role: domain.RoleProfessional}
	if _, err := uc.Execute(context.Background(), actor, "a1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancelAppointment_NotOwner(t *testing.T) {
	repo := newFakeRepo()
	start := bookingMonday().Add(14 * time.Hour)
	seedBooking(repo, "a1", 7, 1, start)

	uc := cancelUC(repo, start.Add(-5*time.Hour))

	if _, err := uc.Execute(context.Background(), client(8), "a1", ""); !httperr.IsBusiness(err, "not_owner") {
		t.Fatalf("expected not_owner for another client, got %v", err)
	}

	other := domain.Actor{ID: 2, Role: domain.RoleProfessional}
	if _, err := uc.Execute(context.Background(), other, "a1", ""); !httperr.IsBusiness(err, "not_owner") {
		t.Fatalf("expected not_owner for another professional, got %v", err)
	}
}

func TestCancelAppointment_TooLate(t *testing.T) {
	repo := newFakeRepo()
	start := bookingMonday().Add(14 * time.Hour)
	seedBooking(repo, "a1", 7, 1, start)

	uc := cancelUC(repo, start.Add(-time.Hour))
	_, err := uc.Execute(context.Background(), client(7), "a1", "")
	if !httperr.IsBusiness(err, "too_late_to_cancel") {
		t.Fatalf("expected too_late_to_cancel, got %v", err)
	}

	stored := repo.find("a1")
	if stored.Status != string(domain.StatusScheduled) {
		t.Fatalf("failed cancel must not persist, got %s", stored.Status)
	}
}

func TestCancelAppointment_AlreadyTerminal(t *testing.T) {
	repo := newFakeRepo()
	start := bookingMonday().Add(14 * time.Hour)
	seedBooking(repo, "a1", 7, 1, start)
	repo.appointments[0].Status = string(domain.StatusCompleted)

	uc := cancelUC(repo, start.Add(-24*time.Hour))
	_, err := uc.Execute(context.Background(), client(7), "a1", "")
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
}

// sweptRepo completes the row right after it is read, simulating the
// sweeper committing between a cancel's fetch and its write.
type sweptRepo struct {
	*fakeRepo
}

func (r *sweptRepo) GetAppointmentByPublicID(ctx context.Context, publicID string) (*models.Appointment, error) {
	ap, err := r.fakeRepo.GetAppointmentByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	stored := r.fakeRepo.find(publicID)
	stored.Status = string(domain.StatusCompleted)

	return ap, nil
}

func TestCancelAppointment_LosesRaceToCompletion(t *testing.T) {
	inner := newFakeRepo()
	start := bookingMonday().Add(14 * time.Hour)
	seedBooking(inner, "a1", 7, 1, start)
	repo := &sweptRepo{fakeRepo: inner}

	uc := NewCancelAppointment(repo, nil, domain.DefaultPolicy(), time.UTC)
	uc.now = func() time.Time { return start.Add(-5 * time.Hour) }

	_, err := uc.Execute(context.Background(), client(7), "a1", "")
	if !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("expected invalid_transition when completion commits first, got %v", err)
	}

	if got := inner.find("a1").Status; got != string(domain.StatusCompleted) {
		t.Fatalf("completed row must not be overwritten, got %s", got)
	}
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := cancelUC(repo, bookingMonday())

	_, err := uc.Execute(context.Background(), client(7), "missing", "")
	if !httperr.IsBusiness(err, "not_found") {
		t.Fatalf("expected not_found, got %v", err)
	}
}
