package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/groomly/salon-scheduler/internal/domain/appointment"
	"github.com/groomly/salon-scheduler/internal/models"
)

func TestSweepCompleted_AdvancesElapsed(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)

	day := bookingMonday()
	seedBooking(repo, "done", 7, 1, day.Add(9*time.Hour))   // 09:00, over by 10:00
	seedBooking(repo, "open", 8, 1, day.Add(15*time.Hour))  // 15:00, still ahead
	repo.appointments[0].ServiceID = 1
	repo.appointments[1].ServiceID = 1

	uc := NewSweepCompleted(repo, nil)
	now := day.Add(10 * time.Hour)

	count, err := uc.Execute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 sweep, got %d", count)
	}

	if got := repo.find("done").Status; got != string(domain.StatusCompleted) {
		t.Fatalf("expected done completed, got %s", got)
	}
	if repo.find("done").CompletedAt == nil {
		t.Fatalf("expected completion timestamp")
	}
	if got := repo.find("open").Status; got != string(domain.StatusScheduled) {
		t.Fatalf("future booking must be untouched, got %s", got)
	}
}

func TestSweepCompleted_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	seedBooking(repo, "done", 7, 1, bookingMonday().Add(9*time.Hour))
	repo.appointments[0].ServiceID = 1

	uc := NewSweepCompleted(repo, nil)
	now := bookingMonday().Add(10 * time.Hour)

	if count, _ := uc.Execute(context.Background(), now); count != 1 {
		t.Fatalf("first sweep should complete one")
	}
	if count, _ := uc.Execute(context.Background(), now); count != 0 {
		t.Fatalf("second sweep must be a no-op")
	}
}

func TestSweepCompleted_InProgressStillRunning(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)

	day := bookingMonday()
	seedBooking(repo, "a1", 7, 1, day.Add(9*time.Hour))
	repo.appointments[0].ServiceID = 1
	repo.appointments[0].Status = string(domain.StatusInProgress)

	uc := NewSweepCompleted(repo, nil)

	// started but the 30 minutes have not elapsed
	if count, _ := uc.Execute(context.Background(), day.Add(9*time.Hour+15*time.Minute)); count != 0 {
		t.Fatalf("running appointment must not be completed early")
	}

	if count, _ := uc.Execute(context.Background(), day.Add(10*time.Hour)); count != 1 {
		t.Fatalf("elapsed in_progress appointment must be completed")
	}
}

func TestSweepCompleted_OverrideDuration(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	dur := 90
	repo.overrides[[2]uint{1, 1}] = &models.ProfessionalPrice{
		ProfessionalID: 1, ServiceID: 1, DurationMin: &dur, Active: true,
	}

	day := bookingMonday()
	seedBooking(repo, "a1", 7, 1, day.Add(9*time.Hour))
	repo.appointments[0].ServiceID = 1

	uc := NewSweepCompleted(repo, nil)

	// catalog says 30 minutes, the override says 90: 10:00 is too early
	if count, _ := uc.Execute(context.Background(), day.Add(10*time.Hour)); count != 0 {
		t.Fatalf("override duration must delay the sweep")
	}
	if count, _ := uc.Execute(context.Background(), day.Add(10*time.Hour+30*time.Minute)); count != 1 {
		t.Fatalf("expected sweep once the override duration elapsed")
	}
}

func TestSweepCompleted_MissingServiceFallsBack(t *testing.T) {
	repo := newFakeRepo()
	repo.professionals[1] = &models.Professional{ID: 1, Name: "Rafael"}

	day := bookingMonday()
	seedBooking(repo, "a1", 7, 1, day.Add(9*time.Hour))
	repo.appointments[0].ServiceID = 42 // not in catalog anymore

	uc := NewSweepCompleted(repo, nil)

	// fallback is 60 minutes: 09:45 too early, 10:00 completes
	if count, _ := uc.Execute(context.Background(), day.Add(9*time.Hour+45*time.Minute)); count != 0 {
		t.Fatalf("fallback duration must hold the sweep until the hour elapses")
	}
	if count, _ := uc.Execute(context.Background(), day.Add(10*time.Hour)); count != 1 {
		t.Fatalf("expected sweep with the fallback duration")
	}
}

func TestSweepCompleted_UpdateFailureSkipsRow(t *testing.T) {
	repo := newFakeRepo()
	seedSalon(repo)
	seedBooking(repo, "a1", 7, 1, bookingMonday().Add(9*time.Hour))
	repo.appointments[0].ServiceID = 1
	repo.failUpdate = true

	uc := NewSweepCompleted(repo, nil)
	count, err := uc.Execute(context.Background(), bookingMonday().Add(10*time.Hour))
	if err != nil {
		t.Fatalf("a failed row must not fail the sweep: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed update must not be counted, got %d", count)
	}
}
