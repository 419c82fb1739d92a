package appointment

import "time"

// ===============================
// Actors
// ===============================

const (
	RoleClient       = "client"
	RoleProfessional = "professional"
	RoleSystem       = "system"
)

// Actor identifies who is performing an operation. Every usecase takes
// it explicitly instead of reading ambient request state.
type Actor struct {
	ID   uint
	Role string
}

// ===============================
// Availability
// ===============================

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ===============================
// Policy
// ===============================

// Policy holds the booking thresholds. A single configured value feeds
// every module that needs one of these numbers.
type Policy struct {
	SlotGranularity time.Duration
	MinAdvance      time.Duration
	MaxAdvanceDays  int
	CancelDeadline  time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		SlotGranularity: 30 * time.Minute,
		MinAdvance:      60 * time.Minute,
		MaxAdvanceDays:  90,
		CancelDeadline:  120 * time.Minute,
	}
}
