package appointment

import "github.com/groomly/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// transitions maps each non-terminal status to the statuses it may move to.
// completed, cancelled and no_show are terminal: no outgoing edges.
var transitions = map[Status][]Status{
	StatusScheduled:  {StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusNoShow},
}

func IsValid(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// CanTransition validates a status change against the transition table.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func InitialStatus() Status {
	return StatusScheduled
}

// PreCompletionStatuses are the statuses the auto-completion sweeper advances.
func PreCompletionStatuses() []string {
	return []string{
		string(StatusScheduled),
		string(StatusConfirmed),
		string(StatusInProgress),
	}
}
