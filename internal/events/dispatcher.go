package events

import "log"

// Event is emitted on every appointment transition. The notification
// collaborator consumes the persisted rows; the core only records them.
type Event struct {
	Action         string
	Entity         string
	EntityID       string
	ActorID        *uint
	ActorRole      string
	ProfessionalID uint
	Metadata       any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Println("event log error:", err)
		}
	}
}

// Dispatch enqueues without blocking. A full queue drops the event: the
// event trail must never fail the request that produced it.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("event queue full, dropping event")
	}
}
