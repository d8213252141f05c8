package audit

import (
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	ActionReservationCreated   = "reservation_created"
	ActionReservationUpdated   = "reservation_updated"
	ActionReservationCancelled = "reservation_cancelled"
	ActionMenuCreated          = "menu_created"
	ActionMenuDeleted          = "menu_deleted"
)

type Event struct {
	RestaurantID uint
	ActorID      *uint
	ActorRole    string
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

type sink interface {
	Log(ev Event) error
}

// Dispatcher writes audit events on a background worker. Dispatch never
// blocks: when the queue is full the event is dropped. A nil *Dispatcher
// discards everything.
type Dispatcher struct {
	sink  sink
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(s sink, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		sink:  s,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			logrus.WithError(err).WithField("action", ev.Action).Error("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		logrus.WithField("action", ev.Action).Warn("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		logrus.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until the queue is drained. Later
// Dispatch calls drop their events.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
