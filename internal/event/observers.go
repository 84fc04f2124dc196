package event

import (
	"sync"

	"github.com/google/uuid"

	"github.com/kode4food/tableview/event"
)

type (
	// Observers manages a set of Listeners that are notified in the order
	// they were added
	Observers[Payload any] struct {
		callbacks map[uuid.UUID]event.Listener[Payload]
		order     []uuid.UUID
		mu        sync.RWMutex
	}

	subscription[Payload any] struct {
		id        uuid.UUID
		observers *Observers[Payload]
	}
)

// Make instantiates a new set of Observers
func Make[Payload any]() *Observers[Payload] {
	return &Observers[Payload]{
		callbacks: map[uuid.UUID]event.Listener[Payload]{},
	}
}

// Add registers a Listener, returning its Subscription
func (o *Observers[Payload]) Add(
	l event.Listener[Payload],
) event.Subscription {
	id := uuid.New()
	o.mu.Lock()
	defer o.mu.Unlock()
	o.callbacks[id] = l
	o.order = append(o.order, id)
	return &subscription[Payload]{
		id:        id,
		observers: o,
	}
}

func (o *Observers[_]) remove(id uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.callbacks[id]; !ok {
		return
	}
	delete(o.callbacks, id)
	for i, e := range o.order {
		if e == id {
			o.order = append(o.order[:i:i], o.order[i+1:]...)
			return
		}
	}
}

// Notify delivers the payload to every registered Listener. The set of
// Listeners is captured before delivery, so Listeners may subscribe or
// cancel while being notified
func (o *Observers[Payload]) Notify(p Payload) {
	for _, l := range o.snapshot() {
		l(p)
	}
}

func (o *Observers[Payload]) snapshot() []event.Listener[Payload] {
	o.mu.RLock()
	defer o.mu.RUnlock()
	res := make([]event.Listener[Payload], 0, len(o.order))
	for _, id := range o.order {
		res = append(res, o.callbacks[id])
	}
	return res
}

func (s *subscription[_]) ID() uuid.UUID {
	return s.id
}

func (s *subscription[_]) Cancel() {
	s.observers.remove(s.id)
}
