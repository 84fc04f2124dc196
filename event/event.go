package event

import "github.com/google/uuid"

type (
	// Subscription is returned when registering a Listener. Canceling it
	// stops any further deliveries to that Listener
	Subscription interface {
		ID() uuid.UUID
		Cancel()
	}

	// Listener receives an event's payload
	Listener[Payload any] func(Payload)
)
