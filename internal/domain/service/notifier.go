package service

import "github.com/google/uuid"

// Notifier pushes real-time events to connected clients. Delivery is
// best effort: a user with no open connection simply misses the event.
type Notifier interface {
	// PushToUser sends an event to every open connection of one user.
	PushToUser(userID uuid.UUID, eventName string, message any)

	// PushToAll broadcasts an event to every connected client.
	PushToAll(eventName string, message any)
}
