package ecs

import (
	"github.com/fernbrook/vista"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for vista gesture events.
// Subscribe to this in your ECS systems to receive pinch, wheel, and snap
// notifications.
var GestureEventType = events.NewEventType[vista.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) vista.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event vista.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
