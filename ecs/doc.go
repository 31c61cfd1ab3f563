// Package ecs provides ECS adapters for vista's gesture event system.
//
// The primary adapter is [NewDonburiStore], which bridges vista gesture
// events (pinch-start, zoomed, moved, pinch-end) into a [Donburi] world as
// typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	viewport.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
