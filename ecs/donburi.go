// Package ecs provides ECS adapters for picket's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges picket interaction
// events (enter/exit, press/release/click, drag lifecycle, drop) into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	picker.SetStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

import (
	"github.com/phanxgames/picket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for picket interaction
// events. Subscribe to this in your ECS systems to receive pointer, click,
// and drag events.
var InteractionEventType = events.NewEventType[picket.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) picket.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event picket.Event) {
	InteractionEventType.Publish(s.world, event)
}
