package ecs

import (
	"testing"

	"github.com/phanxgames/picket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	pw := picket.NewWorld()
	target := pw.Spawn()

	var received []picket.Event
	InteractionEventType.Subscribe(world, func(w donburi.World, e picket.Event) {
		received = append(received, e)
	})

	store.EmitEvent(picket.Event{
		Kind:     picket.EventPress,
		Pointer:  picket.MousePointer,
		Target:   target,
		Button:   picket.ButtonPrimary,
		Position: picket.Vec2{X: 100, Y: 200},
	})

	store.EmitEvent(picket.Event{
		Kind:    picket.EventDrag,
		Pointer: picket.TouchPointer(1),
		Target:  target,
		Delta:   picket.Vec2{X: 3, Y: -2},
	})

	// Events are queued — process them.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != picket.EventPress || e0.Target != target {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position.X != 100 || e0.Position.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.Position.X, e0.Position.Y)
	}

	e1 := received[1]
	if e1.Kind != picket.EventDrag || e1.Delta.X != 3 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store picket.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e picket.Event) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e picket.Event) {
		count2++
	})

	store.EmitEvent(picket.Event{Kind: picket.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
