// Package picket resolves, once per frame, which entity each active pointer
// (mouse, touch, or synthetic) is interacting with, derives semantic events
// (enter, exit, press, release, click, drag lifecycle, drop) from raw hits
// and button edges, and bubbles those events up a parent/child hierarchy to
// registered listeners.
//
// Picket is renderer-agnostic: it knows nothing about meshes, sprites, or
// windows. Backends perform the actual spatial queries and feed candidates
// in with [Picker.Submit]; picket ranks them by [Layer], camera order, and
// depth, applies each entity's [FocusPolicy], and drives the per-pointer
// interaction state machine.
//
// # Quick start
//
//	world := picket.NewWorld()
//	picker := picket.NewPicker(world)
//
//	box := world.Spawn()
//	world.Listen(box, picket.EventClick, func(ev picket.ListenedEvent) picket.Bubble {
//		fmt.Println("clicked", ev.Target)
//		return picket.BubbleUp
//	})
//
//	// Each frame: feed input, let backends submit hits, then update.
//	picker.MovePointer(picket.MousePointer, picket.Location{Position: pos})
//	picker.Submit(picket.MousePointer, picket.Hit{Entity: box, Depth: 1})
//	picker.Update()
//
// # Event bubbling
//
// Events start at their target entity and bubble child-to-ancestor. A
// listener returns [BubbleUp] to let the event continue or [BubbleBurst] to
// consume it. Listener lookups are cached in a per-frame graph, so many
// events sharing ancestors in one frame walk the hierarchy only once.
//
// # Subpackages
//
// The input adapter for Ebitengine lives in picket/input, a simple 2D shape
// backend in picket/backends/bounds, and a Donburi ECS event bridge in
// picket/ecs. Selection and highlight consumers ([Selector], [Highlighter])
// are part of this package.
package picket
