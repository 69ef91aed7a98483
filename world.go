package picket

import "fmt"

// Entity is a handle into a [World]: a slot index plus a generation counter.
// Handles stay cheap to copy and compare, and a handle to a despawned slot is
// detected as stale even after the slot is reused.
type Entity struct {
	index      uint32
	generation uint32
}

// NoEntity is the zero Entity. It never refers to a live slot.
var NoEntity = Entity{}

// IsNone reports whether e is the zero handle.
func (e Entity) IsNone() bool {
	return e.generation == 0
}

// String returns a readable form like "entity(3v2)".
func (e Entity) String() string {
	if e.IsNone() {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%dv%d)", e.index, e.generation)
}

// listenerSlot holds the registered callback for one (entity, event kind)
// pair. While a dispatch is running the callback is checked out: the slot is
// empty and checkedOut is set, so the same callback can never be entered
// twice within one traversal.
type listenerSlot struct {
	callback   Callback
	checkedOut bool
}

type worldSlot struct {
	generation uint32
	alive      bool
	parent     Entity
	layer      Layer
	hasLayer   bool
	policy     FocusPolicy
	hasPolicy  bool
	pickable   bool
	listeners  [numEventKinds]listenerSlot
}

// World is the entity arena the picking pipeline operates on. It owns the
// parent links (child-to-ancestor back-references only), the per-entity
// picking components, and the listener slots.
//
// A World is not a scene graph: it stores no child lists and no transforms.
// Entities mirror whatever objects your engine tracks; backends translate
// spatial queries into [Hit] submissions against these handles.
type World struct {
	slots []worldSlot
	free  []uint32
}

// NewWorld creates an empty entity arena.
func NewWorld() *World {
	return &World{}
}

// Spawn allocates a new entity. New entities are pickable, have no parent,
// and carry the default layer (LayerWorld) and policy (FocusBlock) until set
// explicitly.
func (w *World) Spawn() Entity {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.slots = append(w.slots, worldSlot{})
		index = uint32(len(w.slots) - 1)
	}
	slot := &w.slots[index]
	slot.generation++
	slot.alive = true
	slot.parent = NoEntity
	slot.hasLayer = false
	slot.hasPolicy = false
	slot.pickable = true
	slot.listeners = [numEventKinds]listenerSlot{}
	return Entity{index: index, generation: slot.generation}
}

// Despawn frees the entity. Handles held elsewhere become stale and are
// skipped by the pipeline; children keep their (now dangling) parent link,
// which the bubble walker prunes at lookup time.
func (w *World) Despawn(e Entity) {
	slot := w.slotFor(e)
	if slot == nil {
		return
	}
	slot.alive = false
	slot.parent = NoEntity
	slot.listeners = [numEventKinds]listenerSlot{}
	w.free = append(w.free, e.index)
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.slotFor(e) != nil
}

// SetParent sets child's parent link, or clears it when parent is NoEntity.
// Panics if the link would form a cycle through live entities. Cycles can
// still appear later through despawn-and-respawn churn, so traversal never
// relies on acyclicity.
func (w *World) SetParent(child, parent Entity) {
	slot := w.slotFor(child)
	if slot == nil {
		return
	}
	if parent.IsNone() {
		slot.parent = NoEntity
		return
	}
	for p := parent; !p.IsNone(); {
		if p == child {
			panic("picket: setting parent would create a cycle")
		}
		ps := w.slotFor(p)
		if ps == nil {
			break
		}
		p = ps.parent
	}
	slot.parent = parent
}

// Parent returns child's parent and whether one is set.
func (w *World) Parent(child Entity) (Entity, bool) {
	slot := w.slotFor(child)
	if slot == nil || slot.parent.IsNone() {
		return NoEntity, false
	}
	return slot.parent, true
}

// SetLayer assigns the entity's picking layer.
func (w *World) SetLayer(e Entity, l Layer) {
	if slot := w.slotFor(e); slot != nil {
		slot.layer = l
		slot.hasLayer = true
	}
}

// Layer returns the entity's picking layer, or LayerWorld if none was set.
func (w *World) Layer(e Entity) Layer {
	if slot := w.slotFor(e); slot != nil && slot.hasLayer {
		return slot.layer
	}
	return LayerWorld
}

// SetFocusPolicy assigns the entity's focus policy.
func (w *World) SetFocusPolicy(e Entity, p FocusPolicy) {
	if slot := w.slotFor(e); slot != nil {
		slot.policy = p
		slot.hasPolicy = true
	}
}

// FocusPolicy returns the entity's focus policy, or FocusBlock if none was
// set.
func (w *World) FocusPolicy(e Entity) FocusPolicy {
	if slot := w.slotFor(e); slot != nil && slot.hasPolicy {
		return slot.policy
	}
	return FocusBlock
}

// SetPickable marks whether backends should test this entity at all.
// Backends must never submit hits for an entity with pickable disabled.
func (w *World) SetPickable(e Entity, pickable bool) {
	if slot := w.slotFor(e); slot != nil {
		slot.pickable = pickable
	}
}

// Pickable reports whether the entity participates in picking.
func (w *World) Pickable(e Entity) bool {
	slot := w.slotFor(e)
	return slot != nil && slot.pickable
}

// Listen registers cb as the entity's callback for the given event kind,
// replacing any previous registration. At most one callback is active per
// (entity, kind) pair.
func (w *World) Listen(e Entity, kind EventKind, cb Callback) {
	slot := w.slotFor(e)
	if slot == nil || cb == nil {
		return
	}
	ls := &slot.listeners[kind]
	ls.callback = cb
	// A re-registration from inside a running callback supersedes the
	// checked-out one; the return after dispatch is discarded.
	ls.checkedOut = false
}

// Unlisten removes the entity's callback for the given event kind.
func (w *World) Unlisten(e Entity, kind EventKind) {
	if slot := w.slotFor(e); slot != nil {
		slot.listeners[kind] = listenerSlot{}
	}
}

// slotFor returns the live slot for e, or nil if e is stale or none.
func (w *World) slotFor(e Entity) *worldSlot {
	if e.IsNone() || e.index >= uint32(len(w.slots)) {
		return nil
	}
	slot := &w.slots[e.index]
	if !slot.alive || slot.generation != e.generation {
		return nil
	}
	return slot
}

// takeCallback checks the callback out of its slot. The slot stays marked
// checked out until returnCallback runs, so a re-entrant dispatch of the
// same listener is structurally impossible.
func (w *World) takeCallback(e Entity, kind EventKind) (Callback, bool) {
	slot := w.slotFor(e)
	if slot == nil {
		return nil, false
	}
	ls := &slot.listeners[kind]
	if ls.callback == nil {
		return nil, false
	}
	cb := ls.callback
	ls.callback = nil
	ls.checkedOut = true
	return cb, true
}

// returnCallback puts a checked-out callback back into its slot. If the slot
// was re-registered or cleared while checked out, the stale callback is
// dropped.
func (w *World) returnCallback(e Entity, kind EventKind, cb Callback) {
	slot := w.slotFor(e)
	if slot == nil {
		return
	}
	ls := &slot.listeners[kind]
	if ls.checkedOut {
		ls.callback = cb
		ls.checkedOut = false
	}
}
