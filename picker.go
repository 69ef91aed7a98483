package picket

// EntityStore is the interface for optional ECS integration. When set on a
// Picker, every emitted interaction event is forwarded to it after local
// dispatch.
type EntityStore interface {
	EmitEvent(event Event)
}

// eventSink is a registered picker-level event handler.
type eventSink struct {
	id uint32
	fn func(Event)
}

// CallbackHandle allows removing a registered picker-level event handler.
type CallbackHandle struct {
	id     uint32
	picker *Picker
}

// Remove unregisters this handler so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.picker == nil {
		return
	}
	s := h.picker.sinks
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventSink{}
			h.picker.sinks = s[:len(s)-1]
			return
		}
	}
}

// Picker runs the per-frame picking pipeline over a [World]: hit
// aggregation, focus resolution, the interaction state machine, and event
// bubbling. Processing is single-threaded; all methods must be called from
// the same goroutine that calls Update.
//
// Frame protocol:
//  1. Feed pointer input (MovePointer, PressPointer, ReleasePointer, ...).
//  2. Let every backend test and Submit its hits.
//  3. Call Update once.
type Picker struct {
	world *World
	store EntityStore

	pointers     map[PointerID]*pointerState
	pointerOrder []PointerID

	presses   []pressTransition
	hits      map[PointerID]*pointerHits
	sortBuf   []Hit
	hover     map[PointerID][]hoverEntry
	prevHover map[PointerID][]hoverEntry

	down         map[pointerButton]Entity
	drag         map[pointerButton]Entity
	released     []pointerButton
	interactions map[pointerEntity]Interaction

	events []Event
	sinks  []eventSink
	nextID uint32

	logger eventLogger
}

// NewPicker creates a picker over the given world. The mouse pointer is not
// spawned automatically; input adapters spawn the pointers they manage.
func NewPicker(world *World) *Picker {
	return &Picker{
		world:        world,
		pointers:     make(map[PointerID]*pointerState),
		hits:         make(map[PointerID]*pointerHits),
		hover:        make(map[PointerID][]hoverEntry),
		prevHover:    make(map[PointerID][]hoverEntry),
		down:         make(map[pointerButton]Entity),
		drag:         make(map[pointerButton]Entity),
		interactions: make(map[pointerEntity]Interaction),
	}
}

// World returns the entity arena this picker operates on.
func (p *Picker) World() *World {
	return p.world
}

// SetStore sets the optional ECS bridge. Pass nil to disconnect.
func (p *Picker) SetStore(store EntityStore) {
	p.store = store
}

// OnEvent registers a picker-level handler that receives every emitted
// event, before bubbling. Handlers cannot stop propagation; register a
// listener on an entity for that.
func (p *Picker) OnEvent(fn func(Event)) CallbackHandle {
	p.nextID++
	p.sinks = append(p.sinks, eventSink{id: p.nextID, fn: fn})
	return CallbackHandle{id: p.nextID, picker: p}
}

// --- Pointer management ---

// SpawnPointer registers a pointer. Safe to call for an already-known
// pointer. The pointer has no location until MovePointer is called.
func (p *Picker) SpawnPointer(id PointerID) {
	if ps, ok := p.pointers[id]; ok {
		ps.despawned = false
		return
	}
	p.pointers[id] = &pointerState{id: id}
	p.pointerOrder = append(p.pointerOrder, id)
}

// DespawnPointer removes a pointer. Removal is deferred to the end of the
// next Update so that this frame's release transitions and Exit events still
// resolve; the pointer contributes no hits in the meantime.
func (p *Picker) DespawnPointer(id PointerID) {
	if ps, ok := p.pointers[id]; ok {
		ps.despawned = true
	}
}

// MovePointer updates the pointer's location. Unknown pointers are spawned
// implicitly, so a custom pointer needs no explicit SpawnPointer call.
func (p *Picker) MovePointer(id PointerID, loc Location) {
	ps, ok := p.pointers[id]
	if !ok {
		p.SpawnPointer(id)
		ps = p.pointers[id]
	}
	ps.location = loc
	ps.hasLocation = true
}

// ClearPointerLocation marks the pointer as having no active location this
// frame (for example, the cursor left the window). Its hits are rejected and
// its hover set empties, emitting Exit events.
func (p *Picker) ClearPointerLocation(id PointerID) {
	if ps, ok := p.pointers[id]; ok {
		ps.hasLocation = false
	}
}

// PressPointer records a button-down transition for the pointer.
func (p *Picker) PressPointer(id PointerID, button PointerButton) {
	if _, ok := p.pointers[id]; !ok {
		p.SpawnPointer(id)
	}
	p.presses = append(p.presses, pressTransition{pointer: id, button: button, down: true})
}

// ReleasePointer records a button-up transition for the pointer.
func (p *Picker) ReleasePointer(id PointerID, button PointerButton) {
	if _, ok := p.pointers[id]; !ok {
		return
	}
	p.presses = append(p.presses, pressTransition{pointer: id, button: button, down: false})
}

// SetMultiselect sets the pointer's multi-select modifier flag, read by
// selection consumers.
func (p *Picker) SetMultiselect(id PointerID, on bool) {
	if ps, ok := p.pointers[id]; ok {
		ps.multiselect = on
	}
}

// Multiselect reports the pointer's multi-select modifier flag.
func (p *Picker) Multiselect(id PointerID) bool {
	ps, ok := p.pointers[id]
	return ok && ps.multiselect
}

// Location returns the pointer's current location and whether it has one.
func (p *Picker) Location(id PointerID) (Location, bool) {
	ps, ok := p.pointers[id]
	if !ok || !ps.hasLocation || ps.despawned {
		return Location{}, false
	}
	return ps.location, true
}

// Pointers returns the identities of all live pointers in spawn order. The
// returned slice must not be mutated.
func (p *Picker) Pointers() []PointerID {
	return p.pointerOrder
}

// --- Frame tick ---

// Update runs one frame of the pipeline: focus resolution over this frame's
// submissions, the interaction state machine, then bubbling dispatch. It
// finishes by clearing the hit multisets (keeping their storage) so backends
// can submit for the next frame.
func (p *Picker) Update() {
	p.resolveFocus()
	p.emitEvents()
	p.dispatch()
	p.clearHits()
	p.finishFrame()
}

// finishFrame records last-known positions for drag deltas and removes
// pointers whose despawn was deferred.
func (p *Picker) finishFrame() {
	for _, ps := range p.pointers {
		if ps.hasLocation {
			ps.lastPos = ps.location.Position
			ps.hasLastPos = true
		}
	}
	for i := 0; i < len(p.pointerOrder); {
		id := p.pointerOrder[i]
		ps := p.pointers[id]
		if ps == nil || !ps.despawned {
			i++
			continue
		}
		delete(p.pointers, id)
		delete(p.hits, id)
		delete(p.hover, id)
		delete(p.prevHover, id)
		copy(p.pointerOrder[i:], p.pointerOrder[i+1:])
		p.pointerOrder = p.pointerOrder[:len(p.pointerOrder)-1]
	}
}
