package picket

// Event is one derived interaction event. It is a closed tagged variant:
// Kind selects which of the optional fields are meaningful.
//
//	Press/Release/Click          Button, Hit
//	Enter/Exit                   Hit
//	DragStart/Drag/DragEnd       Button, Delta (Drag only)
//	Drop                         Button, Dropped, Hit
//
// Position is always the pointer's position when the event was emitted.
type Event struct {
	Kind     EventKind
	Pointer  PointerID
	Target   Entity
	Button   PointerButton
	Position Vec2
	Delta    Vec2
	Hit      Hit
	Dropped  Entity
}

// ListenedEvent is the payload a bubbled callback receives: the event plus
// the entity whose listener is running. Listener equals Target when the
// target itself registered the callback, and an ancestor otherwise.
type ListenedEvent struct {
	Event
	Listener Entity
}

// emitEvents runs the interaction state machine for one frame, appending
// derived events to p.events. Within the frame, all Enter/Exit transitions
// for a pointer are emitted before Press/Release/Click, which precede the
// Drag family.
func (p *Picker) emitEvents() {
	p.emitHoverTransitions()
	p.emitButtonTransitions()
	p.emitDragLifecycle()
	p.clearStalePresses()
	p.updateInteractions()
}

// emitHoverTransitions diffs the hover set against last frame's: entities no
// longer hovered get an Exit, newly hovered entities get an Enter.
func (p *Picker) emitHoverTransitions() {
	for _, id := range p.pointerOrder {
		ps := p.pointers[id]
		cur := p.hover[id]
		prev := p.prevHover[id]

		for _, entry := range prev {
			if !hoverContains(cur, entry.entity) {
				p.events = append(p.events, Event{
					Kind:     EventExit,
					Pointer:  id,
					Target:   entry.entity,
					Position: ps.location.Position,
					Hit:      entry.hit,
				})
			}
		}
		for _, entry := range cur {
			if !hoverContains(prev, entry.entity) {
				p.events = append(p.events, Event{
					Kind:     EventEnter,
					Pointer:  id,
					Target:   entry.entity,
					Position: ps.location.Position,
					Hit:      entry.hit,
				})
			}
		}
	}
}

// emitButtonTransitions consumes the raw button edges recorded since the
// last frame, in submission order. A press against a focused entity records
// a down-started-here entry; a release emits Release and, when the focused
// entity matches the recorded press target, a Click.
func (p *Picker) emitButtonTransitions() {
	for _, tr := range p.presses {
		ps, ok := p.pointers[tr.pointer]
		if !ok {
			continue
		}
		key := pointerButton{pointer: tr.pointer, button: tr.button}

		if tr.down {
			ps.press[tr.button] = true
			if entry, focused := p.focusedEntry(tr.pointer); focused {
				p.events = append(p.events, Event{
					Kind:     EventPress,
					Pointer:  tr.pointer,
					Target:   entry.entity,
					Button:   tr.button,
					Position: ps.location.Position,
					Hit:      entry.hit,
				})
				p.down[key] = entry.entity
			} else {
				delete(p.down, key)
			}
			continue
		}

		ps.press[tr.button] = false
		downEntity := p.down[key]
		delete(p.down, key)
		if entry, focused := p.focusedEntry(tr.pointer); focused {
			p.events = append(p.events, Event{
				Kind:     EventRelease,
				Pointer:  tr.pointer,
				Target:   entry.entity,
				Button:   tr.button,
				Position: ps.location.Position,
				Hit:      entry.hit,
			})
			if !downEntity.IsNone() && downEntity == entry.entity {
				p.events = append(p.events, Event{
					Kind:     EventClick,
					Pointer:  tr.pointer,
					Target:   entry.entity,
					Button:   tr.button,
					Position: ps.location.Position,
					Hit:      entry.hit,
				})
			}
		}
		p.released = append(p.released, key)
	}
	p.presses = p.presses[:0]
}

// emitDragLifecycle emits DragStart on the first movement after a press,
// Drag on every moving frame while the button stays down, and DragEnd (plus
// Drop, when the pointer is over a different entity) on release.
func (p *Picker) emitDragLifecycle() {
	for _, id := range p.pointerOrder {
		ps := p.pointers[id]
		if !ps.hasLocation || !ps.hasLastPos {
			continue
		}
		pos := ps.location.Position
		if pos == ps.lastPos {
			continue
		}
		delta := Vec2{X: pos.X - ps.lastPos.X, Y: pos.Y - ps.lastPos.Y}

		for b := PointerButton(0); b < numButtons; b++ {
			if !ps.press[b] {
				continue
			}
			key := pointerButton{pointer: id, button: b}
			if dragged, dragging := p.drag[key]; dragging {
				p.events = append(p.events, Event{
					Kind:     EventDrag,
					Pointer:  id,
					Target:   dragged,
					Button:   b,
					Position: pos,
					Delta:    delta,
				})
				continue
			}
			downEntity, ok := p.down[key]
			if !ok || downEntity.IsNone() {
				continue
			}
			p.drag[key] = downEntity
			p.events = append(p.events, Event{
				Kind:     EventDragStart,
				Pointer:  id,
				Target:   downEntity,
				Button:   b,
				Position: pos,
				Delta:    delta,
			})
			p.events = append(p.events, Event{
				Kind:     EventDrag,
				Pointer:  id,
				Target:   downEntity,
				Button:   b,
				Position: pos,
				Delta:    delta,
			})
		}
	}

	for _, key := range p.released {
		dragged, dragging := p.drag[key]
		if !dragging {
			continue
		}
		delete(p.drag, key)
		ps := p.pointers[key.pointer]
		p.events = append(p.events, Event{
			Kind:     EventDragEnd,
			Pointer:  key.pointer,
			Target:   dragged,
			Button:   key.button,
			Position: ps.location.Position,
		})
		if entry, focused := p.focusedEntry(key.pointer); focused && entry.entity != dragged {
			p.events = append(p.events, Event{
				Kind:     EventDrop,
				Pointer:  key.pointer,
				Target:   entry.entity,
				Button:   key.button,
				Position: ps.location.Position,
				Hit:      entry.hit,
				Dropped:  dragged,
			})
		}
	}
	p.released = p.released[:0]
}

// clearStalePresses drops down-started-here records whose pointer has
// focused away from the press target while the button is still held. A later
// release back on the original entity then no longer counts as a click.
func (p *Picker) clearStalePresses() {
	for key, downEntity := range p.down {
		if downEntity.IsNone() {
			delete(p.down, key)
			continue
		}
		ps, ok := p.pointers[key.pointer]
		if !ok || !ps.press[key.button] {
			delete(p.down, key)
			continue
		}
		if focused, ok := p.Focused(key.pointer); !ok || focused != downEntity {
			delete(p.down, key)
		}
	}
}

// updateInteractions rebuilds the per-(pointer, entity) interaction records
// for this frame. Hovered entities read Hovered; an entity that a press
// started on and that is still hovered reads Pressed.
func (p *Picker) updateInteractions() {
	clear(p.interactions)
	for _, id := range p.pointerOrder {
		for _, entry := range p.hover[id] {
			p.interactions[pointerEntity{pointer: id, entity: entry.entity}] = InteractionHovered
		}
	}
	for key, downEntity := range p.down {
		if downEntity.IsNone() {
			continue
		}
		if hoverContains(p.hover[key.pointer], downEntity) {
			p.interactions[pointerEntity{pointer: key.pointer, entity: downEntity}] = InteractionPressed
		}
	}
}

// Interaction returns the pointer's interaction state with the entity.
func (p *Picker) Interaction(id PointerID, e Entity) Interaction {
	return p.interactions[pointerEntity{pointer: id, entity: e}]
}

// EntityInteraction returns the strongest interaction state any pointer has
// with the entity. Convenient for consumers that color or highlight
// regardless of which pointer is involved.
func (p *Picker) EntityInteraction(e Entity) Interaction {
	best := InteractionNone
	for key, state := range p.interactions {
		if key.entity == e && state > best {
			best = state
		}
	}
	return best
}
