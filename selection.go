package picket

// SelectionChange notifies a consumer that an entity's selection flipped.
type SelectionChange struct {
	Entity   Entity
	Selected bool
}

// Selector derives a selection set from the interaction event stream. A
// press anywhere without the multi-select modifier deselects everything; a
// click selects its target, or toggles it under multi-select. Only tracked
// entities are selectable.
type Selector struct {
	picker     *Picker
	selected   map[Entity]bool
	noDeselect map[Entity]bool
	onChange   func(SelectionChange)
	handle     CallbackHandle
}

// NewSelector creates a selector and subscribes it to the picker's event
// stream.
func NewSelector(p *Picker) *Selector {
	s := &Selector{
		picker:     p,
		selected:   make(map[Entity]bool),
		noDeselect: make(map[Entity]bool),
	}
	s.handle = p.OnEvent(s.handleEvent)
	return s
}

// Close unsubscribes the selector from the picker.
func (s *Selector) Close() {
	s.handle.Remove()
}

// Track makes the entity selectable. Entities start deselected.
func (s *Selector) Track(e Entity) {
	if _, ok := s.selected[e]; !ok {
		s.selected[e] = false
	}
}

// Untrack removes the entity from selection management, deselecting it
// first if needed.
func (s *Selector) Untrack(e Entity) {
	if s.selected[e] {
		s.set(e, false)
	}
	delete(s.selected, e)
	delete(s.noDeselect, e)
}

// SetNoDeselect marks an entity whose presses do not clear the current
// selection. Useful for gizmos and other pickable chrome.
func (s *Selector) SetNoDeselect(e Entity, on bool) {
	if on {
		s.noDeselect[e] = true
	} else {
		delete(s.noDeselect, e)
	}
}

// Selected reports whether the entity is currently selected.
func (s *Selector) Selected(e Entity) bool {
	return s.selected[e]
}

// Each calls fn for every selected entity.
func (s *Selector) Each(fn func(Entity)) {
	for e, sel := range s.selected {
		if sel {
			fn(e)
		}
	}
}

// OnChange sets the callback invoked whenever an entity's selection flips.
func (s *Selector) OnChange(fn func(SelectionChange)) {
	s.onChange = fn
}

func (s *Selector) handleEvent(ev Event) {
	switch ev.Kind {
	case EventPress:
		if ev.Button != ButtonPrimary {
			return
		}
		if s.picker.Multiselect(ev.Pointer) || s.noDeselect[ev.Target] {
			return
		}
		for e, sel := range s.selected {
			if sel {
				s.set(e, false)
			}
		}
	case EventClick:
		if ev.Button != ButtonPrimary {
			return
		}
		sel, tracked := s.selected[ev.Target]
		if !tracked {
			return
		}
		if s.picker.Multiselect(ev.Pointer) {
			s.set(ev.Target, !sel)
		} else if !sel {
			s.set(ev.Target, true)
		}
	}
}

func (s *Selector) set(e Entity, sel bool) {
	if s.selected[e] == sel {
		return
	}
	s.selected[e] = sel
	if s.onChange != nil {
		s.onChange(SelectionChange{Entity: e, Selected: sel})
	}
}
