package picket

import "sort"

// hoverEntry pairs a hovered entity with the hit that produced it, so
// Enter/Exit/Press events can carry the surface data.
type hoverEntry struct {
	entity Entity
	hit    Hit
}

// resolveFocus turns this frame's aggregated hits into the per-pointer
// ordered hover sets. Ordering is layer first (lower outranks), then camera
// order (higher outranks) within a layer, then depth ascending; ties keep
// submission order. The walk stops after the first FocusBlock entity;
// FocusPass entities accumulate and let resolution continue.
func (p *Picker) resolveFocus() {
	// Last frame's hover map becomes the previous map; the old previous map
	// is cleared and reused as this frame's current.
	p.prevHover, p.hover = p.hover, p.prevHover
	for id := range p.hover {
		delete(p.hover, id)
	}

	for _, id := range p.pointerOrder {
		ps := p.pointers[id]
		if !ps.hasLocation || ps.despawned {
			continue
		}
		ph, ok := p.hits[id]
		if !ok || len(ph.hits) == 0 {
			continue
		}

		p.sortBuf = append(p.sortBuf[:0], ph.hits...)
		hits := p.sortBuf
		sort.SliceStable(hits, func(i, j int) bool {
			li, lj := p.world.Layer(hits[i].Entity), p.world.Layer(hits[j].Entity)
			if li != lj {
				return li < lj
			}
			if hits[i].CameraOrder != hits[j].CameraOrder {
				return hits[i].CameraOrder > hits[j].CameraOrder
			}
			return hits[i].Depth < hits[j].Depth
		})

		var entries []hoverEntry
		for _, hit := range hits {
			if !p.world.Alive(hit.Entity) {
				continue // despawned since the backend tested it
			}
			if containsEntity(entries, hit.Entity) {
				continue // same entity reported by several backends; nearest wins
			}
			entries = append(entries, hoverEntry{entity: hit.Entity, hit: hit})
			if p.world.FocusPolicy(hit.Entity) == FocusBlock {
				break
			}
		}
		if len(entries) > 0 {
			p.hover[id] = entries
		}
	}
}

func containsEntity(entries []hoverEntry, e Entity) bool {
	for i := range entries {
		if entries[i].entity == e {
			return true
		}
	}
	return false
}

// HoverSet returns the ordered list of entities the pointer is resolved to
// be over this frame, highest priority first. The returned slice is a copy.
func (p *Picker) HoverSet(id PointerID) []Entity {
	entries := p.hover[id]
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entity, len(entries))
	for i := range entries {
		out[i] = entries[i].entity
	}
	return out
}

// Focused returns the pointer's focused entity: the first element of its
// hover set. ok is false when the pointer hovers nothing.
func (p *Picker) Focused(id PointerID) (Entity, bool) {
	entries := p.hover[id]
	if len(entries) == 0 {
		return NoEntity, false
	}
	return entries[0].entity, true
}

// focusedEntry returns the focused hover entry, if any.
func (p *Picker) focusedEntry(id PointerID) (hoverEntry, bool) {
	entries := p.hover[id]
	if len(entries) == 0 {
		return hoverEntry{}, false
	}
	return entries[0], true
}

func hoverContains(entries []hoverEntry, e Entity) bool {
	return containsEntity(entries, e)
}
