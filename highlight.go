package picket

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultFadeDuration = 0.15 // seconds

// HighlightColors are the tints applied per interaction state. Precedence
// is pressed over hovered over selected over the entity's initial color.
type HighlightColors struct {
	Hovered  Color
	Pressed  Color
	Selected Color
}

// Highlighter is a read-only consumer that maps interaction and selection
// state to a per-entity tint, fading between states. It never touches the
// pipeline; renderers read [Highlighter.Color] and apply it however they
// like.
type Highlighter struct {
	picker   *Picker
	selector *Selector
	colors   HighlightColors
	duration float32
	entries  map[Entity]*highlightEntry
}

type highlightEntry struct {
	initial Color
	current Color
	goal    Color
	tweens  [4]*gween.Tween // R, G, B, A
}

// NewHighlighter creates a highlighter over the picker's interaction state.
func NewHighlighter(p *Picker, colors HighlightColors) *Highlighter {
	return &Highlighter{
		picker:   p,
		colors:   colors,
		duration: defaultFadeDuration,
		entries:  make(map[Entity]*highlightEntry),
	}
}

// SetFadeDuration sets how long a tint transition takes, in seconds.
// Zero or negative snaps instantly.
func (h *Highlighter) SetFadeDuration(seconds float32) {
	h.duration = seconds
}

// SetSelector attaches a selector so selected entities pick up the Selected
// tint. Pass nil to detach.
func (h *Highlighter) SetSelector(s *Selector) {
	h.selector = s
}

// Track starts highlighting the entity. initial is the tint shown when the
// entity is idle and unselected.
func (h *Highlighter) Track(e Entity, initial Color) {
	h.entries[e] = &highlightEntry{initial: initial, current: initial, goal: initial}
}

// Untrack stops highlighting the entity.
func (h *Highlighter) Untrack(e Entity) {
	delete(h.entries, e)
}

// Color returns the entity's current tint. Untracked entities read as
// ColorWhite.
func (h *Highlighter) Color(e Entity) Color {
	if entry, ok := h.entries[e]; ok {
		return entry.current
	}
	return ColorWhite
}

// Update advances the fades by dt seconds and retargets any entity whose
// interaction or selection state changed. Call once per frame, after
// [Picker.Update].
func (h *Highlighter) Update(dt float32) {
	for e, entry := range h.entries {
		if !h.picker.world.Alive(e) {
			delete(h.entries, e)
			continue
		}

		goal := entry.initial
		if h.selector != nil && h.selector.Selected(e) {
			goal = h.colors.Selected
		}
		switch h.picker.EntityInteraction(e) {
		case InteractionPressed:
			goal = h.colors.Pressed
		case InteractionHovered:
			goal = h.colors.Hovered
		}

		if goal != entry.goal {
			entry.goal = goal
			if h.duration <= 0 {
				entry.current = goal
				entry.tweens = [4]*gween.Tween{}
			} else {
				from := entry.current
				entry.tweens[0] = gween.New(float32(from.R), float32(goal.R), h.duration, ease.OutQuad)
				entry.tweens[1] = gween.New(float32(from.G), float32(goal.G), h.duration, ease.OutQuad)
				entry.tweens[2] = gween.New(float32(from.B), float32(goal.B), h.duration, ease.OutQuad)
				entry.tweens[3] = gween.New(float32(from.A), float32(goal.A), h.duration, ease.OutQuad)
			}
		}

		for i, tw := range entry.tweens {
			if tw == nil {
				continue
			}
			v, done := tw.Update(dt)
			switch i {
			case 0:
				entry.current.R = float64(v)
			case 1:
				entry.current.G = float64(v)
			case 2:
				entry.current.B = float64(v)
			case 3:
				entry.current.A = float64(v)
			}
			if done {
				entry.tweens[i] = nil
			}
		}
	}
}
