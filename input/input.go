// Package input polls Ebitengine mouse and touch state and feeds it to a
// [picket.Picker] as pointer input: locations, button edges, touch pointer
// lifetimes, and the multi-select modifier.
//
// Call [Source.Update] once per frame, before backends submit hits and
// before [picket.Picker.Update].
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/picket"
)

const maxTouches = 10

// Source polls Ebitengine input devices for a picker. It owns the mouse
// pointer and one touch pointer per active contact; touch pointers are
// spawned on first contact and despawned on lift.
type Source struct {
	picker *picket.Picker
	target int

	mouseButtons [3]bool

	touchMap  [maxTouches]ebiten.TouchID
	touchUsed [maxTouches]bool
	touchIDs  []ebiten.TouchID
}

// mouseButton pairs an ebiten button with its picket identity.
var mouseButtons = [3]struct {
	eb ebiten.MouseButton
	pb picket.PointerButton
}{
	{ebiten.MouseButtonLeft, picket.ButtonPrimary},
	{ebiten.MouseButtonRight, picket.ButtonSecondary},
	{ebiten.MouseButtonMiddle, picket.ButtonMiddle},
}

// New creates a source feeding the picker. The mouse pointer is spawned
// immediately.
func New(p *picket.Picker) *Source {
	s := &Source{picker: p}
	p.SpawnPointer(picket.MousePointer)
	return s
}

// SetTarget sets the surface identifier reported in pointer locations.
// Useful when several render targets share one picker; backends can filter
// on it.
func (s *Source) SetTarget(target int) {
	s.target = target
}

// Update polls the devices and forwards this frame's input to the picker.
func (s *Source) Update() {
	s.updateMouse()
	s.updateTouches()
	s.updateMultiselect()
}

func (s *Source) updateMouse() {
	mx, my := ebiten.CursorPosition()
	s.picker.MovePointer(picket.MousePointer, picket.Location{
		Target:   s.target,
		Position: picket.Vec2{X: float64(mx), Y: float64(my)},
	})

	for i, b := range mouseButtons {
		pressed := ebiten.IsMouseButtonPressed(b.eb)
		if pressed == s.mouseButtons[i] {
			continue
		}
		s.mouseButtons[i] = pressed
		if pressed {
			s.picker.PressPointer(picket.MousePointer, b.pb)
		} else {
			s.picker.ReleasePointer(picket.MousePointer, b.pb)
		}
	}
}

func (s *Source) updateTouches() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	var active [maxTouches]bool
	for _, tid := range s.touchIDs {
		slot, fresh := s.touchSlot(tid)
		if slot < 0 {
			continue // all slots busy; ignore the extra contact
		}
		active[slot] = true

		id := picket.TouchPointer(uint32(slot))
		tx, ty := ebiten.TouchPosition(tid)
		loc := picket.Location{
			Target:   s.target,
			Position: picket.Vec2{X: float64(tx), Y: float64(ty)},
		}
		if fresh {
			s.picker.SpawnPointer(id)
			s.picker.MovePointer(id, loc)
			s.picker.PressPointer(id, picket.ButtonPrimary)
		} else {
			s.picker.MovePointer(id, loc)
		}
	}

	// Lifted contacts: release, then despawn. The picker defers the actual
	// removal so this frame's Release and Exit still resolve.
	for slot := 0; slot < maxTouches; slot++ {
		if !s.touchUsed[slot] || active[slot] {
			continue
		}
		id := picket.TouchPointer(uint32(slot))
		s.picker.ReleasePointer(id, picket.ButtonPrimary)
		s.picker.DespawnPointer(id)
		s.touchUsed[slot] = false
		s.touchMap[slot] = 0
	}
}

// touchSlot maps an ebiten.TouchID to a stable slot, allocating one for new
// contacts. fresh is true when the slot was just allocated. Returns -1 when
// every slot is in use.
func (s *Source) touchSlot(tid ebiten.TouchID) (slot int, fresh bool) {
	for i := 0; i < maxTouches; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 0; i < maxTouches; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}

func (s *Source) updateMultiselect() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	s.picker.SetMultiselect(picket.MousePointer, shift)
	for slot := 0; slot < maxTouches; slot++ {
		if s.touchUsed[slot] {
			s.picker.SetMultiselect(picket.TouchPointer(uint32(slot)), shift)
		}
	}
}
