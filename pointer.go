package picket

import "fmt"

// PointerKind distinguishes the three sources a pointer can come from.
type PointerKind uint8

const (
	KindMouse  PointerKind = iota // the physical mouse
	KindTouch                     // a numbered touch contact
	KindCustom                    // a synthetic, software-controlled pointer
)

// PointerID is the stable identity of a logical input source, tracked across
// frames. It is comparable and usable as a map key.
type PointerID struct {
	Kind PointerKind
	Num  uint32
}

// MousePointer is the identity of the physical mouse pointer.
var MousePointer = PointerID{Kind: KindMouse}

// TouchPointer returns the identity of a numbered touch contact.
func TouchPointer(n uint32) PointerID {
	return PointerID{Kind: KindTouch, Num: n}
}

// CustomPointer returns the identity of a synthetic pointer. Useful for
// mocking input or driving a software cursor.
func CustomPointer(n uint32) PointerID {
	return PointerID{Kind: KindCustom, Num: n}
}

// IsMouse reports whether the pointer is the mouse.
func (id PointerID) IsMouse() bool { return id.Kind == KindMouse }

// IsTouch reports whether the pointer is a touch contact.
func (id PointerID) IsTouch() bool { return id.Kind == KindTouch }

// IsCustom reports whether the pointer is synthetic.
func (id PointerID) IsCustom() bool { return id.Kind == KindCustom }

// String returns a readable name like "mouse" or "touch(2)".
func (id PointerID) String() string {
	switch id.Kind {
	case KindMouse:
		return "mouse"
	case KindTouch:
		return fmt.Sprintf("touch(%d)", id.Num)
	case KindCustom:
		return fmt.Sprintf("custom(%d)", id.Num)
	default:
		return fmt.Sprintf("pointer(%d,%d)", id.Kind, id.Num)
	}
}

// Location is where a pointer currently is: a target surface (window,
// viewport, or render target — an opaque integer chosen by the input
// adapter) and a 2D position on that surface.
type Location struct {
	Target   int
	Position Vec2
}

// pointerState is the per-pointer state the Picker tracks across frames.
type pointerState struct {
	id          PointerID
	location    Location
	hasLocation bool
	lastPos     Vec2
	hasLastPos  bool
	press       [numButtons]bool
	multiselect bool
	despawned   bool // removal deferred to the end of the frame
}

// pressTransition is one raw button edge recorded between frames.
type pressTransition struct {
	pointer PointerID
	button  PointerButton
	down    bool
}

// pointerButton keys per-(pointer, button) state-machine maps.
type pointerButton struct {
	pointer PointerID
	button  PointerButton
}

// pointerEntity keys the interaction-record map.
type pointerEntity struct {
	pointer PointerID
	entity  Entity
}
