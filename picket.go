package picket

import "fmt"

// Vec2 is a 2D vector used for pointer positions and drag deltas. The
// coordinate system has its origin at the top-left, with Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Used by the highlight consumer; apply it however your renderer expects.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// PointerButton identifies a pointer button. Touch contacts always report
// ButtonPrimary.
type PointerButton uint8

const (
	ButtonPrimary   PointerButton = iota // left mouse button / touch contact
	ButtonSecondary                      // right mouse button
	ButtonMiddle                         // middle mouse button

	numButtons = 3
)

// String returns a readable name for the button.
func (b PointerButton) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonMiddle:
		return "Middle"
	default:
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
}

// EventKind identifies a kind of interaction event.
type EventKind uint8

const (
	EventEnter     EventKind = iota // pointer began hovering the target
	EventExit                       // pointer stopped hovering the target
	EventPress                      // button pressed while the target was focused
	EventRelease                    // button released while the target was focused
	EventClick                      // press then release with the same focused target
	EventDragStart                  // first movement after a press
	EventDrag                       // movement each frame while a button is held
	EventDragEnd                    // button released after dragging
	EventDrop                       // a dragged entity was released over the target

	numEventKinds = 9
)

// String returns a readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "Enter"
	case EventExit:
		return "Exit"
	case EventPress:
		return "Press"
	case EventRelease:
		return "Release"
	case EventClick:
		return "Click"
	case EventDragStart:
		return "DragStart"
	case EventDrag:
		return "Drag"
	case EventDragEnd:
		return "DragEnd"
	case EventDrop:
		return "Drop"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Layer is a coarse resolution priority band. Lower values always outrank
// higher values regardless of hit depth. The named constants leave gaps so
// applications can slot custom layers between them.
type Layer int

const (
	LayerAboveAll   Layer = 0  // topmost picking layer
	LayerUI         Layer = 10 // UI entities
	LayerAboveWorld Layer = 20 // immediately above the world
	LayerWorld      Layer = 30 // the default layer
	LayerBelowWorld Layer = 40 // immediately below the world
	LayerBelowAll   Layer = 50 // bottommost picking layer
)

// FocusPolicy decides whether focus resolution stops at an entity or
// continues to the next-ranked hit.
type FocusPolicy uint8

const (
	FocusBlock FocusPolicy = iota // resolution stops here (the default)
	FocusPass                     // resolution continues past this entity
)

// Interaction is the per-(pointer, entity) interaction state, readable
// through [Picker.Interaction].
type Interaction uint8

const (
	InteractionNone    Interaction = iota // pointer is not over the entity
	InteractionHovered                    // pointer is over the entity
	InteractionPressed                    // a button press started on the entity and it is still hovered
)

// String returns a readable name for the interaction state.
func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "None"
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return fmt.Sprintf("Interaction(%d)", uint8(i))
	}
}
