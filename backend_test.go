package picket

import (
	"math"
	"testing"
)

func TestSubmitRejectsMalformedDepth(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()

	cases := []struct {
		name  string
		depth float32
	}{
		{"nan", float32(math.NaN())},
		{"positive infinity", float32(math.Inf(1))},
		{"negative infinity", float32(math.Inf(-1))},
		{"negative", -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if p.Submit(MousePointer, Hit{Entity: e, Depth: tc.depth}) {
				t.Error("malformed hit should be rejected")
			}
		})
	}
}

func TestSubmitRejectionDropsOnlyThatHit(t *testing.T) {
	w, p := newMousePicker()
	good := w.Spawn()
	bad := w.Spawn()

	p.Submit(MousePointer, Hit{Entity: bad, Depth: float32(math.NaN())})
	if !p.Submit(MousePointer, Hit{Entity: good, Depth: 1}) {
		t.Fatal("well-formed hit should be accepted")
	}
	p.Update()

	if focused, _ := p.Focused(MousePointer); focused != good {
		t.Errorf("focused = %v, want %v", focused, good)
	}
}

func TestSubmitRejectsUnknownPointer(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()
	if p.Submit(TouchPointer(3), Hit{Entity: e, Depth: 1}) {
		t.Error("hit for unknown pointer should be rejected")
	}
}

func TestSubmitRejectsPointerWithoutLocation(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()
	p.ClearPointerLocation(MousePointer)
	if p.Submit(MousePointer, Hit{Entity: e, Depth: 1}) {
		t.Error("hit for location-less pointer should be rejected")
	}
}

func TestSubmitRejectsDespawnedPointer(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()
	p.DespawnPointer(MousePointer)
	if p.Submit(MousePointer, Hit{Entity: e, Depth: 1}) {
		t.Error("hit for despawned pointer should be rejected")
	}
}

func TestHitsClearedEachFrame(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()

	frame(p, Hit{Entity: e, Depth: 1})
	if _, ok := p.Focused(MousePointer); !ok {
		t.Fatal("entity should be focused after submission")
	}

	// No submission this frame: last frame's hits must not linger.
	p.Update()
	if _, ok := p.Focused(MousePointer); ok {
		t.Error("stale hits carried over into the next frame")
	}
}

func TestClearedLocationEmptiesHover(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()
	r := record(p)

	frame(p, Hit{Entity: e, Depth: 1})
	r.reset()

	// Cursor left the window: hover drains with an Exit even though the
	// backend could not have produced a fresh hit anyway.
	p.ClearPointerLocation(MousePointer)
	p.Update()

	if !sameKinds(r.kinds(), []EventKind{EventExit}) {
		t.Errorf("kinds = %v, want [Exit]", r.kinds())
	}
}
