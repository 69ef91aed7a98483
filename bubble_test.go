package picket

import "testing"

// clickOn drives a full press/release on the entity so a Click event fires.
func clickOn(p *Picker, e Entity) {
	frame(p, Hit{Entity: e, Depth: 1})
	p.PressPointer(MousePointer, ButtonPrimary)
	frame(p, Hit{Entity: e, Depth: 1})
	p.ReleasePointer(MousePointer, ButtonPrimary)
	frame(p, Hit{Entity: e, Depth: 1})
}

func TestBubbleRunsAncestorsInOrder(t *testing.T) {
	w, p := newMousePicker()
	root := w.Spawn()
	mid := w.Spawn()
	leaf := w.Spawn()
	w.SetParent(mid, root)
	w.SetParent(leaf, mid)

	var order []Entity
	listen := func(e Entity) {
		w.Listen(e, EventClick, func(ev ListenedEvent) Bubble {
			order = append(order, ev.Listener)
			if ev.Target != leaf {
				t.Errorf("Target = %v, want %v", ev.Target, leaf)
			}
			return BubbleUp
		})
	}
	listen(leaf)
	listen(mid)
	listen(root)

	clickOn(p, leaf)

	want := []Entity{leaf, mid, root}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestBubbleSkipsNonListeners(t *testing.T) {
	w, p := newMousePicker()
	root := w.Spawn()
	mid := w.Spawn() // no listener
	leaf := w.Spawn()
	w.SetParent(mid, root)
	w.SetParent(leaf, mid)

	var got []Entity
	w.Listen(root, EventClick, func(ev ListenedEvent) Bubble {
		got = append(got, ev.Listener)
		return BubbleUp
	})

	clickOn(p, leaf)

	if len(got) != 1 || got[0] != root {
		t.Errorf("listeners run = %v, want [%v]", got, root)
	}
}

func TestBubbleBurstStopsPropagation(t *testing.T) {
	w, p := newMousePicker()
	root := w.Spawn()
	leaf := w.Spawn()
	w.SetParent(leaf, root)

	var rootCalls int
	w.Listen(leaf, EventClick, func(ListenedEvent) Bubble { return BubbleBurst })
	w.Listen(root, EventClick, func(ListenedEvent) Bubble { rootCalls++; return BubbleUp })

	clickOn(p, leaf)

	if rootCalls != 0 {
		t.Errorf("rootCalls = %d, want 0; burst should stop the walk", rootCalls)
	}
}

func TestBurstAffectsOnlyOneEvent(t *testing.T) {
	w, p := newMousePicker()
	root := w.Spawn()
	a := w.Spawn() // pass-through, listener bursts
	c := w.Spawn() // below, no listener
	w.SetParent(a, root)
	w.SetParent(c, root)
	w.SetFocusPolicy(a, FocusPass)

	w.Listen(a, EventEnter, func(ListenedEvent) Bubble { return BubbleBurst })
	var rootEnters []Entity
	w.Listen(root, EventEnter, func(ev ListenedEvent) Bubble {
		rootEnters = append(rootEnters, ev.Target)
		return BubbleUp
	})

	// One frame, two Enter events: a's is burst at a, c's reaches root.
	frame(p, Hit{Entity: a, Depth: 1}, Hit{Entity: c, Depth: 2})

	if len(rootEnters) != 1 || rootEnters[0] != c {
		t.Errorf("root saw enters for %v, want [%v]", rootEnters, c)
	}
}

func TestBubbleSharedAncestorRunsPerEvent(t *testing.T) {
	w, p := newMousePicker()
	root := w.Spawn()
	a := w.Spawn()
	c := w.Spawn()
	w.SetParent(a, root)
	w.SetParent(c, root)
	w.SetFocusPolicy(a, FocusPass)

	// Both events in the frame share root as their only listener; the cached
	// listener graph must still run it once per event.
	var rootEnters []Entity
	w.Listen(root, EventEnter, func(ev ListenedEvent) Bubble {
		rootEnters = append(rootEnters, ev.Target)
		return BubbleUp
	})

	frame(p, Hit{Entity: a, Depth: 1}, Hit{Entity: c, Depth: 2})

	if len(rootEnters) != 2 || rootEnters[0] != a || rootEnters[1] != c {
		t.Errorf("root saw enters for %v, want [%v %v]", rootEnters, a, c)
	}
}

func TestBubbleStaleTargetDropped(t *testing.T) {
	w, p := newMousePicker()
	parent := w.Spawn()
	child := w.Spawn()
	w.SetParent(child, parent)

	var calls int
	w.Listen(parent, EventEnter, func(ListenedEvent) Bubble { calls++; return BubbleUp })

	// A picker-level sink despawns the target before bubbling reaches it.
	p.OnEvent(func(ev Event) {
		if ev.Kind == EventEnter && ev.Target == child {
			w.Despawn(child)
		}
	})

	frame(p, Hit{Entity: child, Depth: 1})

	if calls != 0 {
		t.Errorf("calls = %d, want 0; stale target events are dropped", calls)
	}
}

func TestBubbleTerminatesOnParentCycle(t *testing.T) {
	w, p := newMousePicker()
	a := w.Spawn()
	b := w.Spawn()
	w.SetParent(a, b)
	// Forge a cycle behind SetParent's check; traversal must not trust
	// acyclicity.
	w.slots[b.index].parent = a

	var calls int
	w.Listen(a, EventEnter, func(ListenedEvent) Bubble { calls++; return BubbleUp })
	w.Listen(b, EventEnter, func(ListenedEvent) Bubble { calls++; return BubbleUp })

	frame(p, Hit{Entity: a, Depth: 1})

	if calls != 2 {
		t.Errorf("calls = %d, want 2; each listener runs once despite the cycle", calls)
	}
}

func TestListenerCannotReenterItself(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()

	// While the callback runs, its slot is checked out: a take from inside
	// must fail, so re-entry is structurally impossible.
	var reentered bool
	w.Listen(e, EventEnter, func(ListenedEvent) Bubble {
		if _, ok := w.takeCallback(e, EventEnter); ok {
			reentered = true
		}
		return BubbleUp
	})

	frame(p, Hit{Entity: e, Depth: 1})

	if reentered {
		t.Error("callback slot should be empty while the callback runs")
	}
}

func TestRelistenDuringDispatch(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()

	var calls []string
	w.Listen(e, EventEnter, func(ListenedEvent) Bubble {
		calls = append(calls, "old")
		w.Listen(e, EventEnter, func(ListenedEvent) Bubble {
			calls = append(calls, "new")
			return BubbleUp
		})
		return BubbleUp
	})

	frame(p, Hit{Entity: e, Depth: 1}) // Enter: old runs, swaps itself out
	frame(p)                           // Exit (no Enter listener fires)
	frame(p, Hit{Entity: e, Depth: 1}) // Enter again: replacement runs

	if len(calls) != 2 || calls[0] != "old" || calls[1] != "new" {
		t.Errorf("calls = %v, want [old new]", calls)
	}
}

func TestUnlistenDuringDispatch(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()

	var calls int
	w.Listen(e, EventEnter, func(ListenedEvent) Bubble {
		calls++
		w.Unlisten(e, EventEnter)
		return BubbleUp
	})

	frame(p, Hit{Entity: e, Depth: 1})
	frame(p)
	frame(p, Hit{Entity: e, Depth: 1})

	if calls != 1 {
		t.Errorf("calls = %d, want 1; the callback removed itself", calls)
	}
}

func TestStoreReceivesEveryEvent(t *testing.T) {
	w, p := newMousePicker()
	e := w.Spawn()

	var stored []EventKind
	p.SetStore(storeFunc(func(ev Event) { stored = append(stored, ev.Kind) }))

	clickOn(p, e)

	want := []EventKind{EventEnter, EventPress, EventRelease, EventClick}
	if !sameKinds(stored, want) {
		t.Errorf("store saw %v, want %v", stored, want)
	}
}

type storeFunc func(Event)

func (f storeFunc) EmitEvent(ev Event) { f(ev) }
