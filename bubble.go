package picket

// Bubble is a callback's verdict on further propagation.
type Bubble uint8

const (
	// BubbleUp lets the event continue to the next listening ancestor.
	BubbleUp Bubble = iota
	// BubbleBurst stops this one event from reaching further ancestors.
	// Other events in the same frame are unaffected.
	BubbleBurst
)

// Callback is a registered listener body. It receives the event together
// with the listening entity and decides whether bubbling continues.
type Callback func(ev ListenedEvent) Bubble

// graphNode is one entry of the per-frame listener graph: the checked-out
// callback of a listening entity plus the next listening ancestor above it,
// once known. Later events whose walk reaches this entity jump straight to
// next instead of re-walking the hierarchy.
type graphNode struct {
	callback Callback
	next     Entity
	hasNext  bool
}

// bubbleFrame is the per-frame dispatch context. It is built fresh for each
// frame that has events and discarded afterwards; an empty frame does no
// work. One listener graph is kept per event kind, since listeners are
// registered per kind.
type bubbleFrame struct {
	graphs  [numEventKinds]map[Entity]*graphNode
	visited map[Entity]bool
}

// dispatch bubbles every emitted event through the hierarchy, invoking
// registered callbacks from the target's nearest listening ancestor outward
// until one returns BubbleBurst or the root is reached. Checked-out
// callbacks are returned to their slots when the frame ends.
func (p *Picker) dispatch() {
	if len(p.events) == 0 {
		return
	}
	frame := bubbleFrame{visited: make(map[Entity]bool)}

	for i := range p.events {
		ev := p.events[i]
		for _, h := range p.sinks {
			h.fn(ev)
		}
		p.bubble(&frame, ev)
		if p.store != nil {
			p.store.EmitEvent(ev)
		}
		p.logEvent(ev)
	}

	// Return every checked-out callback to its owning slot.
	for kind := range frame.graphs {
		for entity, node := range frame.graphs[kind] {
			p.world.returnCallback(entity, EventKind(kind), node.callback)
		}
	}
	p.events = p.events[:0]
}

// bubble walks child-to-ancestor from the event target, extending the
// frame's listener graph as it goes, then runs the recorded callbacks in
// order. A stale target (despawned since the hit was recorded) is skipped
// silently; a dangling parent link prunes the walk at the lookup.
func (p *Picker) bubble(frame *bubbleFrame, ev Event) {
	graph := frame.graphs[ev.Kind]
	if graph == nil {
		graph = make(map[Entity]*graphNode)
		frame.graphs[ev.Kind] = graph
	}

	root, ok := p.buildPath(frame, graph, ev.Target, ev.Kind)
	if !ok {
		return // no listener anywhere on the path
	}

	// The visited set guards the dispatch walk too: parent links may mutate
	// between build and run, and the hierarchy is not trusted to be acyclic.
	clear(frame.visited)
	for node := root; ; {
		if frame.visited[node] {
			return
		}
		frame.visited[node] = true
		gn := graph[node]
		if gn == nil {
			return
		}
		verdict := gn.callback(ListenedEvent{Event: ev, Listener: node})
		if verdict == BubbleBurst || !gn.hasNext {
			return
		}
		node = gn.next
	}
}

// buildPath extends the per-kind listener graph with the chain of listening
// entities from target up to the hierarchy root, checking each callback out
// of its slot. It returns the target's nearest listening ancestor (the
// dispatch start), or ok=false when nothing along the path listens.
//
// An entity already present in the graph is reused: the walk links to it and
// jumps ahead along its recorded next hops rather than re-walking ancestors
// shared with an earlier event.
func (p *Picker) buildPath(frame *bubbleFrame, graph map[Entity]*graphNode, target Entity, kind EventKind) (Entity, bool) {
	clear(frame.visited)

	var root Entity
	found := false
	var prev *graphNode // deepest listening node waiting for its next hop

	this := target
	for {
		if frame.visited[this] {
			break // cycle: terminate rather than trust acyclicity
		}
		frame.visited[this] = true

		if gn, exists := graph[this]; exists {
			if !found {
				root = this
				found = true
			}
			if prev != nil {
				prev.next = this
				prev.hasNext = true
			}
			// Jump ahead through the already-resolved chain.
			cur := this
			for gn.hasNext {
				next := gn.next
				if frame.visited[next] {
					return root, found
				}
				frame.visited[next] = true
				ngn := graph[next]
				if ngn == nil {
					return root, found
				}
				cur, gn = next, ngn
			}
			prev = gn
			// Continue the plain walk above the end of the known chain.
			parent, has := p.world.Parent(cur)
			if !has {
				return root, found
			}
			this = parent
			continue
		}

		if p.world.slotFor(this) == nil {
			break // stale entity: prune the walk here
		}
		if cb, ok := p.world.takeCallback(this, kind); ok {
			gn := &graphNode{callback: cb}
			graph[this] = gn
			if prev != nil {
				prev.next = this
				prev.hasNext = true
			}
			if !found {
				root = this
				found = true
			}
			prev = gn
		}
		parent, has := p.world.Parent(this)
		if !has {
			break // reached the hierarchy root
		}
		this = parent
	}
	return root, found
}
