package picket

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Hit is a single candidate reported by a backend for one pointer in one
// frame. Hits are owned by the aggregator for the frame's lifetime only and
// are never persisted across frames.
//
// Depth is the distance from the pointer into the screen; it only needs to
// be self-consistent with other hits in the same [Layer]. Position and
// Normal are the surface point and normal in world space, when the backend
// can provide them. CameraOrder ranks hits from different cameras within a
// layer: hits from a higher-order camera resolve first.
type Hit struct {
	Entity      Entity
	Depth       float32
	Position    *mgl32.Vec3
	Normal      *mgl32.Vec3
	CameraOrder int
}

// pointerHits is the per-pointer multiset of hits gathered during the
// current frame. The backing array is reused across frames.
type pointerHits struct {
	hits []Hit
}

func (ph *pointerHits) reset() {
	ph.hits = ph.hits[:0]
}

// Submit records a hit candidate for the pointer. Backends call this any
// number of times per frame, before [Picker.Update].
//
// Backends MUST submit every candidate under the pointer, not only the
// nearest: pass-through resolution is done solely by the focus resolver, and
// a backend that reports only its closest hit would silently hide entities
// behind a FocusPass surface. Backends must also never submit entities whose
// pickable flag is disabled (see [World.SetPickable]).
//
// Returns false if the hit was rejected: a non-finite or negative depth, an
// unknown pointer, or a pointer with no active location this frame.
// Rejection drops only this one hit.
func (p *Picker) Submit(id PointerID, hit Hit) bool {
	d := float64(hit.Depth)
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		p.logRejectedHit(id, hit, "bad depth")
		return false
	}
	ps, ok := p.pointers[id]
	if !ok || !ps.hasLocation || ps.despawned {
		p.logRejectedHit(id, hit, "pointer has no active location")
		return false
	}
	ph, ok := p.hits[id]
	if !ok {
		ph = &pointerHits{}
		p.hits[id] = ph
	}
	ph.hits = append(ph.hits, hit)
	return true
}

// clearHits empties every per-pointer multiset while keeping the backing
// storage for the next frame.
func (p *Picker) clearHits() {
	for _, ph := range p.hits {
		ph.reset()
	}
}
