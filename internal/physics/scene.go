package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// timeEpsilon is the smallest remaining interval worth simulating.
	timeEpsilon = 1e-8
	// minNudge advances time after a zero-TOI resolution so persistent
	// contacts cannot stall the substep loop.
	minNudge = 1e-4
	// defaultMaxSubsteps caps TOI iterations per Update. Pathological
	// scenes (many bodies in persistent overlap) would otherwise spend a
	// nudge iteration per contact per frame without bound.
	defaultMaxSubsteps = 64
)

// Scene owns a set of rigid bodies and advances them with an event-driven
// time-of-impact substep loop: each iteration finds the single earliest
// contact in the remaining window, advances every body to that instant,
// and resolves it. This avoids tunneling for fast bodies at the cost of
// not solving simultaneous multi-body contacts in one pass.
//
// A Scene is single-threaded: Update must not run concurrently with body
// additions or removals, and CollisionPoint handles are only valid until
// the body list next changes.
type Scene struct {
	gravity     rl.Vector3
	bodies      bodyStore
	maxSubsteps int
}

// NewScene returns an empty scene with downward gravity.
func NewScene() *Scene {
	return &Scene{
		gravity:     rl.Vector3{Y: -9.8},
		maxSubsteps: defaultMaxSubsteps,
	}
}

// SetMaxSubsteps changes the per-Update TOI iteration ceiling. Values
// below 1 reset it to the default.
func (s *Scene) SetMaxSubsteps(n int) {
	if n < 1 {
		n = defaultMaxSubsteps
	}
	s.maxSubsteps = n
}

// SetGravity sets the global gravity vector.
func (s *Scene) SetGravity(g rl.Vector3) {
	s.gravity = g
}

// Gravity returns the global gravity vector.
func (s *Scene) Gravity() rl.Vector3 {
	return s.gravity
}

// AddBody adds a body and returns a stable handle to it.
func (s *Scene) AddBody(b Body) BodyHandle {
	return s.bodies.add(b)
}

// RemoveBody removes the body behind the handle. Returns false for stale
// handles. Must not be called during Update.
func (s *Scene) RemoveBody(h BodyHandle) bool {
	return s.bodies.remove(h)
}

// Body resolves a handle, or nil if the handle is stale.
func (s *Scene) Body(h BodyHandle) *Body {
	return s.bodies.get(h)
}

// BodyCount returns the number of live bodies.
func (s *Scene) BodyCount() int {
	return s.bodies.count()
}

// ForEachBody visits live bodies in storage order. Intended for renderers
// and debug readers; the callback must not add or remove bodies.
func (s *Scene) ForEachBody(fn func(BodyHandle, *Body)) {
	s.bodies.forEach(fn)
}

// Update advances the simulation by deltaTime seconds.
//
// Each iteration scans all unordered pairs with at least one movable body
// for the earliest time of impact within the remaining window. If none is
// found the whole window is integrated and the step finishes. Otherwise
// bodies advance to the TOI, the contact is resolved, and the loop repeats
// on the remainder. A zero TOI (bodies already overlapping) resolves in
// place and then advances by a minimal nudge so the loop terminates. When
// the substep ceiling is reached the rest of the window is integrated
// without further contact checks, so no body ever loses frame time.
//
// Pairs are scanned in ascending storage order and only a strictly earlier
// TOI replaces the current candidate, so equal-TOI ties always resolve the
// lowest-index pair first and stepping is deterministic.
func (s *Scene) Update(deltaTime float32) {
	remaining := deltaTime

	for iter := 0; remaining > timeEpsilon; iter++ {
		if iter >= s.maxSubsteps {
			// Out of iterations: integrate the rest of the frame in one
			// go so bodies away from the contact pile-up still see full
			// gravity and motion. Residual penetration is left for the
			// next frame's zero-TOI resolution.
			s.advance(remaining)
			return
		}
		earliest, found := s.earliestContact(remaining)

		if !found {
			// Nothing left to hit: integrate out the frame.
			s.advance(remaining)
			return
		}

		toi := earliest.ImpactTime
		if toi > 0 {
			s.advance(toi)
			remaining -= toi
		}

		s.resolveContact(&earliest)

		if toi <= 0 {
			// Zero-time contact: resolution alone does not consume time,
			// so nudge forward to escape repeated immediate contacts.
			nudge := math32.Min(minNudge, remaining)
			if nudge <= 0 {
				return
			}
			s.advance(nudge)
			remaining -= nudge
		}
	}
}

// earliestContact scans every unordered pair for the minimum TOI within
// the window. Pairs of two immovable bodies are skipped.
func (s *Scene) earliestContact(window float32) (CollisionPoint, bool) {
	var best CollisionPoint
	bestTime := window
	found := false

	n := len(s.bodies.slots)
	for i := 0; i < n; i++ {
		slotA := &s.bodies.slots[i]
		if !slotA.live {
			continue
		}
		ha := BodyHandle{index: uint32(i), generation: slotA.generation}
		for j := i + 1; j < n; j++ {
			slotB := &s.bodies.slots[j]
			if !slotB.live {
				continue
			}
			if slotA.body.InvMass == 0 && slotB.body.InvMass == 0 {
				continue
			}
			hb := BodyHandle{index: uint32(j), generation: slotB.generation}
			if cp, ok := Intersect(ha, &slotA.body, hb, &slotB.body, window); ok {
				if cp.ImpactTime < bestTime || !found {
					bestTime = cp.ImpactTime
					best = cp
					found = true
				}
			}
		}
	}

	return best, found
}

// advance applies gravity as an impulse over dt and integrates every
// body's position by its velocity.
func (s *Scene) advance(dt float32) {
	s.bodies.forEach(func(_ BodyHandle, b *Body) {
		if b.InvMass != 0 {
			mass := 1 / b.InvMass
			b.ApplyLinearImpulse(rl.Vector3Scale(s.gravity, mass*dt))
		}
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.LinearVelocity, dt))
	})
}
