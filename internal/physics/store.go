package physics

// BodyHandle is a stable reference to a body in a Scene. Handles stay valid
// across additions and removals of other bodies; a handle to a removed body
// resolves to nil, even if its slot has been reused.
type BodyHandle struct {
	index      uint32
	generation uint32
}

type bodySlot struct {
	body       Body
	generation uint32
	live       bool
}

// bodyStore is a slot arena with generation-tagged handles. Removed slots go
// on a free list and are reused with a bumped generation, so stale handles
// can never alias a new body.
type bodyStore struct {
	slots []bodySlot
	free  []uint32
}

func (s *bodyStore) add(b Body) BodyHandle {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		slot := &s.slots[idx]
		slot.body = b
		slot.live = true
		return BodyHandle{index: idx, generation: slot.generation}
	}
	s.slots = append(s.slots, bodySlot{body: b, live: true})
	return BodyHandle{index: uint32(len(s.slots) - 1)}
}

func (s *bodyStore) remove(h BodyHandle) bool {
	if s.get(h) == nil {
		return false
	}
	slot := &s.slots[h.index]
	slot.live = false
	slot.generation++
	slot.body = Body{}
	s.free = append(s.free, h.index)
	return true
}

func (s *bodyStore) get(h BodyHandle) *Body {
	if int(h.index) >= len(s.slots) {
		return nil
	}
	slot := &s.slots[h.index]
	if !slot.live || slot.generation != h.generation {
		return nil
	}
	return &slot.body
}

func (s *bodyStore) count() int {
	return len(s.slots) - len(s.free)
}

// forEach visits live bodies in ascending slot order.
func (s *bodyStore) forEach(fn func(BodyHandle, *Body)) {
	for i := range s.slots {
		slot := &s.slots[i]
		if !slot.live {
			continue
		}
		fn(BodyHandle{index: uint32(i), generation: slot.generation}, &slot.body)
	}
}
