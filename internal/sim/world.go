package sim

// World is the body arena owned by a demo's tick driver. Bodies keep their
// spawn order; despawned bodies are skipped immediately and physically
// dropped by Compact.
type World struct {
	bodies []Body
	dead   []bool
	index  map[BodyID]int
	nextID BodyID
	live   int
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		index:  make(map[BodyID]int),
		nextID: 1,
	}
}

// Spawn adds a body and returns its ID.
func (w *World) Spawn(s Spec) BodyID {
	id := w.nextID
	w.nextID++

	w.bodies = append(w.bodies, Body{
		ID:     id,
		Kind:   s.Kind,
		Pos:    s.Pos,
		Vel:    s.Vel,
		Policy: s.Policy,
		half:   s.HalfExtent,
	})
	w.dead = append(w.dead, false)
	w.index[id] = len(w.bodies) - 1
	w.live++
	return id
}

// Despawn removes a body. Returns false if the ID is unknown or already gone.
func (w *World) Despawn(id BodyID) bool {
	i, ok := w.index[id]
	if !ok || w.dead[i] {
		return false
	}
	w.dead[i] = true
	delete(w.index, id)
	w.live--
	return true
}

// Get returns a pointer to a live body. The pointer is valid until the next
// Spawn or Compact.
func (w *World) Get(id BodyID) (*Body, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return &w.bodies[i], true
}

// Alive reports whether the ID refers to a live body.
func (w *World) Alive(id BodyID) bool {
	_, ok := w.index[id]
	return ok
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return w.live
}

// Count returns the number of live bodies of the given kind.
func (w *World) Count(k Kind) int {
	n := 0
	for i := range w.bodies {
		if !w.dead[i] && w.bodies[i].Kind == k {
			n++
		}
	}
	return n
}

// Each calls fn for every live body in spawn order. Bodies despawned during
// the walk are not visited afterwards. Returning false stops the walk.
func (w *World) Each(fn func(b *Body) bool) {
	for i := range w.bodies {
		if w.dead[i] {
			continue
		}
		if !fn(&w.bodies[i]) {
			return
		}
	}
}

// EachKind is Each restricted to one kind.
func (w *World) EachKind(k Kind, fn func(b *Body) bool) {
	w.Each(func(b *Body) bool {
		if b.Kind != k {
			return true
		}
		return fn(b)
	})
}

// Bodies returns a snapshot copy of all live bodies in spawn order.
func (w *World) Bodies() []Body {
	out := make([]Body, 0, w.live)
	w.Each(func(b *Body) bool {
		out = append(out, *b)
		return true
	})
	return out
}

// Compact drops despawned bodies from storage, preserving order.
func (w *World) Compact() {
	if w.live == len(w.bodies) {
		return
	}
	n := 0
	for i := range w.bodies {
		if w.dead[i] {
			continue
		}
		w.bodies[n] = w.bodies[i]
		w.index[w.bodies[n].ID] = n
		n++
	}
	clear(w.bodies[n:])
	w.bodies = w.bodies[:n]
	w.dead = w.dead[:n]
	clear(w.dead)
}

// Clear removes every body. IDs keep increasing.
func (w *World) Clear() {
	w.bodies = w.bodies[:0]
	w.dead = w.dead[:0]
	clear(w.index)
	w.live = 0
}
