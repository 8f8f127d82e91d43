package sapling

import (
	"iter"
	"slices"
)

// SelectionSet maps entity IDs to entities and remembers insertion order.
// The exported API is read-only; EditorHook owns all mutation.
type SelectionSet struct {
	entries map[EntityID]Entity
	order   []EntityID
}

// Len returns the number of entities in the set.
func (s *SelectionSet) Len() int {
	return len(s.order)
}

// Has reports whether id is in the set.
func (s *SelectionSet) Has(id EntityID) bool {
	_, ok := s.entries[id]
	return ok
}

// Get returns the entity stored under id.
func (s *SelectionSet) Get(id EntityID) (Entity, bool) {
	e, ok := s.entries[id]
	return e, ok
}

// All yields entries in insertion order.
func (s *SelectionSet) All() iter.Seq2[EntityID, Entity] {
	return func(yield func(EntityID, Entity) bool) {
		for _, id := range s.order {
			if !yield(id, s.entries[id]) {
				return
			}
		}
	}
}

// IDs returns a copy of the IDs in insertion order.
func (s *SelectionSet) IDs() []EntityID {
	return slices.Clone(s.order)
}

// add inserts e and reports whether it was absent.
func (s *SelectionSet) add(e Entity) bool {
	id := e.ID()
	if s.entries == nil {
		s.entries = make(map[EntityID]Entity)
	}
	if _, ok := s.entries[id]; ok {
		return false
	}
	s.entries[id] = e
	s.order = append(s.order, id)
	return true
}

// remove deletes id and returns the entity it held.
func (s *SelectionSet) remove(id EntityID) (Entity, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	delete(s.entries, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return e, true
}

// snapshot returns the entities in insertion order, safe to iterate while
// the set is being mutated.
func (s *SelectionSet) snapshot() []Entity {
	out := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}
