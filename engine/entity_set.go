package engine

import (
	"github.com/lixenwraith/gridcrawler/core"
)

// EntitySet is an insertion-ordered set of entities
// Iteration order is insertion order, removal preserves the order of the rest
type EntitySet struct {
	index    map[core.Entity]int
	entities []core.Entity
}

// NewEntitySet creates an empty set
func NewEntitySet() *EntitySet {
	return &EntitySet{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 16),
	}
}

// Add inserts e at the end, returns false if already present
func (s *EntitySet) Add(e core.Entity) bool {
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	return true
}

// Remove deletes e, returns false if absent
func (s *EntitySet) Remove(e core.Entity) bool {
	i, ok := s.index[e]
	if !ok {
		return false
	}
	delete(s.index, e)
	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
	return true
}

// Has reports membership
func (s *EntitySet) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Len returns the member count
func (s *EntitySet) Len() int {
	return len(s.entities)
}

// All returns a snapshot in insertion order, safe against mutation during iteration
func (s *EntitySet) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Clear empties the set
func (s *EntitySet) Clear() {
	clear(s.index)
	s.entities = s.entities[:0]
}
