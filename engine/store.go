package engine

import (
	"github.com/lixenwraith/gridcrawler/core"
)

// Store is a generic container for a specific component type T
// Entities iterate in insertion order so first-match scans are deterministic
// Not synchronized, all access happens on the tick goroutine
type Store[T any] struct {
	components map[core.Entity]T
	entities   *EntitySet
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   NewEntitySet(),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.entities.Add(e)
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// RemoveEntity deletes the entity's component
func (s *Store[T]) RemoveEntity(e core.Entity) {
	if _, ok := s.components[e]; ok {
		delete(s.components, e)
		s.entities.Remove(e)
	}
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns all entities with this component type in insertion order
func (s *Store[T]) GetAllEntities() []core.Entity {
	return s.entities.All()
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	return s.entities.Len()
}

// Clear removes all components
func (s *Store[T]) Clear() {
	clear(s.components)
	s.entities.Clear()
}
