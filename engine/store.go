package engine

import "github.com/lixenwraith/sugar-pop/core"

// Store is a generic container for a specific component type T
// Iteration follows insertion order
// Owned by the game loop, not safe for concurrent use
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity // Insertion-ordered entities that have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// RemoveEntity deletes a component from an entity, preserving order of the rest
func (s *Store[T]) RemoveEntity(e core.Entity) bool {
	if _, exists := s.components[e]; !exists {
		return false
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	return true
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// Each calls fn for every component in insertion order, stopping when fn returns false
// fn must not add or remove entities of this store
func (s *Store[T]) Each(fn func(core.Entity, T) bool) {
	for _, e := range s.entities {
		if !fn(e, s.components[e]) {
			return
		}
	}
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}

// RemoveBatch deletes multiple entities in a single pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.components) == 0 {
		return
	}

	toRemove := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			toRemove[e] = struct{}{}
			delete(s.components, e)
		}
	}
	if len(toRemove) == 0 {
		return
	}

	// Single pass compaction of entities slice
	writeIdx := 0
	for _, e := range s.entities {
		if _, remove := toRemove[e]; !remove {
			s.entities[writeIdx] = e
			writeIdx++
		}
	}
	s.entities = s.entities[:writeIdx]
}
