package core

import "fmt"

// Entity identifies a level-scoped entity
// High 32 bits carry the registry generation, low 32 bits the index within it
type Entity uint64

// NoEntity is the zero handle, never issued by a registry
const NoEntity Entity = 0

// MakeEntity packs a generation and index into a handle
func MakeEntity(generation, index uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Generation returns the registry generation the entity was issued in
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Index returns the per-generation index
func (e Entity) Index() uint32 {
	return uint32(e)
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.Generation(), e.Index())
}
