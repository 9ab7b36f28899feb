package ecs

import "fmt"

// Entity is a generational handle: the low 32 bits are the slot id and the
// high 32 bits the generation the slot had when the handle was issued.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String formats the handle as slot@generation.
func (e Entity) String() string {
	return fmt.Sprintf("%d@%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e > 0
}
