package core

// Entity is an opaque identifier issued by the world
// Zero is never issued and means "no entity"
type Entity uint64

// None is the zero entity
const None Entity = 0

// Valid reports whether e refers to an issued entity
func (e Entity) Valid() bool {
	return e != None
}
