package material

import "fmt"

// Handle identifies a material stored in an Arena
type Handle uint32

// Arena owns the materials of a scene. Primitives refer to them by Handle,
// so any number of primitives can share one material without sharing pointers.
type Arena struct {
	materials []Material
}

// NewArena creates an empty arena
func NewArena() *Arena {
	return &Arena{}
}

// Add stores m and returns its handle
func (a *Arena) Add(m Material) Handle {
	a.materials = append(a.materials, m)
	return Handle(len(a.materials) - 1)
}

// Get returns the material for h. It panics on a handle this arena did not issue.
func (a *Arena) Get(h Handle) Material {
	if !a.Valid(h) {
		panic(fmt.Sprintf("material: handle %d out of range (arena holds %d)", h, len(a.materials)))
	}
	return a.materials[h]
}

// Valid reports whether h refers to a material in the arena
func (a *Arena) Valid(h Handle) bool {
	return int(h) < len(a.materials) && a.materials[h] != nil
}

// Len returns the number of materials
func (a *Arena) Len() int {
	return len(a.materials)
}
