// Package scene provides the exported node graph: an append-only ordered
// collection of uniquely named meshes, serialized to the binary glTF (GLB)
// container.
package scene

import "floorwright/pkg/mesh"

// Node pairs a unique name with one placed mesh.
type Node struct {
	Name string
	Mesh *mesh.Mesh
}

// Scene is built once per reconstruction job and exported once. Node
// insertion order is preserved in the exported file.
type Scene struct {
	nodes []Node
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends a named mesh. Callers are responsible for name uniqueness.
func (s *Scene) Add(name string, m *mesh.Mesh) {
	s.nodes = append(s.nodes, Node{Name: name, Mesh: m})
}

// Nodes returns the nodes in insertion order.
func (s *Scene) Nodes() []Node {
	return s.nodes
}

// Len returns the number of nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}
