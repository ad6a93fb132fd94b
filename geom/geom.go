// Package geom holds the static vertex, normal and index data of the shipped shapes.
//
// A Descriptor is built once at startup and never mutated afterwards. Vertex order is
// winding-significant; indices are grouped in triples, one triangle each.
package geom

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid geometry")

// Vertex is a position (or a face normal) in 2 or 3 dimensional space.
//
// Dim is 2 or 3. For 2D vertices Z is always 0.
type Vertex struct {
	X, Y, Z float32
	Dim     uint8
}

func V2(x, y float32) Vertex    { return Vertex{X: x, Y: y, Dim: 2} }
func V3(x, y, z float32) Vertex { return Vertex{X: x, Y: y, Z: z, Dim: 3} }

// Descriptor is the geometry of one renderable shape.
type Descriptor struct {
	Name     string
	Vertices []Vertex

	// Normals holds one entry per face, not per vertex. Optional.
	Normals []Vertex

	// Indices is a triangle list. When empty the vertices themselves form
	// a non-indexed triangle list.
	Indices []uint16
}

// Indexed reports whether d draws through an index buffer.
func (d *Descriptor) Indexed() bool { return len(d.Indices) > 0 }

// Dim returns the dimension shared by all vertices, or 0 if d has none.
func (d *Descriptor) Dim() int {
	if len(d.Vertices) == 0 {
		return 0
	}
	return int(d.Vertices[0].Dim)
}

// TriangleCount returns the number of triangles d draws.
func (d *Descriptor) TriangleCount() int {
	if d.Indexed() {
		return len(d.Indices) / 3
	}
	return len(d.Vertices) / 3
}

// Triangle returns the vertex positions of triangle i.
func (d *Descriptor) Triangle(i int) (a, b, c int) {
	if d.Indexed() {
		return int(d.Indices[3*i]), int(d.Indices[3*i+1]), int(d.Indices[3*i+2])
	}
	return 3 * i, 3*i + 1, 3*i + 2
}

// Validate checks the index buffer invariants: the index count is a multiple
// of 3 and every index refers to an existing vertex.
func (d *Descriptor) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalid)
	}
	if len(d.Vertices) == 0 {
		return fmt.Errorf("%w: %s: no vertices", ErrInvalid, d.Name)
	}
	dim := d.Vertices[0].Dim
	if dim != 2 && dim != 3 {
		return fmt.Errorf("%w: %s: vertex dimension %d", ErrInvalid, d.Name, dim)
	}
	for i, v := range d.Vertices {
		if v.Dim != dim {
			return fmt.Errorf("%w: %s: vertex %d has dimension %d, want %d", ErrInvalid, d.Name, i, v.Dim, dim)
		}
	}
	for i, n := range d.Normals {
		if n.Dim != 3 {
			return fmt.Errorf("%w: %s: normal %d has dimension %d, want 3", ErrInvalid, d.Name, i, n.Dim)
		}
	}
	if !d.Indexed() {
		if len(d.Vertices)%3 != 0 {
			return fmt.Errorf("%w: %s: %d vertices do not form a triangle list", ErrInvalid, d.Name, len(d.Vertices))
		}
		return nil
	}
	if len(d.Indices)%3 != 0 {
		return fmt.Errorf("%w: %s: index count %d is not a multiple of 3", ErrInvalid, d.Name, len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= len(d.Vertices) {
			return fmt.Errorf("%w: %s: index %d = %d out of range [0, %d)", ErrInvalid, d.Name, i, idx, len(d.Vertices))
		}
	}
	return nil
}
