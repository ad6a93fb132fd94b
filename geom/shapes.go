package geom

// Cube returns the 8-vertex cube spanning [-1, 1] on every axis, with one
// normal per face.
func Cube() *Descriptor {
	return &Descriptor{
		Name: "cube",
		Vertices: []Vertex{
			V3(-1, -1, -1),
			V3(1, -1, -1),
			V3(1, 1, -1),
			V3(-1, 1, -1),
			V3(-1, -1, 1),
			V3(1, -1, 1),
			V3(1, 1, 1),
			V3(-1, 1, 1),
		},
		Normals: cubeNormals(),
		Indices: []uint16{
			0, 1, 3,
			3, 1, 2,
			1, 5, 2,
			2, 5, 6,
			5, 4, 6,
			6, 4, 7,
			4, 0, 7,
			7, 0, 3,
			3, 2, 7,
			7, 2, 6,
			4, 5, 0,
			0, 5, 1,
		},
	}
}

// GradientCube returns a cube with 4 unshared vertices per face, so each face
// interpolates its own corner positions.
func GradientCube() *Descriptor {
	// Corners of each face in counter-clockwise order seen from outside.
	faces := [6][4]Vertex{
		{V3(-1, -1, 1), V3(1, -1, 1), V3(1, 1, 1), V3(-1, 1, 1)},     // +Z
		{V3(1, -1, 1), V3(1, -1, -1), V3(1, 1, -1), V3(1, 1, 1)},     // +X
		{V3(1, -1, -1), V3(-1, -1, -1), V3(-1, 1, -1), V3(1, 1, -1)}, // -Z
		{V3(-1, -1, -1), V3(-1, -1, 1), V3(-1, 1, 1), V3(-1, 1, -1)}, // -X
		{V3(-1, 1, 1), V3(1, 1, 1), V3(1, 1, -1), V3(-1, 1, -1)},     // +Y
		{V3(-1, -1, -1), V3(1, -1, -1), V3(1, -1, 1), V3(-1, -1, 1)}, // -Y
	}
	d := &Descriptor{
		Name:     "gradientcube",
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}
	for _, f := range faces {
		base := uint16(len(d.Vertices))
		d.Vertices = append(d.Vertices, f[:]...)
		d.Indices = append(d.Indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}
	return d
}

// Triangle returns a single 2D triangle drawn without an index buffer.
func Triangle() *Descriptor {
	return &Descriptor{
		Name: "triangle",
		Vertices: []Vertex{
			V2(-0.5, -0.5),
			V2(0.0, 0.5),
			V2(0.5, -0.25),
		},
	}
}

func cubeNormals() []Vertex {
	return []Vertex{
		V3(0, 0, 1),
		V3(1, 0, 0),
		V3(0, 0, -1),
		V3(-1, 0, 0),
		V3(0, 1, 0),
		V3(0, -1, 0),
	}
}
