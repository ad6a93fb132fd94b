package xform

// Set is the ordered list of matrices applied to every vertex of a frame.
//
// Order is outermost first: [projection?, RotateX, RotateY, RotateZ, Scale].
// Apply evaluates m1*(m2*(m3*(m4*v))), so Scale acts first and the projection
// last. Reordering changes the image.
type Set struct {
	Matrices []Mat4
}

// Compose returns the matrices for phase t and scale s. proj, when non-nil,
// is placed outside the rotations.
func Compose(t, s float32, proj *Mat4) Set {
	n := 4
	if proj != nil {
		n++
	}
	ms := make([]Mat4, 0, n)
	if proj != nil {
		ms = append(ms, *proj)
	}
	ms = append(ms, RotateX(t), RotateY(t), RotateZ(t), Scale(s))
	return Set{Matrices: ms}
}

// Apply transforms v by every matrix in the set, innermost first.
func (s Set) Apply(v Vec4) Vec4 {
	for i := len(s.Matrices) - 1; i >= 0; i-- {
		v = MulV4(s.Matrices[i], v)
	}
	return v
}

// Model returns the product of the set, outermost on the left.
func (s Set) Model() Mat4 {
	m := Identity()
	for _, n := range s.Matrices {
		m = Mul(m, n)
	}
	return m
}
