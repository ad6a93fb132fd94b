// Package xform composes the per-frame model transform from the animation phase.
//
// Matrices are column-major float32 (m[col*4+row]), the OpenGL layout. Everything
// here is pure: the same inputs always yield bit-identical results.
package xform

import "math"

// Vec4 is a homogeneous 4D vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a column-major 4x4 matrix.
type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a*b.
func Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

// MulV4 returns m*v.
func MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// RotateX rotates Y and Z about the X axis by rad (right-handed).
func RotateX(rad float32) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY rotates Z and X about the Y axis by rad (right-handed).
func RotateY(rad float32) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ rotates X and Y about the Z axis by rad (right-handed).
func RotateZ(rad float32) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale scales the three spatial axes by s. The homogeneous row is left alone.
func Scale(s float32) Mat4 {
	m := Identity()
	m[0] = s
	m[5] = s
	m[10] = s
	return m
}

// HomogeneousWeight returns diag(1, 1, 1, w).
//
// Placed outermost it scales clip-space w, which after the perspective divide
// enlarges the image by 1/w.
func HomogeneousWeight(w float32) Mat4 {
	m := Identity()
	m[15] = w
	return m
}

// sincos evaluates in single precision.
func sincos(rad float32) (c, s float32) {
	return float32(math.Cos(float64(rad))), float32(math.Sin(float64(rad)))
}
