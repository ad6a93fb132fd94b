package softgl

import (
	"shapes/shade"
	"shapes/xform"
)

// varying is what the vertex stage hands to the rasterizer for interpolation.
type varying struct {
	Pos    [3]float32
	Normal [3]float32
}

func lerp3(a, b, c [3]float32, w0, w1, w2 float32) [3]float32 {
	return [3]float32{
		w0*a[0] + w1*b[0] + w2*c[0],
		w0*a[1] + w1*b[1] + w2*c[1],
		w0*a[2] + w1*b[2] + w2*c[2],
	}
}

// vertexStage maps a local position (and the face normal, if any) to clip
// space plus varyings.
type vertexStage func(u *Uniforms, pos xform.Vec4, normal [3]float32) (xform.Vec4, varying)

// fragmentStage colors one fragment.
type fragmentStage func(u *Uniforms, v varying) shade.Color

var vertexStages = map[string]vertexStage{
	"position": func(u *Uniforms, pos xform.Vec4, _ [3]float32) (xform.Vec4, varying) {
		return u.Transform.Apply(pos), varying{Pos: [3]float32{pos.X, pos.Y, pos.Z}}
	},
	"position-normal": func(u *Uniforms, pos xform.Vec4, normal [3]float32) (xform.Vec4, varying) {
		return u.Transform.Apply(pos), varying{Pos: [3]float32{pos.X, pos.Y, pos.Z}, Normal: normal}
	},
}

var fragmentStages = map[string]fragmentStage{
	"gradient": func(_ *Uniforms, v varying) shade.Color {
		return shade.Gradient(v.Pos[0], v.Pos[1], v.Pos[2])
	},
	// Normal is interpolated but not read.
	"fixed": func(u *Uniforms, _ varying) shade.Color {
		return u.Color
	},
}
