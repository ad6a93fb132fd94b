package softgl

import (
	"shapes/hal"
	"shapes/xform"
)

func (d *Device) drawGeometry(f *Frame, g *geometry, p *program, u *Uniforms) {
	var clip [3]xform.Vec4
	var vary [3]varying

	for ti, tri := range g.tris {
		normal := faceNormal(g, ti)
		for k, vi := range tri {
			clip[k], vary[k] = p.vert(u, g.vertices[vi], normal)
		}

		// Trivial clip: a vertex at or behind w=0 drops the triangle.
		if clip[0].W <= 0 || clip[1].W <= 0 || clip[2].W <= 0 {
			continue
		}

		var sx, sy [3]int
		var sz [3]float32
		for k := range clip {
			ndc := clipToNDC(clip[k])
			sx[k], sy[k] = ndcToScreen(ndc, f.w, f.h)
			sz[k] = ndc.Z
		}
		d.fillTriangle(f, p, u, sx, sy, sz, vary)
	}
}

// faceNormal spreads the face normals evenly over the triangles; the cube
// has two triangles per face.
func faceNormal(g *geometry, tri int) [3]float32 {
	if len(g.normals) == 0 || len(g.tris) == 0 {
		return [3]float32{}
	}
	i := tri * len(g.normals) / len(g.tris)
	if i >= len(g.normals) {
		i = len(g.normals) - 1
	}
	return g.normals[i]
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p xform.Vec4) ndcPoint {
	invW := 1 / p.W
	return ndcPoint{X: p.X * invW, Y: p.Y * invW, Z: p.Z * invW}
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (d *Device) fillTriangle(f *Frame, p *program, u *Uniforms, sx, sy [3]int, sz [3]float32, vary [3]varying) {
	w, h := f.w, f.h
	minX, maxX := min(sx[0], sx[1], sx[2]), max(sx[0], sx[1], sx[2])
	minY, maxY := min(sy[0], sy[1], sy[2]), max(sy[0], sy[1], sy[2])
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, w-1), min(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area == 0 {
		return
	}
	// Both windings are drawn; there is no face culling.
	sign := 1
	if area < 0 {
		sign = -1
	}
	invArea := 1 / float32(area*sign)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := sign * edgeFn(sx[1], sy[1], sx[2], sy[2], x, y)
			w1 := sign * edgeFn(sx[2], sy[2], sx[0], sy[0], x, y)
			w2 := sign * edgeFn(sx[0], sy[0], sx[1], sy[1], x, y)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea

			z := a0*sz[0] + a1*sz[1] + a2*sz[2]
			if z < -1 || z > 1 {
				continue
			}
			if !d.depthTest(w, x, y, z) {
				continue
			}

			v := varying{
				Pos:    lerp3(vary[0].Pos, vary[1].Pos, vary[2].Pos, a0, a1, a2),
				Normal: lerp3(vary[0].Normal, vary[1].Normal, vary[2].Normal, a0, a1, a2),
			}
			r, g, b, _ := p.frag(u, v).RGBA8()
			hal.PutPixel(f.fb, x, y, r, g, b)
		}
	}
}

func (d *Device) depthTest(w, x, y int, z float32) bool {
	if !d.opts.Depth || d.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if idx < 0 || idx >= len(d.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	dz := z*0.5 + 0.5
	if dz >= d.depthBuf[idx] {
		return false
	}
	d.depthBuf[idx] = dz
	return true
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}
