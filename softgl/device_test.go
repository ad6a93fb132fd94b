package softgl

import (
	"errors"
	"image"
	"testing"

	"shapes/geom"
	"shapes/hal"
	"shapes/shade"
	"shapes/xform"
)

type testRig struct {
	d  *Device
	s  hal.Surface
	fb hal.Framebuffer
}

func newRig(t *testing.T, opts Options) *testRig {
	t.Helper()
	d := NewDevice(hal.NewHeadless(hal.HeadlessConfig{}), opts)
	s, err := d.CreateSurface("test", image.Pt(0, 0), image.Pt(64, 64))
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}
	return &testRig{d: d, s: s, fb: s.Framebuffer()}
}

func (r *testRig) program(t *testing.T, rule shade.Rule) ProgramHandle {
	t.Helper()
	src, err := rule.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	p, err := r.d.CompileShader(src)
	if err != nil {
		t.Fatalf("CompileShader: %v", err)
	}
	return p
}

func (r *testRig) geometry(t *testing.T, desc *geom.Descriptor) GeometryHandle {
	t.Helper()
	g, err := r.d.UploadGeometry(desc)
	if err != nil {
		t.Fatalf("UploadGeometry: %v", err)
	}
	return g
}

func (r *testRig) frame(t *testing.T) *Frame {
	t.Helper()
	f, err := r.d.BeginFrame(r.s)
	if err != nil {
		t.Fatalf("BeginFrame: %v", err)
	}
	return f
}

func TestUploadRejectsInvalid(t *testing.T) {
	r := newRig(t, Options{})
	_, err := r.d.UploadGeometry(&geom.Descriptor{
		Name:     "bad",
		Vertices: []geom.Vertex{geom.V3(0, 0, 0)},
		Indices:  []uint16{0, 0, 1},
	})
	if !errors.Is(err, geom.ErrInvalid) {
		t.Fatalf("UploadGeometry() = %v, want ErrInvalid", err)
	}
}

func TestCompileUnknownStage(t *testing.T) {
	r := newRig(t, Options{})
	tests := []shade.Source{
		{Vertex: "nope", Fragment: "gradient"},
		{Vertex: "position", Fragment: "nope"},
	}
	for _, src := range tests {
		if _, err := r.d.CompileShader(src); !errors.Is(err, ErrCompile) {
			t.Fatalf("CompileShader(%+v) = %v, want ErrCompile", src, err)
		}
	}
}

func TestDrawInvalidHandle(t *testing.T) {
	r := newRig(t, Options{})
	g := r.geometry(t, geom.Triangle())
	p := r.program(t, shade.PositionGradient)
	f := r.frame(t)
	u := Uniforms{Transform: xform.Compose(0, 1, nil)}
	if err := f.Draw(g+1, p, u); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("Draw(bad geometry) = %v, want ErrInvalidHandle", err)
	}
	if err := f.Draw(g, p+7, u); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("Draw(bad program) = %v, want ErrInvalidHandle", err)
	}
	if err := f.Draw(-1, p, u); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("Draw(-1) = %v, want ErrInvalidHandle", err)
	}
}

func TestFrameUseAfterPresent(t *testing.T) {
	r := newRig(t, Options{})
	g := r.geometry(t, geom.Triangle())
	p := r.program(t, shade.PositionGradient)
	f := r.frame(t)
	if err := f.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if err := f.Draw(g, p, Uniforms{}); !errors.Is(err, ErrFrame) {
		t.Fatalf("Draw after Present = %v, want ErrFrame", err)
	}
	if err := f.Present(); !errors.Is(err, ErrFrame) {
		t.Fatalf("second Present = %v, want ErrFrame", err)
	}
}

func TestBeginFrameNilSurface(t *testing.T) {
	r := newRig(t, Options{})
	if _, err := r.d.BeginFrame(nil); !errors.Is(err, ErrFrame) {
		t.Fatalf("BeginFrame(nil) = %v, want ErrFrame", err)
	}
}

func TestGradientTriangle(t *testing.T) {
	r := newRig(t, Options{})
	g := r.geometry(t, geom.Triangle())
	p := r.program(t, shade.PositionGradient)
	f := r.frame(t)
	f.Clear(shade.RGB(0.2, 0.2, 0.2))
	if err := f.Draw(g, p, Uniforms{Transform: xform.Compose(0, 1, nil)}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// ndc (0, 0.3) lies inside the triangle, near its top vertex.
	red, green, blue, _ := hal.PixelAt(r.fb, 32, 22)
	if red > 16 || green < 60 || green > 95 || blue != 0 {
		t.Fatalf("pixel(32,22) = %d %d %d, want about 0 77 0", red, green, blue)
	}
	red, green, blue, _ = hal.PixelAt(r.fb, 0, 0)
	if red != 51 || green != 51 || blue != 51 {
		t.Fatalf("pixel(0,0) = %d %d %d, want clear color 51 51 51", red, green, blue)
	}
}

func TestFixedColorCube(t *testing.T) {
	r := newRig(t, Options{})
	g := r.geometry(t, geom.Cube())
	p := r.program(t, shade.FixedColor)
	f := r.frame(t)
	f.Clear(shade.RGB(0, 0, 0))
	u := Uniforms{Transform: xform.Compose(0, 0.6, nil), Color: shade.RGB(1, 0.5, 0)}
	if err := f.Draw(g, p, u); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	red, green, blue, _ := hal.PixelAt(r.fb, 32, 32)
	if red != 255 || green != 128 || blue != 0 {
		t.Fatalf("pixel(32,32) = %d %d %d, want 255 128 0", red, green, blue)
	}
	red, green, blue, _ = hal.PixelAt(r.fb, 2, 2)
	if red != 0 || green != 0 || blue != 0 {
		t.Fatalf("pixel(2,2) = %d %d %d, want 0 0 0", red, green, blue)
	}
}

func TestBehindClipDropped(t *testing.T) {
	r := newRig(t, Options{})
	g := r.geometry(t, geom.Cube())
	p := r.program(t, shade.FixedColor)
	f := r.frame(t)
	f.Clear(shade.RGB(0, 0, 0))
	w := xform.HomogeneousWeight(-1)
	u := Uniforms{Transform: xform.Compose(0.4, 0.6, &w), Color: shade.RGB(1, 1, 1)}
	if err := f.Draw(g, p, u); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if red, _, _, _ := hal.PixelAt(r.fb, x, y); red != 0 {
				t.Fatalf("pixel(%d,%d) drawn with w < 0", x, y)
			}
		}
	}
}

func quad(z float32) *geom.Descriptor {
	return &geom.Descriptor{
		Name: "quad",
		Vertices: []geom.Vertex{
			geom.V3(-0.5, -0.5, z), geom.V3(0.5, -0.5, z), geom.V3(0.5, 0.5, z),
			geom.V3(0.5, 0.5, z), geom.V3(-0.5, 0.5, z), geom.V3(-0.5, -0.5, z),
		},
	}
}

func TestDepthTest(t *testing.T) {
	for _, depth := range []bool{false, true} {
		r := newRig(t, Options{Depth: depth})
		near := r.geometry(t, quad(-0.5))
		far := r.geometry(t, quad(0.5))
		p := r.program(t, shade.FixedColor)
		f := r.frame(t)
		f.Clear(shade.RGB(0, 0, 0))
		id := xform.Compose(0, 1, nil)
		if err := f.Draw(near, p, Uniforms{Transform: id, Color: shade.RGB(1, 0, 0)}); err != nil {
			t.Fatalf("Draw near: %v", err)
		}
		if err := f.Draw(far, p, Uniforms{Transform: id, Color: shade.RGB(0, 0, 1)}); err != nil {
			t.Fatalf("Draw far: %v", err)
		}
		red, _, blue, _ := hal.PixelAt(r.fb, 32, 32)
		if depth && (red != 255 || blue != 0) {
			t.Fatalf("depth on: pixel = %d _ %d, want near (red)", red, blue)
		}
		if !depth && (red != 0 || blue != 255) {
			t.Fatalf("depth off: pixel = %d _ %d, want last drawn (blue)", red, blue)
		}
	}
}

func TestOutsideClipVolumeDiscarded(t *testing.T) {
	r := newRig(t, Options{})
	g := r.geometry(t, quad(1.5))
	p := r.program(t, shade.FixedColor)
	f := r.frame(t)
	f.Clear(shade.RGB(0, 0, 0))
	if err := f.Draw(g, p, Uniforms{Transform: xform.Compose(0, 1, nil), Color: shade.RGB(1, 1, 1)}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if red, _, _, _ := hal.PixelAt(r.fb, 32, 32); red != 0 {
		t.Fatalf("pixel(32,32) red = %d, want 0 (z > 1)", red)
	}
}
