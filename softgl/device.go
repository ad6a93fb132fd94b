// Package softgl is a small software rendering backend.
//
// It exposes the usual device life cycle: create a surface, upload geometry,
// compile a program, then per frame begin, clear, draw and present. Geometry
// and programs are referred to by handles. Everything runs on the caller's
// goroutine and draws into the surface's framebuffer.
//
// Pipeline (fixed):
//
//	Vertex stage → Clip (w <= 0) → Divide → Viewport → Rasterization → Fragment stage.
package softgl

import (
	"errors"
	"fmt"
	"image"

	"shapes/geom"
	"shapes/hal"
	"shapes/shade"
	"shapes/xform"
)

var (
	ErrCompile       = errors.New("shader compile failed")
	ErrInvalidHandle = errors.New("invalid handle")
	ErrFrame         = errors.New("frame not acquired")
)

// GeometryHandle refers to geometry uploaded with UploadGeometry.
type GeometryHandle int

// ProgramHandle refers to a program built with CompileShader.
type ProgramHandle int

// Uniforms are the per-draw program inputs.
type Uniforms struct {
	Transform xform.Set
	Color     shade.Color
}

// Options configures a Device.
type Options struct {
	// Depth enables a less-than depth test. Off by default: triangles drawn
	// later overwrite earlier ones.
	Depth bool
}

type geometry struct {
	name     string
	vertices []xform.Vec4
	normals  [][3]float32
	tris     [][3]int
}

type program struct {
	src  shade.Source
	vert vertexStage
	frag fragmentStage
}

// Device owns uploaded geometry, compiled programs and the depth buffer.
// It is not safe for concurrent use.
type Device struct {
	host hal.Host
	opts Options

	geoms []*geometry
	progs []*program

	depthBuf []float32
}

// NewDevice creates a device presenting through host.
func NewDevice(host hal.Host, opts Options) *Device {
	return &Device{host: host, opts: opts}
}

// CreateSurface creates the surface frames are drawn on.
func (d *Device) CreateSurface(title string, pos, size image.Point) (hal.Surface, error) {
	if d.host == nil {
		return nil, fmt.Errorf("create surface: no host")
	}
	s, err := d.host.CreateSurface(hal.SurfaceConfig{Title: title, Pos: pos, Size: size})
	if err != nil {
		return nil, fmt.Errorf("create surface: %w", err)
	}
	Logger().Info("softgl: surface created", "title", title, "width", size.X, "height", size.Y)
	return s, nil
}

// UploadGeometry validates desc and copies it into the device.
func (d *Device) UploadGeometry(desc *geom.Descriptor) (GeometryHandle, error) {
	if err := desc.Validate(); err != nil {
		return -1, fmt.Errorf("upload geometry: %w", err)
	}
	g := &geometry{
		name:     desc.Name,
		vertices: make([]xform.Vec4, len(desc.Vertices)),
		normals:  make([][3]float32, len(desc.Normals)),
		tris:     make([][3]int, desc.TriangleCount()),
	}
	for i, v := range desc.Vertices {
		g.vertices[i] = xform.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
	}
	for i, n := range desc.Normals {
		g.normals[i] = [3]float32{n.X, n.Y, n.Z}
	}
	for i := range g.tris {
		a, b, c := desc.Triangle(i)
		g.tris[i] = [3]int{a, b, c}
	}
	d.geoms = append(d.geoms, g)
	Logger().Debug("softgl: geometry uploaded", "name", g.name, "vertices", len(g.vertices), "triangles", len(g.tris), "normals", len(g.normals))
	return GeometryHandle(len(d.geoms) - 1), nil
}

// CompileShader resolves the stages named by src.
func (d *Device) CompileShader(src shade.Source) (ProgramHandle, error) {
	vert, ok := vertexStages[src.Vertex]
	if !ok {
		return -1, fmt.Errorf("%w: unknown vertex stage %q", ErrCompile, src.Vertex)
	}
	frag, ok := fragmentStages[src.Fragment]
	if !ok {
		return -1, fmt.Errorf("%w: unknown fragment stage %q", ErrCompile, src.Fragment)
	}
	d.progs = append(d.progs, &program{src: src, vert: vert, frag: frag})
	Logger().Debug("softgl: program compiled", "vertex", src.Vertex, "fragment", src.Fragment)
	return ProgramHandle(len(d.progs) - 1), nil
}

func (d *Device) geometry(h GeometryHandle) (*geometry, error) {
	if h < 0 || int(h) >= len(d.geoms) {
		return nil, fmt.Errorf("%w: geometry %d", ErrInvalidHandle, h)
	}
	return d.geoms[h], nil
}

func (d *Device) program(h ProgramHandle) (*program, error) {
	if h < 0 || int(h) >= len(d.progs) {
		return nil, fmt.Errorf("%w: program %d", ErrInvalidHandle, h)
	}
	return d.progs[h], nil
}

// BeginFrame acquires the surface's framebuffer for one frame.
func (d *Device) BeginFrame(s hal.Surface) (*Frame, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrFrame)
	}
	fb := s.Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("%w: surface has no framebuffer", ErrFrame)
	}
	if fb.Format() != hal.PixelFormatRGBA8888 {
		return nil, fmt.Errorf("%w: unsupported pixel format %d", ErrFrame, fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty framebuffer %dx%d", ErrFrame, w, h)
	}
	if d.opts.Depth {
		if cap(d.depthBuf) < w*h {
			d.depthBuf = make([]float32, w*h)
		}
		d.depthBuf = d.depthBuf[:w*h]
		for i := range d.depthBuf {
			d.depthBuf[i] = 1
		}
	}
	return &Frame{d: d, fb: fb, w: w, h: h}, nil
}

// Frame is one acquired framebuffer. It is finished by Present.
type Frame struct {
	d    *Device
	fb   hal.Framebuffer
	w, h int
	done bool
}

// Clear fills the frame with c.
func (f *Frame) Clear(c shade.Color) {
	if f.done {
		return
	}
	r, g, b, _ := c.RGBA8()
	f.fb.ClearRGB(r, g, b)
}

// Draw rasterizes geometry gh with program ph.
func (f *Frame) Draw(gh GeometryHandle, ph ProgramHandle, u Uniforms) error {
	if f.done {
		return fmt.Errorf("%w: draw after present", ErrFrame)
	}
	g, err := f.d.geometry(gh)
	if err != nil {
		return err
	}
	p, err := f.d.program(ph)
	if err != nil {
		return err
	}
	f.d.drawGeometry(f, g, p, &u)
	return nil
}

// Present publishes the frame. The frame cannot be used afterwards.
func (f *Frame) Present() error {
	if f.done {
		return fmt.Errorf("%w: already presented", ErrFrame)
	}
	f.done = true
	if err := f.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
