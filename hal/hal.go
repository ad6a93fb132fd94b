// Package hal is the contact point between the viewer and the host: a pixel
// surface to present frames on and the event stream that can close it.
package hal

import (
	"context"
	"errors"
	"image"
	"time"
)

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, byte order R, G, B, A.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Buffer is the back buffer. Present publishes its contents as the visible frame.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Event is what wakes a waiting frame loop early.
type Event uint8

const (
	// EventNone means the wait ended because the deadline passed.
	EventNone Event = iota
	// EventCloseRequested asks the loop to stop. It is the only event acted on.
	EventCloseRequested
	// EventOther is any other input. It is ignored.
	EventOther
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventCloseRequested:
		return "close-requested"
	case EventOther:
		return "other"
	}
	return "unknown"
}

// Surface is a presentable framebuffer together with its event source.
type Surface interface {
	Framebuffer() Framebuffer

	// WaitEvent blocks until an event arrives or deadline passes, whichever is
	// first. It returns EventNone on timeout. A cancelled ctx is reported as
	// EventCloseRequested.
	WaitEvent(ctx context.Context, deadline time.Time) Event

	Close() error
}

// SurfaceConfig describes the surface to create.
type SurfaceConfig struct {
	Title string
	Pos   image.Point
	Size  image.Point
}

// Host creates surfaces.
type Host interface {
	CreateSurface(cfg SurfaceConfig) (Surface, error)
}
