package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// HeadlessConfig controls the no-window host.
type HeadlessConfig struct {
	// Ticks raises a close request once this many frames were presented
	// (0 = run until cancelled).
	Ticks uint64

	// Snapshot, if set, is a PNG path the last presented frame is written to
	// when the surface closes.
	Snapshot string

	// SnapshotScale enlarges the snapshot by an integer factor (<= 1 keeps size).
	SnapshotScale int
}

type headlessHost struct {
	cfg HeadlessConfig
}

// NewHeadless returns a host whose surfaces live only in memory.
func NewHeadless(cfg HeadlessConfig) Host {
	return &headlessHost{cfg: cfg}
}

func (h *headlessHost) CreateSurface(cfg SurfaceConfig) (Surface, error) {
	s, err := newHostSurface(cfg)
	if err != nil {
		return nil, err
	}
	if h.cfg.Ticks > 0 {
		limit := h.cfg.Ticks
		s.fb.onPresent = func(n uint64) {
			if n == limit {
				s.post(EventCloseRequested)
			}
		}
	}
	if h.cfg.Snapshot != "" {
		path, scale := h.cfg.Snapshot, h.cfg.SnapshotScale
		s.onClose = func(s *hostSurface) error {
			return writeSnapshot(path, s.fb, scale)
		}
	}
	return s, nil
}

func writeSnapshot(path string, fb *hostFramebuffer, scale int) error {
	src := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	fb.snapshot(src.Pix)

	var img image.Image = src
	if scale > 1 {
		dst := image.NewRGBA(image.Rect(0, 0, fb.width*scale, fb.height*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
