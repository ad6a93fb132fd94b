//go:build cgo

package hal

import (
	"errors"
	"sync"

	"shapes/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window and calls run with a host whose surfaces
// are shown in it. run executes on its own goroutine; the window stays on the
// calling goroutine, which must be the main one. RunWindow blocks until run
// returns and reports run's error.
func RunWindow(run func(Host) error) error {
	g := &hostGame{done: make(chan error, 1)}

	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowTitle("Shapes (" + buildinfo.Short() + ")")
	ebiten.SetTPS(60)

	go func() { g.done <- run(g) }()

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if err == nil {
		err = g.err
	}
	return err
}

type hostGame struct {
	mu  sync.Mutex
	s   *hostSurface
	img *ebiten.Image
	pix []byte

	done chan error
	err  error

	closeSent bool
}

func (g *hostGame) CreateSurface(cfg SurfaceConfig) (Surface, error) {
	s, err := newHostSurface(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Size.X, cfg.Size.Y)
	ebiten.SetWindowPosition(cfg.Pos.X, cfg.Pos.Y)

	g.mu.Lock()
	g.s = s
	g.mu.Unlock()
	return s, nil
}

func (g *hostGame) surface() *hostSurface {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.s
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		if err != nil {
			g.err = err
			return err
		}
		return ebiten.Termination
	default:
	}

	s := g.surface()
	if s == nil {
		return nil
	}
	if ebiten.IsWindowBeingClosed() && !g.closeSent {
		g.closeSent = true
		s.post(EventCloseRequested)
	}
	pollInput(s.post)
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	s := g.surface()
	if s == nil {
		return
	}
	fb := s.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.width, fb.height)
		g.pix = make([]byte, len(fb.front))
	}

	// Alpha is always opaque, so the copy is already premultiplied.
	fb.snapshot(g.pix)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s := g.surface(); s != nil {
		return s.fb.width, s.fb.height
	}
	return outsideWidth, outsideHeight
}
