package hal

import (
	"context"
	"fmt"
	"time"
)

// hostSurface is a framebuffer plus a buffered event queue. Both the window
// and the headless host hand these out.
type hostSurface struct {
	cfg    SurfaceConfig
	fb     *hostFramebuffer
	events chan Event

	onClose func(s *hostSurface) error
}

func newHostSurface(cfg SurfaceConfig) (*hostSurface, error) {
	if cfg.Size.X <= 0 || cfg.Size.Y <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", cfg.Size.X, cfg.Size.Y)
	}
	return &hostSurface{
		cfg:    cfg,
		fb:     newHostFramebuffer(cfg.Size.X, cfg.Size.Y),
		events: make(chan Event, 64),
	}, nil
}

func (s *hostSurface) Framebuffer() Framebuffer { return s.fb }

// post queues ev without blocking. Events are dropped while the queue is full.
func (s *hostSurface) post(ev Event) {
	select {
	case s.events <- ev:
	default:
	}
}

func (s *hostSurface) WaitEvent(ctx context.Context, deadline time.Time) Event {
	select {
	case ev := <-s.events:
		return ev
	case <-ctx.Done():
		return EventCloseRequested
	default:
	}

	d := time.Until(deadline)
	if d <= 0 {
		return EventNone
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case ev := <-s.events:
		return ev
	case <-ctx.Done():
		return EventCloseRequested
	case <-timer.C:
		return EventNone
	}
}

func (s *hostSurface) Close() error {
	if s.onClose != nil {
		return s.onClose(s)
	}
	return nil
}
