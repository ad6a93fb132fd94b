// Package app drives the shape viewer: it resolves a variant, owns the
// animation phase and runs the frame loop against a hal.Host.
package app

import (
	"context"
	"fmt"
	"image"

	"shapes/hal"
	"shapes/internal/buildinfo"
	"shapes/internal/config"
	"shapes/softgl"
)

// Resolve looks up cfg's variant and applies cfg's overrides to it.
func Resolve(cfg config.Config) (Variant, error) {
	v, err := LookupVariant(cfg.Variant)
	if err != nil {
		return Variant{}, err
	}
	if cfg.Scale != 0 {
		v.Scale = cfg.Scale
		if v.Weight != 0 {
			// Keep the weight paired with the scale so the shape keeps its size
			// ratio to the surface.
			v.Weight = cfg.Scale
		}
	}
	w := cfg.Window
	if w.Title != "" {
		v.Title = w.Title
	}
	if w.X != nil {
		v.Pos.X = *w.X
	}
	if w.Y != nil {
		v.Pos.Y = *w.Y
	}
	if w.Width > 0 {
		v.Size.X = w.Width
	}
	if w.Height > 0 {
		v.Size.Y = w.Height
	}
	if v.Size.X <= 0 || v.Size.Y <= 0 {
		return Variant{}, fmt.Errorf("variant %q: invalid surface size %v", v.Name, v.Size)
	}
	return v, nil
}

// Run resolves the configured variant and drives it on host until a close
// request. It returns nil on a normal close.
func Run(ctx context.Context, host hal.Host, cfg config.Config) error {
	v, err := Resolve(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}
	Logger().Info("starting", "build", buildinfo.String(), "variant", v.Name,
		"size", image.Rectangle{Min: v.Pos, Max: v.Pos.Add(v.Size)}.String())

	dev := softgl.NewDevice(host, softgl.Options{Depth: cfg.Depth})
	d := NewDriver(dev, v, Options{
		Interval: cfg.FrameInterval(),
		HUD:      cfg.HUD,
	})
	return d.Run(ctx)
}
