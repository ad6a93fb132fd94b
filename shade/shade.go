// Package shade defines how fragment colors are derived for a shape.
package shade

import (
	"fmt"
	"strings"
)

// Rule selects the fragment coloring policy. It is fixed for the lifetime of a run.
type Rule uint8

const (
	// PositionGradient colors a fragment with its local position.
	PositionGradient Rule = iota
	// FixedColor paints every fragment with one constant color.
	FixedColor
)

func (r Rule) String() string {
	switch r {
	case PositionGradient:
		return "position-gradient"
	case FixedColor:
		return "fixed-color"
	default:
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
}

// ParseRule is the inverse of Rule.String.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "position-gradient", "gradient":
		return PositionGradient, nil
	case "fixed-color", "fixed":
		return FixedColor, nil
	}
	return 0, fmt.Errorf("unknown shading rule %q", s)
}

// Color is a linear RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

func RGB(r, g, b float32) Color { return Color{R: r, G: g, B: b, A: 1} }

// RGBA8 converts c to 8-bit channels, clamping out-of-range values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Gradient returns the PositionGradient color of a local position. Components
// outside [0, 1] are clamped, as a GL color attachment does for vec4(pos, 1.0).
func Gradient(x, y, z float32) Color {
	return Color{R: clamp01(x), G: clamp01(y), B: clamp01(z), A: 1}
}

// Source names the vertex and fragment stages of a shading program.
type Source struct {
	Vertex   string
	Fragment string
}

// Sources is the static program table, one entry per rule.
var Sources = map[Rule]Source{
	PositionGradient: {Vertex: "position", Fragment: "gradient"},
	FixedColor:       {Vertex: "position-normal", Fragment: "fixed"},
}

// Source returns the program source pair for r.
func (r Rule) Source() (Source, error) {
	src, ok := Sources[r]
	if !ok {
		return Source{}, fmt.Errorf("no program for shading rule %v", r)
	}
	return src, nil
}
