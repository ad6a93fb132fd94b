package app

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"shapes/geom"
	"shapes/shade"
	"shapes/xform"
)

// Variant is the fixed configuration of one shape: what to draw, how to
// color it, how big, and where.
type Variant struct {
	Name     string
	Geometry func() *geom.Descriptor
	Rule     shade.Rule

	// Color is the constant of the FixedColor rule.
	Color shade.Color
	Clear shade.Color

	Scale float32

	// Weight, when non-zero, is the homogeneous weight placed outside the
	// rotations. A weight equal to Scale cancels it on screen.
	Weight float32

	Title string
	Pos   image.Point
	Size  image.Point
}

// Projection returns the projection-equivalent matrix, or nil if v has none.
func (v Variant) Projection() *xform.Mat4 {
	if v.Weight == 0 {
		return nil
	}
	m := xform.HomogeneousWeight(v.Weight)
	return &m
}

var variants = map[string]Variant{
	"cube": {
		Name:     "cube",
		Geometry: geom.Cube,
		Rule:     shade.PositionGradient,
		Clear:    shade.RGB(0, 0, 0),
		Scale:    0.01,
		Weight:   0.01,
		Title:    "Shapes",
		Size:     image.Pt(1024, 768),
	},
	"colorcube": {
		Name:     "colorcube",
		Geometry: geom.Cube,
		Rule:     shade.FixedColor,
		Color:    shade.RGB(1.0, 0.6, 0.2),
		Clear:    shade.RGB(0, 0, 0),
		Scale:    0.6,
		Title:    "Shapes",
		Size:     image.Pt(768, 768),
	},
	"gradientcube": {
		Name:     "gradientcube",
		Geometry: geom.GradientCube,
		Rule:     shade.PositionGradient,
		Clear:    shade.RGB(0, 0, 0),
		Scale:    0.6,
		Title:    "Shapes",
		Size:     image.Pt(768, 768),
	},
	"triangle": {
		Name:     "triangle",
		Geometry: geom.Triangle,
		Rule:     shade.PositionGradient,
		Clear:    shade.RGB(0, 0, 0),
		Scale:    0.6,
		Title:    "Shapes",
		Size:     image.Pt(1024, 768),
	},
}

// Variants returns the names of the shipped variants, sorted.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupVariant returns the variant called name.
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (have %s)", name, strings.Join(Variants(), ", "))
	}
	return v, nil
}
