package app

import (
	"image"
	"strings"
	"testing"

	"shapes/internal/config"
	"shapes/shade"
	"shapes/xform"
)

func TestVariantsAreValid(t *testing.T) {
	names := Variants()
	if strings.Join(names, ",") != "colorcube,cube,gradientcube,triangle" {
		t.Fatalf("Variants() = %v", names)
	}
	for _, name := range names {
		v, err := LookupVariant(name)
		if err != nil {
			t.Fatalf("LookupVariant(%q): %v", name, err)
		}
		if err := v.Geometry().Validate(); err != nil {
			t.Fatalf("%s geometry: %v", name, err)
		}
		if _, err := v.Rule.Source(); err != nil {
			t.Fatalf("%s rule: %v", name, err)
		}
		if v.Scale == 0 {
			t.Fatalf("%s has zero scale", name)
		}
	}
}

func TestLookupVariant(t *testing.T) {
	v, err := LookupVariant(" ColorCube ")
	if err != nil {
		t.Fatalf("LookupVariant: %v", err)
	}
	if v.Rule != shade.FixedColor || v.Color != shade.RGB(1, 0.6, 0.2) {
		t.Fatalf("colorcube = %+v", v)
	}
	if _, err := LookupVariant("teapot"); err == nil {
		t.Fatal("LookupVariant(teapot) = nil error")
	}
}

func TestProjection(t *testing.T) {
	cube, _ := LookupVariant("cube")
	p := cube.Projection()
	if p == nil {
		t.Fatal("cube has no projection")
	}
	if *p != xform.HomogeneousWeight(0.01) {
		t.Fatalf("Projection() = %v", *p)
	}
	tri, _ := LookupVariant("triangle")
	if tri.Projection() != nil {
		t.Fatal("triangle has a projection")
	}
}

func TestResolveOverrides(t *testing.T) {
	x, y := 10, 0
	cfg := config.Default()
	cfg.Scale = 0.5
	cfg.Window = config.Window{Title: "T", X: &x, Y: &y, Width: 320}
	v, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v.Scale != 0.5 || v.Weight != 0.5 {
		t.Fatalf("scale/weight = %v/%v, want 0.5/0.5", v.Scale, v.Weight)
	}
	if v.Title != "T" || v.Pos != image.Pt(10, 0) || v.Size != image.Pt(320, 768) {
		t.Fatalf("window = %q %v %v", v.Title, v.Pos, v.Size)
	}

	cfg = config.Default()
	cfg.Variant = "nope"
	if _, err := Resolve(cfg); err == nil {
		t.Fatal("Resolve(nope) = nil error")
	}
}
