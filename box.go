package curve

import "math"

// Box is an axis-aligned box, used for framing curves and hands when drawing
// them.
type Box struct {
	Min, Max Point
}

// NewBoxFromPoints returns the smallest box containing p0 and p1.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{
		Min: Point{min(p0.X, p1.X), min(p0.Y, p1.Y), min(p0.Z, p1.Z)},
		Max: Point{max(p0.X, p1.X), max(p0.Y, p1.Y), max(p0.Z, p1.Z)},
	}
}

// NewBoxFromCenter returns a box of the given half extents around center.
func NewBoxFromCenter(center Point, half Vec3) Box {
	return NewBoxFromPoints(center.Translate(half.Negate()), center.Translate(half))
}

func (b Box) Width() float64  { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }
func (b Box) Depth() float64  { return b.Max.Z - b.Min.Z }

// Center returns the center of the box.
func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt lies inside the box, boundaries included.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: Point{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}

// UnionPoint returns the smallest box containing both b and pt.
func (b Box) UnionPoint(pt Point) Box {
	return b.Union(Box{pt, pt})
}

// Inflate grows the box by d on every side. Negative values shrink it.
func (b Box) Inflate(d float64) Box {
	v := Vec(d, d, d)
	return Box{b.Min.Translate(v.Negate()), b.Max.Translate(v)}
}

func (b Box) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

// FitAffine returns the transform that maps the XY extent of b into a
// viewport of the given size in a y-down space, preserving aspect ratio and
// centering the result. Degenerate extents are treated as one unit wide.
func (b Box) FitAffine(width, height float64) Affine {
	w := b.Width()
	h := b.Height()
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		w = 1
	}
	if h <= 0 || math.IsInf(h, 0) || math.IsNaN(h) {
		h = 1
	}
	s := min(width/w, height/h)
	c := b.Center()
	return Translate(Vec(-c.X, -c.Y, 0)).
		ThenScale(s, -s).
		ThenTranslate(Vec(width/2, height/2, 0))
}
