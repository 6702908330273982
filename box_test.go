package curve

import (
	"testing"
)

func TestBoxFromPoints(t *testing.T) {
	b := NewBoxFromPoints(Pt(3, -1, 2), Pt(1, 4, -2))
	diff(t, Box{Pt(1, -1, -2), Pt(3, 4, 2)}, b)
	if b.Width() != 2 || b.Height() != 5 || b.Depth() != 4 {
		t.Errorf("got extents %v × %v × %v, want 2 × 5 × 4", b.Width(), b.Height(), b.Depth())
	}
	diff(t, Pt(2, 1.5, 0), b.Center())
	diff(t, Box{Pt(-1, -1, -1), Pt(1, 1, 1)}, NewBoxFromCenter(Pt(0, 0, 0), Vec(1, 1, 1)))
}

func TestBoxUnion(t *testing.T) {
	b := NewBoxFromPoints(Pt(0, 0, 0), Pt(1, 1, 1))
	diff(t, Box{Pt(0, -2, 0), Pt(3, 1, 1)}, b.UnionPoint(Pt(3, -2, 0.5)))
	diff(t, Box{Pt(-1, 0, 0), Pt(1, 5, 1)}, b.Union(NewBoxFromPoints(Pt(-1, 5, 0), Pt(0, 0, 0))))
	diff(t, Box{Pt(-1, -1, -1), Pt(2, 2, 2)}, b.Inflate(1))
}

func TestBoxContains(t *testing.T) {
	b := NewBoxFromPoints(Pt(0, 0, 0), Pt(1, 1, 1))
	for _, p := range []Point{Pt(0, 0, 0), Pt(1, 1, 1), Pt(0.5, 0.2, 0.9)} {
		if !b.Contains(p) {
			t.Errorf("%v should contain %v", b, p)
		}
	}
	for _, p := range []Point{Pt(-0.1, 0, 0), Pt(0.5, 0.5, 1.5)} {
		if b.Contains(p) {
			t.Errorf("%v shouldn't contain %v", b, p)
		}
	}
}

func TestBoxFitAffine(t *testing.T) {
	const epsilon = 1e-9
	b := NewBoxFromPoints(Pt(0, 0, 0), Pt(4, 2, 0))
	aff := b.FitAffine(100, 100)

	assertNear(t, b.Center().Transform(aff), Pt(50, 50, 0), epsilon)
	// Y points down on screen.
	assertNear(t, b.Max.Transform(aff), Pt(100, 25, 0), epsilon)
	assertNear(t, b.Min.Transform(aff), Pt(0, 75, 0), epsilon)

	// Mapping back from the screen.
	assertNear(t, Pt(100, 25, 0).Transform(aff.Invert()), b.Max, epsilon)

	// A flat box still produces an invertible transform.
	flat := NewBoxFromPoints(Pt(-1, 3, 0), Pt(1, 3, 0))
	if inv := flat.FitAffine(640, 480).Invert(); inv.IsNaN() || inv.IsInf() {
		t.Errorf("got non-invertible transform %v", flat.FitAffine(640, 480))
	}
}
