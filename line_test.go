package curve

import (
	"math"
	"testing"
)

func TestLineArclen(t *testing.T) {
	l := Line{Pt(0.0, 0.0, 0.0), Pt(1.0, 1.0, 0.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := l.Arclen(epsilon) - want; d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	ts := l.SolveForArclen(want/3.0, epsilon)
	if d := math.Abs(ts - 1.0/3.0); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0, 0.0), Pt(1.0, 1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0, 0.0), Pt(math.Inf(1), 1.0, 0.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0, 0.0), Pt(0.0, 0.0, math.Inf(-1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(10, 0, 0)}
	verify := func(pt Point, wantDistSq, wantT float64) {
		t.Helper()
		d, ts := l.Nearest(pt)
		if math.Abs(d-wantDistSq) > 1e-12 || math.Abs(ts-wantT) > 1e-12 {
			t.Errorf("got (%v, %v), want (%v, %v)", d, ts, wantDistSq, wantT)
		}
	}
	verify(Pt(5, 2, 0), 4, 0.5)
	verify(Pt(-3, 4, 0), 25, 0)
	verify(Pt(12, 0, 0), 4, 1)
}
