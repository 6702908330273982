package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

func assertNear(t *testing.T, p0, p1 Point, epsilon float64) {
	t.Helper()
	if d := p0.Distance(p1); d > epsilon {
		t.Errorf("%v != %v (distance %g)", p0, p1, d)
	}
}

func assertFinite(t *testing.T, what string, vs ...float64) {
	t.Helper()
	for _, v := range vs {
		if v != v || v > 1e308 || v < -1e308 {
			t.Errorf("%s: got non-finite value %v", what, v)
		}
	}
}
