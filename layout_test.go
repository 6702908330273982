package curve

import (
	"math"
	"testing"
)

func params(cfg LayoutConfig, c CubicBez) []float64 {
	out := make([]float64, cfg.Count)
	for i := range out {
		out[i] = cfg.ParamOn(c, i)
	}
	return out
}

func TestLayoutParamUniform(t *testing.T) {
	cfg := LayoutConfig{Count: 5, Mode: Uniform}
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, params(cfg, defaultArc))

	cfg.Count = 1
	diff(t, []float64{0.5}, params(cfg, defaultArc))
}

func TestLayoutParamCentered(t *testing.T) {
	cfg := LayoutConfig{Count: 3, Mode: CenteredWithSpacing, Spacing: 0.1}
	diff(t, []float64{0.4, 0.5, 0.6}, params(cfg, defaultArc), approx(1e-12))

	// Large hands extend past the ends of the curve.
	cfg.Count = 20
	ts := params(cfg, defaultArc)
	diff(t, -0.45, ts[0], approx(1e-12))
	diff(t, 1.45, ts[19], approx(1e-12))
}

func TestLayoutParamArcLength(t *testing.T) {
	straight := CubicBez{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), Pt(3, 0, 0)}
	cfg := LayoutConfig{Count: 4, Mode: ArcLength}
	diff(t, []float64{0, 1.0 / 3.0, 2.0 / 3.0, 1}, params(cfg, straight), approx(1e-9))

	// A straight line with bunched up control points moves slowly near its
	// ends, so equal distances need parameters that bunch up there, too.
	bunched := CubicBez{Pt(0, 0, 0), Pt(0, 0, 0), Pt(3, 0, 0), Pt(3, 0, 0)}
	cfg = LayoutConfig{Count: 5, Mode: ArcLength, Segments: 1000}
	poses := Layout(bunched, cfg, nil)
	for i, p := range poses {
		want := 3 * float64(i) / 4
		if math.Abs(p.Position.X-want) > 1e-3 {
			t.Errorf("item %d at x = %v, want %v", i, p.Position.X, want)
		}
	}

	cfg = LayoutConfig{Count: 1, Mode: ArcLength}
	if ts := params(cfg, defaultArc); math.Abs(ts[0]-0.5) > 1e-3 {
		t.Errorf("got %v, want ≈0.5", ts[0])
	}
}

func TestLayoutPositions(t *testing.T) {
	poses := Layout(defaultArc, LayoutConfig{Count: 5, Mode: Uniform}, nil)
	if len(poses) != 5 {
		t.Fatalf("got %d poses, want 5", len(poses))
	}
	if got := poses[0].Position; got != defaultArc.P0 {
		t.Errorf("first item at %v, want %v", got, defaultArc.P0)
	}
	if got := poses[4].Position; got != defaultArc.P3 {
		t.Errorf("last item at %v, want %v", got, defaultArc.P3)
	}
	diff(t, Pt(0, 1.5, 0), poses[2].Position)

	poses = Layout(defaultArc, LayoutConfig{Count: 1}, nil)
	diff(t, []Pose{{Position: Pt(0, 1.5, 0)}}, poses)
}

func TestLayoutEmpty(t *testing.T) {
	for _, n := range []int{0, -3} {
		if poses := Layout(defaultArc, LayoutConfig{Count: n, Rotate: true}, nil); poses != nil {
			t.Errorf("Count %d: got %v, want nil", n, poses)
		}
	}
}

func TestLayoutRotation(t *testing.T) {
	cfg := LayoutConfig{Count: 3, Mode: Uniform, Rotate: true}
	poses := Layout(defaultArc, cfg, nil)
	want := []float64{math.Atan2(6, 3), 0, math.Atan2(-6, 3)}
	for i, p := range poses {
		if math.Abs(p.Angle-want[i]) > 1e-12 {
			t.Errorf("item %d: got angle %v, want %v", i, p.Angle, want[i])
		}
	}

	cfg.RotationOffset = math.Pi / 2
	poses = Layout(defaultArc, cfg, nil)
	if math.Abs(poses[1].Angle-math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, want π/2", poses[1].Angle)
	}
}

func TestLayoutKeepsAngles(t *testing.T) {
	prev := []Pose{{Angle: 0.3}, {Angle: 0.7}}

	// Without rotation, angles carry over; new items start at 0.
	poses := Layout(defaultArc, LayoutConfig{Count: 3}, prev)
	var got []float64
	for _, p := range poses {
		got = append(got, p.Angle)
	}
	diff(t, []float64{0.3, 0.7, 0}, got)

	// Where the tangent is undefined, so is the angle.
	var zero CubicBez
	poses = Layout(zero, LayoutConfig{Count: 2, Rotate: true, RotationOffset: 1}, prev)
	diff(t, []Pose{{Angle: 0.3}, {Angle: 0.7}}, poses)
}

func TestLayoutDegenerate(t *testing.T) {
	curves := []CubicBez{
		{},
		{Pt(0, 0, 0), Pt(0, 0, 0), Pt(1, 1, 0), Pt(1, 1, 0)},
		// Moves only in depth, so there is no in-plane tangent.
		{Pt(0, 0, 0), Pt(0, 0, 1), Pt(0, 0, 2), Pt(0, 0, 3)},
	}
	modes := []SpacingMode{Uniform, CenteredWithSpacing, ArcLength}
	for _, c := range curves {
		for _, m := range modes {
			cfg := LayoutConfig{Count: 7, Mode: m, Spacing: DefaultSpacing, Rotate: true}
			for _, p := range Layout(c, cfg, nil) {
				assertFinite(t, m.String(), p.Position.X, p.Position.Y, p.Position.Z, p.Angle)
			}
		}
	}
}

func TestParseSpacingMode(t *testing.T) {
	for _, m := range []SpacingMode{Uniform, CenteredWithSpacing, ArcLength} {
		got, err := ParseSpacingMode(m.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != m {
			t.Errorf("got %v, want %v", got, m)
		}
	}
	if _, err := ParseSpacingMode("spiral"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func BenchmarkLayout(b *testing.B) {
	cfg := LayoutConfig{Count: 10, Mode: ArcLength, Rotate: true}
	var prev []Pose
	for b.Loop() {
		prev = Layout(defaultArc, cfg, prev)
	}
}
