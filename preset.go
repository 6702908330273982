package curve

import (
	"errors"
	"fmt"
)

// ErrUnknownPreset is returned by [ParsePreset] for names that aren't in the
// catalog.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset names a control point arrangement that produces a recognizable shape.
type Preset int

const (
	// PresetDefault is the arc a hand starts out with.
	PresetDefault Preset = iota
	PresetStraight
	PresetSmoothArc
	PresetSCurve
	PresetSemicircle
	PresetWave
	PresetHeart
)

// DefaultArcHeight is the perpendicular control point offset used by
// PresetSmoothArc.
const DefaultArcHeight = 1.5

// SmoothArcReach is the distance, along the anchor direction, between an
// anchor and its control point in [SmoothControls].
const SmoothArcReach = 0.33

var presetNames = [...]string{
	PresetDefault:    "default",
	PresetStraight:   "straight",
	PresetSmoothArc:  "smooth_arc",
	PresetSCurve:     "s_curve",
	PresetSemicircle: "semicircle",
	PresetWave:       "wave",
	PresetHeart:      "heart",
}

// Authored control points. All but the heart are anchored at (-2, 0) and
// (2, 0).
var presetTemplates = [...]CubicBez{
	PresetDefault:    {Pt(-2, 0, 0), Pt(-1, 2, 0), Pt(1, 2, 0), Pt(2, 0, 0)},
	PresetSCurve:     {Pt(-2, 0, 0), Pt(-1, 1.5, 0), Pt(1, -1.5, 0), Pt(2, 0, 0)},
	PresetSemicircle: {Pt(-2, 0, 0), Pt(-2, 2.5, 0), Pt(2, 2.5, 0), Pt(2, 0, 0)},
	PresetWave:       {Pt(-2, 0, 0), Pt(-1, 1, 0), Pt(1, -1, 0), Pt(2, 0, 0)},
	PresetHeart:      {Pt(-1.5, 0, 0), Pt(-1.5, 2, 0), Pt(1.5, 2, 0), Pt(1.5, 0, 0)},
}

var (
	nominalStart = Pt(-2, 0, 0)
	nominalEnd   = Pt(2, 0, 0)
)

// Presets returns all presets in catalog order.
func Presets() []Preset {
	out := make([]Preset, len(presetNames))
	for i := range out {
		out[i] = Preset(i)
	}
	return out
}

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// ParsePreset looks up a preset by the name returned by [Preset.String].
func ParsePreset(name string) (Preset, error) {
	for i, n := range presetNames {
		if n == name {
			return Preset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Controls returns the inner control points that give the curve from start to
// end the preset's shape.
//
// Straight places them at a third and two thirds of the way. SmoothArc uses
// [SmoothControls] with DefaultArcHeight. The remaining presets map their
// authored template onto start and end by rotation, uniform scaling and
// translation in the XY plane.
func (p Preset) Controls(start, end Point) (Point, Point) {
	switch p {
	case PresetStraight:
		return start.Lerp(end, 1.0/3.0), end.Lerp(start, 1.0/3.0)
	case PresetSmoothArc:
		return SmoothControls(start, end, DefaultArcHeight, 1)
	}
	tpl := p.Template()
	aff := Similarity(tpl.P0, tpl.P3, start, end)
	p1 := tpl.P1.Transform(aff)
	p2 := tpl.P2.Transform(aff)
	p1.Z = start.Z
	p2.Z = end.Z
	return p1, p2
}

// Template returns the preset's absolute control points.
func (p Preset) Template() CubicBez {
	switch p {
	case PresetStraight, PresetSmoothArc:
		p1, p2 := p.Controls(nominalStart, nominalEnd)
		return CubicBez{nominalStart, p1, p2, nominalEnd}
	}
	if p < 0 || int(p) >= len(presetTemplates) {
		return presetTemplates[PresetDefault]
	}
	return presetTemplates[p]
}

// Fit returns the curve from start to end with the preset's shape.
func (p Preset) Fit(start, end Point) CubicBez {
	p1, p2 := p.Controls(start, end)
	return CubicBez{start, p1, p2, end}
}

// SmoothControls returns control points that bend the curve from start to end
// into a symmetric arc:
//
//	p1 = start + dir·SmoothArcReach + perp·height
//	p2 = end   − dir·SmoothArcReach + perp·height
//
// where dir is the unit direction from start to end and perp is
// (dir × Forward)·sign. For a left-to-right pair of anchors, sign = 1 bends
// towards negative y and sign = -1 towards positive y.
//
// Coincident anchors have no direction; both control points are then placed
// on start.
func SmoothControls(start, end Point, height float64, sign int) (Point, Point) {
	dir := end.Sub(start).NormalizeOrZero()
	perp := dir.Cross(Forward).Mul(float64(sign))
	lift := perp.Mul(height)
	p1 := start.Translate(dir.Mul(SmoothArcReach)).Translate(lift)
	p2 := end.Translate(dir.Mul(-SmoothArcReach)).Translate(lift)
	return p1, p2
}
