package curve

// Handles are the control points of a curve as they exist while authoring it.
// Any of them may be missing; operations skip what isn't there instead of
// failing.
type Handles struct {
	Start    *Point
	Control1 *Point
	Control2 *Point
	End      *Point
}

// NewHandles returns handles holding copies of c's control points.
func NewHandles(c CubicBez) Handles {
	return Handles{
		Start:    ptr(c.P0),
		Control1: ptr(c.P1),
		Control2: ptr(c.P2),
		End:      ptr(c.P3),
	}
}

func ptr(pt Point) *Point { return &pt }

// Count returns the number of control points that are set.
func (h Handles) Count() int {
	n := 0
	for _, p := range h.points() {
		if *p != nil {
			n++
		}
	}
	return n
}

func (h *Handles) points() [4]**Point {
	return [4]**Point{&h.Start, &h.Control1, &h.Control2, &h.End}
}

// Cubic returns the curve described by the handles. It returns false unless
// all four control points are set.
func (h Handles) Cubic() (CubicBez, bool) {
	if h.Start == nil || h.Control1 == nil || h.Control2 == nil || h.End == nil {
		return CubicBez{}, false
	}
	return CubicBez{*h.Start, *h.Control1, *h.Control2, *h.End}, true
}

// EnsureDefaults creates every missing control point at its position in
// PresetDefault. Existing points are kept.
func (h *Handles) EnsureDefaults() {
	tpl := PresetDefault.Template()
	vals := [4]Point{tpl.P0, tpl.P1, tpl.P2, tpl.P3}
	for i, p := range h.points() {
		if *p == nil {
			*p = ptr(vals[i])
		}
	}
}

// ApplyPreset moves the control points to the preset's authored positions.
//
// PresetSmoothArc has no fixed positions: it keeps the anchors and moves the
// inner control points, and thus needs Start and End. Missing points are not
// created. ApplyPreset reports whether any point was written.
func (h *Handles) ApplyPreset(p Preset) bool {
	if p == PresetSmoothArc {
		return h.FitPreset(p)
	}
	tpl := p.Template()
	vals := [4]Point{tpl.P0, tpl.P1, tpl.P2, tpl.P3}
	wrote := false
	for i, pp := range h.points() {
		if *pp != nil {
			**pp = vals[i]
			wrote = true
		}
	}
	return wrote
}

// FitPreset keeps Start and End and moves the inner control points so that
// the curve takes the preset's shape. It does nothing, and returns false,
// unless both anchors are set.
func (h *Handles) FitPreset(p Preset) bool {
	if h.Start == nil || h.End == nil {
		return false
	}
	p1, p2 := p.Controls(*h.Start, *h.End)
	wrote := false
	if h.Control1 != nil {
		*h.Control1 = p1
		wrote = true
	}
	if h.Control2 != nil {
		*h.Control2 = p2
		wrote = true
	}
	return wrote
}
