package curve

import (
	"math"
	"sort"
)

var _ ParametricCurve = CubicBez{}
var _ Arclener = CubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier curve defined by four control points.
//
// P0 and P3 are the anchors the curve passes through; P1 and P2 shape it.
// Coincident control points are valid and describe a zero-length curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// IsFinite reports whether all control points are finite.
func (c CubicBez) IsFinite() bool {
	return !c.IsInf() && !c.IsNaN()
}

// Eval evaluates the Bernstein form
// (1-t)³P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³P3.
//
// t is not clamped; values outside of [0, 1] extrapolate the curve.
func (c CubicBez) Eval(t float64) Point {
	u := 1 - t
	tt := t * t
	uu := u * u
	uuu := uu * u
	ttt := tt * t

	v := Vec3(c.P0).Mul(uuu)
	v = v.Add(Vec3(c.P1).Mul(3 * uu * t))
	v = v.Add(Vec3(c.P2).Mul(3 * u * tt))
	v = v.Add(Vec3(c.P3).Mul(ttt))
	return Point(v)
}

// Deriv returns the first derivative at t,
// 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2).
func (c CubicBez) Deriv(t float64) Vec3 {
	u := 1 - t
	d := c.P1.Sub(c.P0).Mul(3 * u * u)
	d = d.Add(c.P2.Sub(c.P1).Mul(6 * u * t))
	d = d.Add(c.P3.Sub(c.P2).Mul(3 * t * t))
	return d
}

// Deriv2 returns the second derivative at t,
// 6(1-t)(P2-2P1+P0) + 6t(P3-2P2+P1).
func (c CubicBez) Deriv2(t float64) Vec3 {
	u := 1 - t
	a := Vec3(c.P2).Sub(Vec3(c.P1).Mul(2)).Add(Vec3(c.P0))
	b := Vec3(c.P3).Sub(Vec3(c.P2).Mul(2)).Add(Vec3(c.P1))
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

// Tangent returns the unit tangent at t.
//
// Where the derivative vanishes (for example when all control points
// coincide) the tangent is undefined and the zero vector is returned.
func (c CubicBez) Tangent(t float64) Vec3 {
	return c.Deriv(t).NormalizeOrZero()
}

// Normal returns the unit normal at t: the tangent rotated by 90° in the
// working plane, computed as tangent × [Forward].
//
// The zero vector is returned where the tangent is undefined or parallel to
// Forward.
func (c CubicBez) Normal(t float64) Vec3 {
	return c.Tangent(t).Cross(Forward).NormalizeOrZero()
}

// Curvature returns the curvature |d × dd| / |d|³ at t, where d and dd are the
// first and second derivatives.
//
// The second return value is false if the curvature is undefined, which is
// the case where the derivative vanishes. The first return value is 0 then.
func (c CubicBez) Curvature(t float64) (float64, bool) {
	d := c.Deriv(t)
	h := d.Hypot()
	if h == 0 {
		return 0, false
	}
	k := d.Cross(c.Deriv2(t)).Hypot() / (h * h * h)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, false
	}
	return k, true
}

// Length approximates the arc length by summing the lengths of a polyline
// through segments+1 uniformly spaced samples. The approximation approaches
// the true length from below as segments grows.
//
// If segments is less than 1, [DefaultSegments] is used.
func (c CubicBez) Length(segments int) float64 {
	if segments < 1 {
		segments = DefaultSegments
	}
	return polylineLength(c.Eval, segments)
}

// ArcLenToT returns the parameter t at which the given fraction of the curve's
// length has been traveled.
//
// It walks the same uniform sampling as [CubicBez.Length] and interpolates
// linearly within the segment where the accumulated length first reaches
// fraction × total. The result is an approximation whose error is
// O(1/segments); use [SolveForArclen] for an accurate inversion.
//
// Fractions that are never reached (fraction > 1, or rounding at fraction ≈ 1)
// return 1. Negative fractions extrapolate below 0. On a zero-length curve the
// result is 0. If segments is less than 1, [DefaultArcLenSegments] is used.
func (c CubicBez) ArcLenToT(fraction float64, segments int) float64 {
	if segments < 1 {
		segments = DefaultArcLenSegments
	}
	total := c.Length(segments)
	target := fraction * total
	if math.IsNaN(target) || math.IsInf(target, 0) {
		if target < 0 {
			return 0
		}
		return 1
	}

	n := float64(segments)
	var acc float64
	prev := c.Eval(0)
	for i := 1; i <= segments; i++ {
		cur := c.Eval(float64(i) / n)
		seg := prev.Distance(cur)
		if acc+seg >= target {
			t0 := float64(i-1) / n
			if seg == 0 {
				return t0
			}
			return t0 + (target-acc)/seg/n
		}
		acc += seg
		prev = cur
	}
	return 1
}

// Polyline returns resolution+1 points of the curve at uniformly spaced
// parameters, including both end points. It is meant for drawing.
//
// If resolution is less than 1, [DefaultSegments] is used.
func (c CubicBez) Polyline(resolution int) []Point {
	if resolution < 1 {
		resolution = DefaultSegments
	}
	out := make([]Point, resolution+1)
	for i := range out {
		out[i] = c.Eval(float64(i) / float64(resolution))
	}
	return out
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec3, dm1 Vec3, dm2 Vec3) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec3(c.P0).Add(Vec3(c.P1).Mul(2.0)).Add(Vec3(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec3(c.P1).Add(Vec3(c.P2).Mul(2.0)).Add(Vec3(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the part of the curve between t0 and t1 as a new cubic.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Deriv(t0).Mul(scale))
	p2 := p3.Translate(c.Deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return c.Subsegment(t0, t1)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Differentiate returns the derivative curve, a quadratic Bézier whose points
// are interpreted as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// three calls to oneCoord, up to 2 roots per call, for a total of 6 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	oneCoord(d0.Z, d1.Z, d2.Z)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned box enclosing the curve.
func (c CubicBez) BoundingBox() Box {
	return BoundingBox(c)
}

// ControlPolygon returns the three lines connecting consecutive control points.
func (c CubicBez) ControlPolygon() [3]Line {
	return [3]Line{{c.P0, c.P1}, {c.P1, c.P2}, {c.P2, c.P3}}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}
