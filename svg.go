package curve

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Size of the rectangles drawn for poses. Zero values select 0.5 × 0.7.
	CardWidth, CardHeight float64
	// ControlPolygon also draws the lines between control points.
	ControlPolygon bool
}

// SVG renders a curve and the poses laid out along it as an SVG document.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(c CubicBez, poses []Pose, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, c, poses, opts)
	return sb.String()
}

// WriteSVG renders a curve and the poses laid out along it as an SVG document
// and writes it to w.
//
// The drawing uses the XY plane with y pointing up, so the document flips it.
// Poses become rectangles rotated by their angle.
func WriteSVG(w io.Writer, c CubicBez, poses []Pose, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	cw, ch := opts.CardWidth, opts.CardHeight
	if cw <= 0 {
		cw = 0.5
	}
	if ch <= 0 {
		ch = 0.7
	}

	bbox := c.BoundingBox()
	for _, p := range poses {
		bbox = bbox.UnionPoint(p.Position)
	}
	bbox = bbox.Inflate(math.Hypot(cw, ch))

	writef(`<svg viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		format(bbox.Min.X), format(-bbox.Max.Y), format(bbox.Width()), format(bbox.Height()))
	writef(`<g transform="scale(1,-1)">` + "\n")
	if opts.ControlPolygon {
		writef(`<path d="M%s,%s L%s,%s L%s,%s L%s,%s" fill="none" stroke="gray" stroke-width="0.02" />`+"\n",
			format(c.P0.X), format(c.P0.Y),
			format(c.P1.X), format(c.P1.Y),
			format(c.P2.X), format(c.P2.Y),
			format(c.P3.X), format(c.P3.Y))
	}
	writef(`<path d="M%s,%s C%s,%s %s,%s %s,%s" fill="none" stroke="red" stroke-width="0.05" />`+"\n",
		format(c.P0.X), format(c.P0.Y),
		format(c.P1.X), format(c.P1.Y),
		format(c.P2.X), format(c.P2.Y),
		format(c.P3.X), format(c.P3.Y))
	for _, p := range poses {
		deg := p.Angle * 180 / math.Pi
		writef(`<rect x="%s" y="%s" width="%s" height="%s" transform="translate(%s,%s) rotate(%s)" fill="white" stroke="black" stroke-width="0.02" />`+"\n",
			format(-cw/2), format(-ch/2), format(cw), format(ch),
			format(p.Position.X), format(p.Position.Y), format(deg))
	}
	writef("</g>\n</svg>\n")
	return err
}
