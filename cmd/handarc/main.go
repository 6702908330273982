// Command handarc lays a hand of cards out along a curve and prints the
// result.
//
// Usage:
//
//	handarc [-config hand.yaml] [-preset name] [-n cards] [-mode mode]
//	        [-spacing s] [-segments n] [-svg out.svg]
//
// Flags override the configuration file.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cardonline/curve"
	"github.com/cardonline/curve/config"
	"github.com/cardonline/curve/hand"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "handarc:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("handarc", flag.ContinueOnError)
	var (
		cfgPath  = fs.String("config", "", "YAML configuration `file`")
		preset   = fs.String("preset", "", "curve preset (default, straight, smooth_arc, s_curve, semicircle, wave, heart)")
		n        = fs.Int("n", -1, "number of cards; defaults to the configured hand, or 5")
		mode     = fs.String("mode", "", "spacing mode (uniform, centered, arclength)")
		spacing  = fs.Float64("spacing", 0, "parameter step of the centered mode")
		segments = fs.Int("segments", 0, "polyline resolution for length and arc length spacing")
		svgPath  = fs.String("svg", "", "also write an SVG drawing to `file`")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			return err
		}
	}
	if *preset != "" {
		cfg.Curve.Preset = *preset
	}
	if *mode != "" {
		cfg.Layout.Mode = *mode
	}
	if *spacing != 0 {
		cfg.Layout.Spacing = spacing
	}
	if *segments != 0 {
		cfg.Layout.Segments = *segments
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer log.Sync()

	h := hand.New(append(cfg.HandOptions(), hand.WithLogger(log))...)
	names := cfg.Hand
	switch {
	case *n >= 0:
		names = make([]string, *n)
		for i := range names {
			if i < len(cfg.Hand) {
				names[i] = cfg.Hand[i]
			} else {
				names[i] = fmt.Sprintf("card %d", i+1)
			}
		}
	case len(names) == 0:
		names = []string{"card 1", "card 2", "card 3", "card 4", "card 5"}
	}
	for _, name := range names {
		h.Draw(name)
	}

	c := h.Curve()
	fmt.Fprintf(out, "curve   %v %v %v %v\n", c.P0, c.P1, c.P2, c.P3)
	fmt.Fprintf(out, "length  %.4f\n", c.Length(cfg.Layout.Segments))
	if k, ok := c.Curvature(0.5); ok {
		fmt.Fprintf(out, "curvature at midpoint  %.4f\n", k)
	} else {
		fmt.Fprintln(out, "curvature at midpoint  undefined")
	}
	lc := h.LayoutConfig()
	fmt.Fprintf(out, "layout  %s, %d cards\n", lc.Mode, lc.Count)
	for i, card := range h.Cards() {
		p := card.Pose
		fmt.Fprintf(out, "%2d  t=%-7.4f  (%7.3f, %7.3f, %7.3f)  %7.2f°  %s\n",
			card.ID, lc.ParamOn(c, i),
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Angle*180/math.Pi, card.Name)
	}

	if *svgPath != "" {
		if err := writeSVG(*svgPath, h); err != nil {
			return err
		}
		log.Info("wrote svg", zap.String("path", *svgPath))
	}
	return nil
}

func writeSVG(path string, h *hand.Hand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w, ht := h.CardSize()
	poses := make([]curve.Pose, 0, h.Len())
	for _, card := range h.Cards() {
		poses = append(poses, card.Pose)
	}
	err = curve.WriteSVG(f, h.Curve(), poses, curve.SVGOptions{
		MaxPrecision:   4,
		CardWidth:      w,
		CardHeight:     ht,
		ControlPolygon: true,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
