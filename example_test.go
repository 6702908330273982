package curve_test

import (
	"fmt"
	"math"

	"github.com/cardonline/curve"
)

func ExampleLayout() {
	arc := curve.PresetDefault.Template()
	cfg := curve.LayoutConfig{
		Count:  3,
		Mode:   curve.Uniform,
		Rotate: true,
	}
	for _, p := range curve.Layout(arc, cfg, nil) {
		fmt.Printf("%.2f %.2f %.1f\n", p.Position.X, p.Position.Y, p.Angle*180/math.Pi)
	}
	// Output:
	// -2.00 0.00 63.4
	// 0.00 1.50 0.0
	// 2.00 0.00 -63.4
}

func ExamplePreset_Fit() {
	c := curve.PresetSmoothArc.Fit(curve.Pt(0, 0, 0), curve.Pt(4, 0, 0))
	fmt.Printf("%.2f %.2f\n", c.P1.X, c.P1.Y)
	fmt.Printf("%.2f %.2f\n", c.P2.X, c.P2.Y)
	// Output:
	// 0.33 -1.50
	// 3.67 -1.50
}
