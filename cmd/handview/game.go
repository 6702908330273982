package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cardonline/curve"
	"github.com/cardonline/curve/hand"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

var (
	backgroundColor = color.RGBA{0x20, 0x24, 0x2c, 0xff}
	curveColor      = color.RGBA{0xe0, 0x40, 0x40, 0xff}
	polygonColor    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	cardColor       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	hoverColor      = color.RGBA{0xff, 0xd0, 0x40, 0xff}
)

var presetKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

type game struct {
	hand   *hand.Hand
	log    *zap.Logger
	preset curve.Preset
	drawn  int

	// World to screen, and back.
	view    curve.Affine
	inverse curve.Affine

	dragging bool
	dragFrom curve.Point
}

func newGame(h *hand.Hand, log *zap.Logger) *game {
	g := &game{hand: h, log: log, drawn: h.Len()}
	g.fit()
	return g
}

// fit frames the curve and the room cards need around it.
func (g *game) fit() {
	c := g.hand.Curve()
	w, h := g.hand.CardSize()
	bbox := c.BoundingBox()
	for _, card := range g.hand.Cards() {
		bbox = bbox.UnionPoint(card.Pose.Position)
	}
	bbox = bbox.UnionPoint(c.P1).UnionPoint(c.P2).Inflate(math.Hypot(w, h))
	g.view = bbox.FitAffine(screenWidth, screenHeight)
	g.inverse = g.view.Invert()
}

func (g *game) cursor() curve.Point {
	x, y := ebiten.CursorPosition()
	return curve.Pt(float64(x), float64(y), 0).Transform(g.inverse)
}

func (g *game) Update() error {
	for i, k := range presetKeys {
		if inpututil.IsKeyJustPressed(k) && i < len(curve.Presets()) {
			g.preset = curve.Presets()[i]
			g.hand.ApplyPreset(g.preset)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.drawn++
		g.hand.Draw(fmt.Sprintf("card %d", g.drawn))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		if cards := g.hand.Cards(); len(cards) > 0 {
			if err := g.hand.Play(cards[len(cards)-1].ID); err != nil {
				g.log.Warn("play card", zap.Error(err))
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		cfg := g.hand.LayoutConfig()
		cfg.Mode = (cfg.Mode + 1) % 3
		g.hand.SetLayout(cfg)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cfg := g.hand.LayoutConfig()
		cfg.Rotate = !cfg.Rotate
		g.hand.SetLayout(cfg)
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragFrom = g.cursor()
		_, g.dragging = g.hand.PointerDown(g.dragFrom)
	case g.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.dragging = false
		if err := g.hand.PointerUp(); err != nil {
			g.log.Warn("release card", zap.Error(err))
		}
	case g.dragging:
		if err := g.hand.Drag(g.dragFrom, g.cursor()); err != nil {
			g.log.Warn("drag card", zap.Error(err))
		}
	default:
		// Reframing while a card is held would move it under the pointer.
		g.fit()
	}
	return nil
}

func (g *game) line(dst *ebiten.Image, p0, p1 curve.Point, width float32, clr color.Color) {
	a := p0.Transform(g.view)
	b := p1.Transform(g.view)
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
}

func (g *game) drawCard(dst *ebiten.Image, p curve.Pose, name string, clr color.Color) {
	w, h := g.hand.CardSize()
	aff := curve.Rotate(p.Angle).ThenTranslate(curve.Vec3(p.Position))
	corners := [4]curve.Point{
		curve.Pt(-w/2, -h/2, 0).Transform(aff),
		curve.Pt(w/2, -h/2, 0).Transform(aff),
		curve.Pt(w/2, h/2, 0).Transform(aff),
		curve.Pt(-w/2, h/2, 0).Transform(aff),
	}
	for i := range corners {
		g.line(dst, corners[i], corners[(i+1)%4], 2, clr)
	}
	at := p.Position.Transform(g.view)
	ebitenutil.DebugPrintAt(dst, name, int(at.X)-3*len(name), int(at.Y)-8)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	c := g.hand.Curve()
	for _, l := range c.ControlPolygon() {
		g.line(screen, l.P0, l.P1, 1, polygonColor)
	}
	for _, p := range []curve.Point{c.P0, c.P1, c.P2, c.P3} {
		s := p.Transform(g.view)
		vector.StrokeCircle(screen, float32(s.X), float32(s.Y), 5, 1, polygonColor, true)
	}
	pts := c.Polyline(64)
	for i := 1; i < len(pts); i++ {
		g.line(screen, pts[i-1], pts[i], 2, curveColor)
	}
	mid := c.P1.Midpoint(c.P2).Transform(g.view)
	vector.DrawFilledCircle(screen, float32(mid.X), float32(mid.Y), 3, curveColor, true)

	for _, card := range g.hand.Cards() {
		if !card.Hidden {
			g.drawCard(screen, card.Pose, card.Name, cardColor)
		}
	}
	if id, pose, ok := g.hand.Selection(); ok {
		card, _ := g.hand.Card(id)
		g.drawCard(screen, pose, card.Name, hoverColor)
	}

	cfg := g.hand.LayoutConfig()
	k, ok := c.Curvature(0.5)
	kText := "undefined"
	if ok {
		kText = fmt.Sprintf("%.3f", k)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"preset %s  mode %s  rotate %v  cards %d\nlength %.3f  curvature at midpoint %s",
		g.preset, cfg.Mode, cfg.Rotate, cfg.Count, c.Length(0), kText), 8, 8)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
