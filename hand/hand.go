// Package hand keeps the cards of a player's hand laid out along a curve and
// handles pointer interaction with them.
//
// A Hand is not safe for concurrent use. It is meant to be driven from a
// single update loop.
package hand

import (
	"errors"
	"fmt"

	"github.com/cardonline/curve"
	"go.uber.org/zap"
)

var (
	ErrUnknownCard = errors.New("unknown card")
	ErrNoSelection = errors.New("no card selected")
)

// HoverDepth is the depth at which a selected card is lifted, in front of the
// hand.
const HoverDepth = -1.0

// Default card size, in world units.
const (
	DefaultCardWidth  = 0.5
	DefaultCardHeight = 0.7
)

// CardID identifies a card while it is in the hand. IDs of played cards are
// reused by cards drawn later.
type CardID int

// Card is a card in the hand.
type Card struct {
	ID   CardID
	Name string
	Pose curve.Pose
	// Hidden is set while the card is lifted by a pointer.
	Hidden bool
}

type slot struct {
	card Card
	live bool
}

type selection struct {
	id    CardID
	start curve.Pose
	hover curve.Pose
}

// Hand owns a set of cards and the curve they are laid out on.
type Hand struct {
	log    *zap.Logger
	curve  curve.CubicBez
	layout curve.LayoutConfig
	width  float64
	height float64

	slots []slot
	free  []CardID
	order []CardID

	sel  *selection
	subs []func(Event)
}

type Option func(*Hand)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(h *Hand) { h.log = log }
}

// WithCurve sets the curve cards are laid out on. The default is
// curve.PresetDefault.
func WithCurve(c curve.CubicBez) Option {
	return func(h *Hand) { h.curve = c }
}

// WithLayout sets the layout configuration. Its Count is ignored.
func WithLayout(cfg curve.LayoutConfig) Option {
	return func(h *Hand) { h.layout = cfg }
}

// WithCardSize sets the size of the rectangle used for hit testing.
// Non-positive values keep the default.
func WithCardSize(width, height float64) Option {
	return func(h *Hand) {
		if width > 0 {
			h.width = width
		}
		if height > 0 {
			h.height = height
		}
	}
}

// New returns an empty hand.
func New(opts ...Option) *Hand {
	h := &Hand{
		log:   zap.NewNop(),
		curve: curve.PresetDefault.Template(),
		layout: curve.LayoutConfig{
			Mode:    curve.Uniform,
			Spacing: curve.DefaultSpacing,
			Rotate:  true,
		},
		width:  DefaultCardWidth,
		height: DefaultCardHeight,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int { return len(h.order) }

// Draw adds a card to the end of the hand and lays the hand out again.
func (h *Hand) Draw(name string) CardID {
	var id CardID
	if n := len(h.free); n > 0 {
		id = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		id = CardID(len(h.slots))
		h.slots = append(h.slots, slot{})
	}
	h.slots[id] = slot{card: Card{ID: id, Name: name}, live: true}
	h.order = append(h.order, id)
	h.Layout()

	h.log.Debug("card drawn",
		zap.Int("id", int(id)),
		zap.String("name", name),
		zap.Int("hand_size", len(h.order)))
	h.emit(Event{Kind: Drawn, Card: id})
	return id
}

// Play removes a card from the hand. Playing the selected card ends the
// selection.
func (h *Hand) Play(id CardID) error {
	if !h.valid(id) {
		return fmt.Errorf("play card %d: %w", id, ErrUnknownCard)
	}
	if h.sel != nil && h.sel.id == id {
		h.sel = nil
		h.emit(Event{Kind: RaycastBlocked, Card: id, Blocked: false})
	}
	name := h.slots[id].card.Name
	h.slots[id] = slot{}
	h.free = append(h.free, id)
	for i, o := range h.order {
		if o == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	h.Layout()

	h.log.Debug("card played",
		zap.Int("id", int(id)),
		zap.String("name", name),
		zap.Int("hand_size", len(h.order)))
	h.emit(Event{Kind: Played, Card: id})
	return nil
}

// Clear removes all cards. IDs start over from zero.
func (h *Hand) Clear() {
	if h.sel != nil {
		id := h.sel.id
		h.sel = nil
		h.emit(Event{Kind: RaycastBlocked, Card: id, Blocked: false})
	}
	n := len(h.order)
	h.slots = h.slots[:0]
	h.free = h.free[:0]
	h.order = h.order[:0]
	h.log.Debug("hand cleared", zap.Int("removed", n))
}

// Card returns the card with the given ID.
func (h *Hand) Card(id CardID) (Card, bool) {
	if !h.valid(id) {
		return Card{}, false
	}
	return h.slots[id].card, true
}

// Cards returns the cards in hand order, from the start of the curve to its
// end.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.order))
	for i, id := range h.order {
		out[i] = h.slots[id].card
	}
	return out
}

func (h *Hand) valid(id CardID) bool {
	return id >= 0 && int(id) < len(h.slots) && h.slots[id].live
}

// Curve returns the curve the hand is laid out on.
func (h *Hand) Curve() curve.CubicBez { return h.curve }

// SetCurve replaces the curve and lays the hand out again.
func (h *Hand) SetCurve(c curve.CubicBez) {
	h.curve = c
	h.log.Debug("curve changed", zap.Stringer("start", c.P0), zap.Stringer("end", c.P3))
	h.Layout()
}

// ApplyPreset reshapes the curve with the given preset, keeping its anchors.
func (h *Hand) ApplyPreset(p curve.Preset) {
	hs := curve.NewHandles(h.curve)
	hs.FitPreset(p)
	c, _ := hs.Cubic()
	h.log.Debug("preset applied", zap.Stringer("preset", p))
	h.SetCurve(c)
}

// LayoutConfig returns the layout configuration, with Count set to the
// number of cards.
func (h *Hand) LayoutConfig() curve.LayoutConfig {
	cfg := h.layout
	cfg.Count = len(h.order)
	return cfg
}

// SetLayout replaces the layout configuration and lays the hand out again.
// cfg.Count is ignored.
func (h *Hand) SetLayout(cfg curve.LayoutConfig) {
	h.layout = cfg
	h.log.Debug("layout changed",
		zap.Stringer("mode", cfg.Mode),
		zap.Float64("spacing", cfg.Spacing),
		zap.Bool("rotate", cfg.Rotate))
	h.Layout()
}

// Layout recomputes the pose of every card and returns the poses in hand
// order. Cards keep their previous angle if rotation is disabled.
func (h *Hand) Layout() []curve.Pose {
	prev := make([]curve.Pose, len(h.order))
	for i, id := range h.order {
		prev[i] = h.slots[id].card.Pose
	}
	poses := curve.Layout(h.curve, h.LayoutConfig(), prev)
	for i, id := range h.order {
		h.slots[id].card.Pose = poses[i]
	}
	return poses
}

// CentralControl returns the midpoint of the curve's inner control points. A
// lifted card hovers at its height.
func (h *Hand) CentralControl() curve.Point {
	return h.curve.P1.Midpoint(h.curve.P2)
}

// CardSize returns the size of a card.
func (h *Hand) CardSize() (width, height float64) {
	return h.width, h.height
}
