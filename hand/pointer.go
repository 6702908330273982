package hand

import (
	"fmt"
	"math"

	"github.com/cardonline/curve"
	"go.uber.org/zap"
)

// hit reports whether pt, projected onto the XY plane, lies on the card's
// rotated rectangle.
func (h *Hand) hit(c Card, pt curve.Point) bool {
	d := pt.Sub(c.Pose.Position)
	sin, cos := math.Sincos(-c.Pose.Angle)
	x := d.X*cos - d.Y*sin
	y := d.X*sin + d.Y*cos
	return math.Abs(x) <= h.width/2 && math.Abs(y) <= h.height/2
}

// CardAt returns the topmost card under pt. Later cards in the hand are drawn
// on top of earlier ones. Hidden cards can't be hit.
func (h *Hand) CardAt(pt curve.Point) (CardID, bool) {
	for i := len(h.order) - 1; i >= 0; i-- {
		c := h.slots[h.order[i]].card
		if !c.Hidden && h.hit(c, pt) {
			return c.ID, true
		}
	}
	return 0, false
}

// PointerDown lifts the card under pt, if any. The card is hidden in the hand
// and a hover copy appears above it, at the height of CentralControl and at
// HoverDepth.
//
// A card that is still lifted is released first.
func (h *Hand) PointerDown(pt curve.Point) (CardID, bool) {
	if h.sel != nil {
		_ = h.PointerUp()
	}
	id, ok := h.CardAt(pt)
	if !ok {
		h.log.Debug("pointer missed", zap.Stringer("at", pt))
		return 0, false
	}
	card := &h.slots[id].card
	card.Hidden = true
	hover := curve.Pose{
		Position: curve.Pt(card.Pose.Position.X, h.CentralControl().Y, HoverDepth),
	}
	h.sel = &selection{id: id, start: hover, hover: hover}

	h.log.Debug("card selected", zap.Int("id", int(id)), zap.String("name", card.Name))
	h.emit(Event{Kind: RaycastBlocked, Card: id, Blocked: true})
	h.emit(Event{Kind: Selected, Card: id})
	return id, true
}

// Drag moves the hover copy of the selected card by the pointer's offset from
// from to to, relative to where it was lifted. Depth is unaffected.
func (h *Hand) Drag(from, to curve.Point) error {
	if h.sel == nil {
		return fmt.Errorf("drag: %w", ErrNoSelection)
	}
	d := to.Sub(from)
	d.Z = 0
	h.sel.hover.Position = h.sel.start.Position.Translate(d)
	return nil
}

// PointerUp puts the selected card back into the hand.
func (h *Hand) PointerUp() error {
	if h.sel == nil {
		return fmt.Errorf("release: %w", ErrNoSelection)
	}
	id := h.sel.id
	h.sel = nil
	h.slots[id].card.Hidden = false

	h.log.Debug("card released", zap.Int("id", int(id)))
	h.emit(Event{Kind: RaycastBlocked, Card: id, Blocked: false})
	h.emit(Event{Kind: Released, Card: id})
	return nil
}

// Selection returns the lifted card and the pose of its hover copy.
func (h *Hand) Selection() (CardID, curve.Pose, bool) {
	if h.sel == nil {
		return 0, curve.Pose{}, false
	}
	return h.sel.id, h.sel.hover, true
}
