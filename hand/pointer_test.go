package hand

import (
	"math"
	"testing"

	"github.com/cardonline/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeCards() (*Hand, []CardID) {
	h := New()
	ids := []CardID{h.Draw("Fireball"), h.Draw("Frost Nova"), h.Draw("Arcane Shield")}
	return h, ids
}

func TestPointerSelect(t *testing.T) {
	h, ids := threeCards()

	id, ok := h.PointerDown(curve.Pt(0.1, 1.6, 0))
	require.True(t, ok)
	assert.Equal(t, ids[1], id)

	card, _ := h.Card(id)
	assert.True(t, card.Hidden)

	sel, hover, ok := h.Selection()
	require.True(t, ok)
	assert.Equal(t, id, sel)
	assert.Equal(t, curve.Pt(0, 2, HoverDepth), hover.Position)

	t.Run("drag", func(t *testing.T) {
		require.NoError(t, h.Drag(curve.Pt(0, 1.5, 0), curve.Pt(1, 0.5, 7)))
		_, hover, _ := h.Selection()
		assert.Equal(t, curve.Pt(1, 1, HoverDepth), hover.Position)

		// Offsets are relative to where the card was lifted.
		require.NoError(t, h.Drag(curve.Pt(0, 1.5, 0), curve.Pt(0, 1.5, 0)))
		_, hover, _ = h.Selection()
		assert.Equal(t, curve.Pt(0, 2, HoverDepth), hover.Position)
	})

	t.Run("hidden cards can't be hit", func(t *testing.T) {
		_, ok := h.CardAt(curve.Pt(0, 1.5, 0))
		assert.False(t, ok)
	})

	require.NoError(t, h.PointerUp())
	card, _ = h.Card(id)
	assert.False(t, card.Hidden)
	_, _, ok = h.Selection()
	assert.False(t, ok)

	assert.ErrorIs(t, h.PointerUp(), ErrNoSelection)
	assert.ErrorIs(t, h.Drag(curve.Pt(0, 0, 0), curve.Pt(1, 1, 0)), ErrNoSelection)
}

func TestPointerMiss(t *testing.T) {
	h, _ := threeCards()
	_, ok := h.PointerDown(curve.Pt(0, -5, 0))
	assert.False(t, ok)
	_, _, ok = h.Selection()
	assert.False(t, ok)
}

func TestPointerRotatedCard(t *testing.T) {
	h, ids := threeCards()
	card, _ := h.Card(ids[0])
	th := card.Pose.Angle
	require.InDelta(t, math.Atan2(6, 3), th, 1e-12)

	// Inside along the card's own y axis, outside along its x axis, at the
	// same distance from its center.
	sin, cos := math.Sincos(th)
	inside := card.Pose.Position.Translate(curve.Vec(-0.3*sin, 0.3*cos, 0))
	outside := card.Pose.Position.Translate(curve.Vec(0.3*cos, 0.3*sin, 0))

	id, ok := h.CardAt(inside)
	require.True(t, ok)
	assert.Equal(t, ids[0], id)

	_, ok = h.CardAt(outside)
	assert.False(t, ok)
}

func TestPointerTopmost(t *testing.T) {
	h := New(WithCurve(curve.PresetStraight.Fit(curve.Pt(-0.1, 0, 0), curve.Pt(0.1, 0, 0))))
	for range 3 {
		h.Draw("Spark")
	}
	id, ok := h.CardAt(curve.Pt(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, CardID(2), id)
}

func TestPointerEvents(t *testing.T) {
	h := New()
	var got []Event
	cancel := h.Subscribe(func(ev Event) { got = append(got, ev) })

	id := h.Draw("Fireball")
	_, ok := h.PointerDown(curve.Pt(0, 1.5, 0))
	require.True(t, ok)
	require.NoError(t, h.PointerUp())
	require.NoError(t, h.Play(id))

	assert.Equal(t, []Event{
		{Kind: Drawn, Card: id},
		{Kind: RaycastBlocked, Card: id, Blocked: true},
		{Kind: Selected, Card: id},
		{Kind: RaycastBlocked, Card: id, Blocked: false},
		{Kind: Released, Card: id},
		{Kind: Played, Card: id},
	}, got)

	t.Run("playing the selected card unblocks", func(t *testing.T) {
		got = nil
		id := h.Draw("Frost Nova")
		_, ok := h.PointerDown(curve.Pt(0, 1.5, 0))
		require.True(t, ok)
		require.NoError(t, h.Play(id))
		assert.Equal(t, Event{Kind: RaycastBlocked, Card: id, Blocked: false}, got[len(got)-2])
		_, _, ok = h.Selection()
		assert.False(t, ok)
	})

	cancel()
	got = nil
	h.Draw("Spark")
	assert.Empty(t, got)
}
