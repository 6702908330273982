package hand

import "fmt"

type EventKind int

const (
	// Drawn is sent after a card joined the hand.
	Drawn EventKind = iota
	// Played is sent after a card left the hand.
	Played
	// Selected is sent when a pointer lifts a card.
	Selected
	// Released is sent when the lifted card is let go.
	Released
	// RaycastBlocked is sent when pointer hits on other objects should be
	// suspended (Blocked set) or resumed, around a selection.
	RaycastBlocked
)

func (k EventKind) String() string {
	switch k {
	case Drawn:
		return "drawn"
	case Played:
		return "played"
	case Selected:
		return "selected"
	case Released:
		return "released"
	case RaycastBlocked:
		return "raycast_blocked"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

type Event struct {
	Kind    EventKind
	Card    CardID
	Blocked bool
}

// Subscribe registers fn to be called synchronously for every event, in the
// order events occur. The returned function removes the subscription.
func (h *Hand) Subscribe(fn func(Event)) (cancel func()) {
	i := len(h.subs)
	h.subs = append(h.subs, fn)
	return func() { h.subs[i] = nil }
}

func (h *Hand) emit(ev Event) {
	for _, fn := range h.subs {
		if fn != nil {
			fn(ev)
		}
	}
}
