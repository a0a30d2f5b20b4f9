package deck

import "fmt"

// Trump identifies the effective trump of a round: one of the four suits,
// or NoTrump for no-trumps and misère contracts. The numeric order matches
// the canonical bid suit order (S, C, D, H, NT).
type Trump int8

const (
	TrumpSpades Trump = iota
	TrumpClubs
	TrumpDiamonds
	TrumpHearts
	NoTrump
)

// TrumpOf returns the trump corresponding to a natural suit.
func TrumpOf(s Suit) Trump {
	return Trump(s)
}

// Suit returns the natural trump suit and true, or false for NoTrump.
func (t Trump) Suit() (Suit, bool) {
	if t >= TrumpSpades && t <= TrumpHearts {
		return Suit(t), true
	}
	return JokerSuit, false
}

// String returns the string representation of a trump
func (t Trump) String() string {
	if s, ok := t.Suit(); ok {
		return s.String()
	}
	return "NT"
}

// ParseTrump parses "S", "C", "D", "H" or "NT".
func ParseTrump(s string) (Trump, error) {
	switch s {
	case "S":
		return TrumpSpades, nil
	case "C":
		return TrumpClubs, nil
	case "D":
		return TrumpDiamonds, nil
	case "H":
		return TrumpHearts, nil
	case "NT":
		return NoTrump, nil
	}
	return 0, fmt.Errorf("invalid trump suit %q", s)
}

// round_rank values above every natural rank (Ace is 14)
const (
	leftBowerRank  = 40
	rightBowerRank = 50
	jokerRank      = 60
)

// RoundSuit returns the suit a card counts as for follow-suit purposes
// under the given trump. The joker always counts as trump; the jack of the
// suit sharing trump's color (left bower) counts as trump. Under NoTrump
// the joker keeps its pseudo-suit: its effective suit comes from the
// declaration carried on the play, not from the card.
func (c Card) RoundSuit(t Trump) Suit {
	ts, ok := t.Suit()
	if !ok {
		return c.Suit
	}
	if c.IsJoker() {
		return ts
	}
	if c.Rank == Jack && c.Suit == ts.SameColor() {
		return ts
	}
	return c.Suit
}

// RoundRank returns the card's position in the trick-winning total order
// under the given trump: joker above right bower above left bower above
// every natural rank. Within a suit the order is strict, so a trick can
// never tie.
func (c Card) RoundRank(t Trump) int {
	if c.IsJoker() {
		return jokerRank
	}
	if ts, ok := t.Suit(); ok && c.Rank == Jack {
		if c.Suit == ts {
			return rightBowerRank
		}
		if c.Suit == ts.SameColor() {
			return leftBowerRank
		}
	}
	return int(c.Rank)
}
