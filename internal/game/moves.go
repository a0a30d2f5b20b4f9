package game

import (
	"fmt"
	"strings"

	"github.com/cardworks/fivehundred/internal/deck"
)

// Move is one entry of a round's append-only ledger. The ledger is the
// authoritative derivation source for whose turn it is, whether bidding is
// over, and the contents of the current trick; the round keeps a few
// cached counters alongside it for O(1) queries.
type Move interface {
	fmt.Stringer
	isMove()
}

// DealHandMove records the shuffled deck at the start of a round.
type DealHandMove struct {
	Dealer       int
	ShuffledDeck []deck.Card
}

func (m DealHandMove) String() string {
	cards := make([]string, len(m.ShuffledDeck))
	for i, c := range m.ShuffledDeck {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s deals [%s]", SeatName(m.Dealer), strings.Join(cards, " "))
}

func (DealHandMove) isMove() {}

// PassMove records a pass during bidding.
type PassMove struct {
	Player int
}

func (m PassMove) String() string { return fmt.Sprintf("%s passes", SeatName(m.Player)) }
func (PassMove) isMove()          {}

// BidMove records a bid during bidding; the last one standing is the
// round's contract.
type BidMove struct {
	Player int
	Bid    Bid
}

func (m BidMove) String() string { return fmt.Sprintf("%s bids %s", SeatName(m.Player), m.Bid) }
func (BidMove) isMove()          {}

// DiscardMove records the declarer returning one card to the kitty during
// the exchange.
type DiscardMove struct {
	Player int
	Card   deck.Card
}

func (m DiscardMove) String() string {
	return fmt.Sprintf("%s discards %s", SeatName(m.Player), m.Card)
}

func (DiscardMove) isMove() {}

// PlayCardMove records a card played to a trick.
type PlayCardMove struct {
	Player int
	Play   PlayCard
}

func (m PlayCardMove) String() string { return fmt.Sprintf("%s plays %s", SeatName(m.Player), m.Play) }
func (PlayCardMove) isMove()          {}
