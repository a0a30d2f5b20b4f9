package game

import (
	"fmt"

	"github.com/cardworks/fivehundred/internal/deck"
)

// Bid amounts run from six to ten tricks.
const (
	MinBidAmount = 6
	MaxBidAmount = 10
)

// Bid is a contract proposal: a trick count and trump suit, or one of the
// two misère variants. Bids are totally ordered by their action id; a bid
// beats every bid with a smaller id.
type Bid struct {
	Amount int
	Suit   deck.Trump
	Misere bool
	Open   bool
}

// NewBid builds a suit (or no-trump) bid, validating its shape.
func NewBid(amount int, suit deck.Trump) (Bid, error) {
	if amount < MinBidAmount || amount > MaxBidAmount {
		return Bid{}, fmt.Errorf("%w: amount %d outside [%d,%d]", ErrInvalidBid, amount, MinBidAmount, MaxBidAmount)
	}
	if suit < deck.TrumpSpades || suit > deck.NoTrump {
		return Bid{}, fmt.Errorf("%w: unknown suit %d", ErrInvalidBid, suit)
	}
	return Bid{Amount: amount, Suit: suit}, nil
}

// MisereBid undertakes to win zero tricks; the declarer's partner sits out.
func MisereBid() Bid {
	return Bid{Amount: MaxBidAmount, Suit: deck.NoTrump, Misere: true}
}

// OpenMisereBid is misère with the declarer's hand exposed once play starts.
func OpenMisereBid() Bid {
	return Bid{Amount: MaxBidAmount, Suit: deck.NoTrump, Misere: true, Open: true}
}

// valid reports whether the bid could have been produced by a constructor.
func (b Bid) valid() bool {
	if b.Misere {
		return b.Amount == MaxBidAmount && b.Suit == deck.NoTrump
	}
	return b.Amount >= MinBidAmount && b.Amount <= MaxBidAmount &&
		b.Suit >= deck.TrumpSpades && b.Suit <= deck.NoTrump && !b.Open
}

// Suit base values for a six-level bid; each extra trick adds 100.
var trumpBasePoints = [5]int{40, 60, 80, 100, 120}

// Points returns the fixed contract value of the bid.
func (b Bid) Points() int {
	if b.Misere {
		if b.Open {
			return 500
		}
		return 250
	}
	return trumpBasePoints[b.Suit] + 100*(b.Amount-MinBidAmount)
}

// ID returns the bid's canonical action id. Suit bids pack as
// 2 + 5*(amount-6) + suit, shifted by one past the misère slot at 13.
func (b Bid) ID() int {
	if b.Misere {
		if b.Open {
			return OpenMisereBidID
		}
		return MisereBidID
	}
	id := FirstBidID + 5*(b.Amount-MinBidAmount) + int(b.Suit)
	if id >= MisereBidID {
		id++
	}
	return id
}

// Beats reports whether b strictly outranks other in the canonical order.
func (b Bid) Beats(other Bid) bool {
	return b.ID() > other.ID()
}

// Trump returns the trump the bid fixes when it becomes the contract.
// Misère plays at no trumps.
func (b Bid) Trump() deck.Trump {
	if b.Misere {
		return deck.NoTrump
	}
	return b.Suit
}

func (b Bid) String() string {
	if b.Misere {
		if b.Open {
			return "OM"
		}
		return "M"
	}
	return fmt.Sprintf("%d%s", b.Amount, b.Suit)
}

func (b Bid) isAction() {}

// bidFromID inverts Bid.ID for ids in [2,28].
func bidFromID(id int) (Bid, error) {
	switch id {
	case MisereBidID:
		return MisereBid(), nil
	case OpenMisereBidID:
		return OpenMisereBid(), nil
	}
	if id < FirstBidID || id > LastBidID {
		return Bid{}, fmt.Errorf("%w: %d is not a bid id", ErrInvalidActionID, id)
	}
	n := id - FirstBidID
	if id > MisereBidID {
		n--
	}
	return Bid{Amount: MinBidAmount + n/5, Suit: deck.Trump(n % 5)}, nil
}
