package deck

import "fmt"

// Suit represents a card suit. The order (spades, clubs, diamonds, hearts)
// is the canonical bidding order and drives card and action ids.
type Suit int8

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
	// JokerSuit is the pseudo-suit of the joker, which belongs to no
	// natural suit until a trump (or declaration) binds it.
	JokerSuit
)

// NumSuits is the number of natural suits.
const NumSuits = 4

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case JokerSuit:
		return "JK"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// SameColor returns the other suit of the same color. The jack of this
// suit is the left bower when the returned suit is trump.
func (s Suit) SameColor() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Diamonds:
		return Hearts
	case Hearts:
		return Diamonds
	default:
		return JokerSuit
	}
}

// Rank represents a card rank. The 500 deck starts at four: red suits run
// 4..A, black suits 5..A, and twos and threes are never present.
type Rank int8

const (
	Four Rank = iota + 4
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Four && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents one of the 43 cards of a 500 deck. Cards are immutable
// value objects; the joker is Card{Suit: JokerSuit}.
type Card struct {
	Suit Suit
	Rank Rank
}

// Joker is the single joker card, card id 42.
var Joker = Card{Suit: JokerSuit}

// DeckSize is the total number of cards: ten per black suit, eleven per
// red suit, plus the joker.
const DeckSize = 43

// JokerID is the canonical card id of the joker.
const JokerID = DeckSize - 1

// IsJoker returns true for the joker.
func (c Card) IsJoker() bool {
	return c.Suit == JokerSuit
}

// ID returns the stable card ordinal in [0,42]. The deck is rank-major:
// 4D=0, 4H=1, then 5S..AH in suit order S,C,D,H, joker last.
func (c Card) ID() int {
	if c.IsJoker() {
		return JokerID
	}
	if c.Rank == Four {
		if c.Suit == Diamonds {
			return 0
		}
		return 1
	}
	return 2 + 4*int(c.Rank-Five) + int(c.Suit)
}

// CardFromID returns the card with the given canonical id.
func CardFromID(id int) (Card, error) {
	if id < 0 || id >= DeckSize {
		return Card{}, fmt.Errorf("card id %d out of range [0,%d]", id, DeckSize-1)
	}
	if id == JokerID {
		return Joker, nil
	}
	if id < 2 {
		return Card{Suit: []Suit{Diamonds, Hearts}[id], Rank: Four}, nil
	}
	return Card{Suit: Suit((id - 2) % 4), Rank: Five + Rank((id-2)/4)}, nil
}

// String returns the card as rank then suit, e.g. "5S", "TH"; the joker
// renders as "JK".
func (c Card) String() string {
	if c.IsJoker() {
		return "JK"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Deck returns all 43 cards in canonical order. Each call returns a fresh
// slice safe for the caller to shuffle.
func Deck() []Card {
	cards := make([]Card, 0, DeckSize)
	cards = append(cards, Card{Suit: Diamonds, Rank: Four}, Card{Suit: Hearts, Rank: Four})
	for r := Five; r <= Ace; r++ {
		for s := Spades; s <= Hearts; s++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return append(cards, Joker)
}
