package game

import (
	"fmt"

	"github.com/cardworks/fivehundred/internal/deck"
)

// Action id layout. This is the boundary contract toward discrete-action
// consumers and must stay bit-exact:
//
//	0      reserved (never produced)
//	1      pass
//	2..27  bids in canonical order, with misère occupying id 13
//	28     open misère
//	29..70 plain card plays, one per card id 0..41
//	71..74 joker plays declared as S, C, D, H
const (
	NoBidActionID    = 0
	PassActionID     = 1
	FirstBidID       = 2
	MisereBidID      = 13
	LastBidID        = 27
	OpenMisereBidID  = 28
	FirstPlayCardID  = 29
	LastPlayCardID   = 70
	FirstJokerPlayID = 71
	LastJokerPlayID  = 74

	// NumActions is the total size of the action space.
	NumActions = 75
)

// Action is one discrete move a player can submit: pass, bid, or play a
// card. The set is closed; every action has a canonical integer id and
// DecodeAction is its two-sided inverse.
type Action interface {
	fmt.Stringer
	ID() int
	isAction()
}

// Pass declines to bid during the bidding phase.
type Pass struct{}

func (Pass) ID() int        { return PassActionID }
func (Pass) String() string { return "P" }
func (Pass) isAction()      {}

// NoDeclaration marks card plays that carry no joker suit declaration.
const NoDeclaration = deck.JokerSuit

// PlayCard plays (or, for the declarer during the exchange, discards) a
// single card. Declared is the suit the joker represents for this trick:
// chosen by the leader, forced to the led suit when following, and
// NoDeclaration for every non-joker play.
type PlayCard struct {
	Card     deck.Card
	Declared deck.Suit
}

// PlayOf builds the play action for a card. A joker play always carries a
// declaration in the id space, so the joker defaults to spades here; use
// JokerPlay when the declaration matters.
func PlayOf(card deck.Card) PlayCard {
	if card.IsJoker() {
		return JokerPlay(deck.Spades)
	}
	return PlayCard{Card: card, Declared: NoDeclaration}
}

// JokerPlay builds the joker play declared as the given suit.
func JokerPlay(declared deck.Suit) PlayCard {
	return PlayCard{Card: deck.Joker, Declared: declared}
}

func (p PlayCard) ID() int {
	if p.Card.IsJoker() {
		return FirstJokerPlayID + int(p.Declared)
	}
	return FirstPlayCardID + p.Card.ID()
}

func (p PlayCard) String() string {
	if p.Card.IsJoker() {
		return fmt.Sprintf("JK(%s)", p.Declared)
	}
	return p.Card.String()
}

func (p PlayCard) isAction() {}

// DecodeAction maps a canonical action id back to its action. Id 0 is
// reserved and decodes to an error, as does anything outside [0,74].
func DecodeAction(id int) (Action, error) {
	switch {
	case id == PassActionID:
		return Pass{}, nil
	case id >= FirstBidID && id <= OpenMisereBidID:
		return bidFromID(id)
	case id >= FirstPlayCardID && id <= LastPlayCardID:
		card, err := deck.CardFromID(id - FirstPlayCardID)
		if err != nil {
			return nil, fmt.Errorf("%w: %d", ErrInvalidActionID, id)
		}
		return PlayOf(card), nil
	case id >= FirstJokerPlayID && id <= LastJokerPlayID:
		return JokerPlay(deck.Suit(id - FirstJokerPlayID)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidActionID, id)
	}
}
