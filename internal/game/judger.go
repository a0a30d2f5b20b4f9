package game

import (
	"fmt"

	"github.com/cardworks/fivehundred/internal/deck"
)

// Judger enumerates the exact legal action set for the player to move.
// It is the single authority on legality; Round.Apply only guards phase
// and ownership. A terminal round yields an empty set, never an error.
type Judger struct {
	game *Game
}

// NewJudger creates a judger bound to a game; it follows the game's
// current round across round boundaries.
func NewJudger(g *Game) *Judger {
	return &Judger{game: g}
}

// LegalActions returns the current player's legal actions in canonical
// order, or nil when the round (or match) is terminal.
func (j *Judger) LegalActions() []Action {
	r := j.game.round
	if r == nil || r.Over() || j.game.IsMatchOver() {
		return nil
	}
	switch {
	case !r.BiddingOver():
		return biddingActions(r)
	case !r.DiscardingOver():
		return discardActions(r)
	default:
		return playActions(r)
	}
}

// biddingActions is pass plus every bid strictly above the standing one.
func biddingActions(r *Round) []Action {
	actions := []Action{Pass{}}
	next := FirstBidID
	if bid, ok := r.Contract(); ok {
		next = bid.ID() + 1
	}
	for id := next; id <= OpenMisereBidID; id++ {
		bid, err := bidFromID(id)
		if err != nil {
			panic(fmt.Sprintf("judger: bid id %d failed to decode: %v", id, err))
		}
		actions = append(actions, bid)
	}
	return actions
}

// discardActions lets the declarer shed any card; no follow constraint
// applies during the exchange.
func discardActions(r *Round) []Action {
	hand := r.players[r.current].Hand
	actions := make([]Action, 0, len(hand))
	for _, c := range hand {
		actions = append(actions, PlayOf(c))
	}
	return actions
}

func playActions(r *Round) []Action {
	hand := r.players[r.current].Hand
	trick := r.TrickMoves()

	if len(trick) > 0 && len(trick) < r.FullTrickSize() {
		return followActions(r, hand, r.effectiveSuit(trick[0]))
	}
	return leadActions(r, hand)
}

// followActions enumerates plays when a trick is underway: cards of the
// led round-suit if any are held, otherwise the whole hand (renouncing is
// unrestricted). The joker follows the led suit when it counts as trump,
// and its declaration is always forced to the led suit.
func followActions(r *Round, hand []deck.Card, led deck.Suit) []Action {
	trump := r.Trump()
	var follow []Action
	for _, c := range hand {
		if c.IsJoker() {
			if ts, ok := trump.Suit(); ok && ts == led {
				follow = append(follow, JokerPlay(led))
			}
			continue
		}
		if c.RoundSuit(trump) == led {
			follow = append(follow, PlayOf(c))
		}
	}
	if len(follow) > 0 {
		return follow
	}
	all := make([]Action, 0, len(hand))
	for _, c := range hand {
		if c.IsJoker() {
			all = append(all, JokerPlay(led))
			continue
		}
		all = append(all, PlayOf(c))
	}
	return all
}

// leadActions enumerates plays when leading. The joker may nominate any
// suit not led in a completed trick this round; a joker-only hand is
// unrestricted and offers all four.
func leadActions(r *Round, hand []deck.Card) []Action {
	if len(hand) == 1 && hand[0].IsJoker() {
		actions := make([]Action, 0, deck.NumSuits)
		for s := deck.Spades; s <= deck.Hearts; s++ {
			actions = append(actions, JokerPlay(s))
		}
		return actions
	}
	ledSuits := r.LedSuits()
	var actions []Action
	for _, c := range hand {
		if c.IsJoker() {
			for s := deck.Spades; s <= deck.Hearts; s++ {
				if !ledSuits[s] {
					actions = append(actions, JokerPlay(s))
				}
			}
			continue
		}
		actions = append(actions, PlayOf(c))
	}
	return actions
}
