package game

import "github.com/cardworks/fivehundred/internal/deck"

// PlayerView is the state visible to one seat when deciding: its own hand,
// the public auction and trick, and — under open misère after the first
// trick — the declarer's exposed hand. Agents receive copies; nothing in a
// view aliases engine state.
type PlayerView struct {
	PlayerID int
	Phase    Phase
	Hand     []deck.Card

	Bids     [numPlayers][]Action
	Contract *Bid
	Declarer int
	Trump    deck.Trump

	TrickCards  [numPlayers]*deck.Card
	Lead        int
	WonTricks   [numTricks]int
	TrickCounts [numPlayers]int

	PlayersPassed [numPlayers]bool
	Scores        [2]int

	// DeclarerHand is the exposed hand under open misère once a trick has
	// been resolved; nil otherwise.
	DeclarerHand []deck.Card
}

// Agent is an external actor, human or automated, that picks exactly one
// of the legal actions each time its seat is to move. Agents only decide;
// all state mutation stays in the engine.
type Agent interface {
	Act(view PlayerView, legal []Action) Action
}

// ViewFor narrows a perfect-information snapshot to what one seat may see.
func ViewFor(info PerfectInfo, player int) PlayerView {
	view := PlayerView{
		PlayerID:      player,
		Phase:         info.Phase,
		Hand:          info.Hands[player],
		Bids:          info.Bids,
		Contract:      info.Contract,
		Declarer:      info.Declarer,
		Trump:         deck.NoTrump,
		TrickCards:    info.TrickCards,
		Lead:          info.Lead,
		WonTricks:     info.WonTricks,
		TrickCounts:   info.TrickCounts,
		PlayersPassed: info.PlayersPassed,
		Scores:        info.Scores,
	}
	if info.Contract != nil {
		view.Trump = info.Contract.Trump()
	}
	if info.OpenMisereDeclarer >= 0 && info.OpenMisereDeclarer != player {
		view.DeclarerHand = info.Hands[info.OpenMisereDeclarer]
	}
	return view
}
