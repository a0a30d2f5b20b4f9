package game

import "github.com/cardworks/fivehundred/internal/deck"

// PerfectInfo is the full perfect-information snapshot of a round, the
// boundary toward the external observation encoder. Hands and the kitty
// are copied; mutating a snapshot never touches the round.
type PerfectInfo struct {
	MoveCount     int
	BoardID       int
	DealerID      int
	CurrentPlayer int
	Phase         Phase

	// Bids holds every call (Pass or Bid) per seat in chronological order.
	Bids     [numPlayers][]Action
	Contract *Bid
	Declarer int // -1 when no contract stands

	Hands [numPlayers][]deck.Card
	Kitty []deck.Card

	// TrickCards is the current trick positioned by seat, not play order.
	TrickCards [numPlayers]*deck.Card
	Lead       int

	WonTricks     [numTricks]int // winning team per trick, -1 unresolved
	TrickCounts   [numPlayers]int
	PlayersPassed [numPlayers]bool

	// Scores is the cumulative match score (N-S, E-W), filled by Game.
	Scores [2]int

	// OpenMisereDeclarer is the declarer's seat once an open misère
	// contract has at least one resolved trick, making their hand public;
	// -1 otherwise.
	OpenMisereDeclarer int
}

// PerfectInformation snapshots the round.
func (r *Round) PerfectInformation() PerfectInfo {
	info := PerfectInfo{
		MoveCount:          len(r.moves),
		BoardID:            r.boardID,
		DealerID:           r.DealerID(),
		CurrentPlayer:      r.current,
		Phase:              r.Phase(),
		Declarer:           r.DeclarerID(),
		Lead:               (r.DealerID() + 1) % numPlayers,
		WonTricks:          r.wonTricks,
		TrickCounts:        r.trickCounts,
		PlayersPassed:      r.passed,
		OpenMisereDeclarer: -1,
	}

	for _, m := range r.moves {
		switch call := m.(type) {
		case PassMove:
			info.Bids[call.Player] = append(info.Bids[call.Player], Pass{})
		case BidMove:
			info.Bids[call.Player] = append(info.Bids[call.Player], call.Bid)
		}
	}

	if bid, ok := r.Contract(); ok && r.BiddingOver() {
		info.Contract = &bid
	}

	for i, p := range r.players {
		info.Hands[i] = append([]deck.Card(nil), p.Hand...)
	}
	info.Kitty = append([]deck.Card(nil), r.kitty...)

	if r.DiscardingOver() && r.BiddingOver() {
		trick := r.TrickMoves()
		for _, m := range trick {
			card := m.Play.Card
			info.TrickCards[m.Player] = &card
		}
		if len(trick) > 0 {
			info.Lead = trick[0].Player
		} else {
			info.Lead = r.current
		}
	}

	if bid, ok := r.Contract(); ok && bid.Open && bid.Misere && r.tricksResolved() > 0 {
		info.OpenMisereDeclarer = r.contract.Player
	}

	return info
}
