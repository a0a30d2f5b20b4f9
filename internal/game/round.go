package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/cardworks/fivehundred/internal/deck"
)

const (
	numPlayers = 4
	numTricks  = 10
	kittySize  = 3
	handSize   = 10
)

// Phase is the derived lifecycle stage of a round.
type Phase int

const (
	PhaseBidding Phase = iota
	PhaseDiscarding
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseBidding:
		return "bid"
	case PhaseDiscarding:
		return "discard"
	case PhasePlaying:
		return "play"
	case PhaseOver:
		return "over"
	default:
		return "?"
	}
}

// Round is the core state machine of one deal of 500: bidding, the kitty
// exchange, ten tricks, and scoring. A round is owned by exactly one Game
// and mutated only through Apply.
type Round struct {
	boardID int
	dealer  *Dealer

	players [numPlayers]*Player
	kitty   []deck.Card

	moves    []Move
	passed   [numPlayers]bool
	contract *BidMove
	current  int

	// cached counters; the ledger is the source of truth and tests hold
	// the two views equivalent
	playCount   int
	trickCounts [numPlayers]int
	wonTricks   [numTricks]int // winning team per trick, -1 until resolved
}

// NewRound deals a fresh round for the given board. The board id fixes the
// dealer seat; bidding starts left of the dealer.
func NewRound(boardID int, rng *rand.Rand) (*Round, error) {
	if boardID < 0 || boardID >= numPlayers {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardID, boardID)
	}
	r := &Round{
		boardID: boardID,
		dealer:  NewDealer(rng),
	}
	for i := range r.players {
		r.players[i] = &Player{ID: i}
	}
	for i := range r.wonTricks {
		r.wonTricks[i] = -1
	}
	r.moves = append(r.moves, DealHandMove{Dealer: r.DealerID(), ShuffledDeck: r.dealer.ShuffledDeck()})
	r.current = (r.DealerID() + 1) % numPlayers

	for _, n := range dealPlan {
		for _, p := range r.players {
			r.dealer.DealTo(&p.Hand, n)
		}
		r.dealer.DealTo(&r.kitty, 1)
	}
	return r, nil
}

// BoardID returns the round's board id.
func (r *Round) BoardID() int { return r.boardID }

// DealerID returns the dealer's seat for this board.
func (r *Round) DealerID() int { return r.boardID }

// CurrentPlayer returns the seat to move. Meaningless once the round is over.
func (r *Round) CurrentPlayer() int { return r.current }

// Moves returns the append-only ledger.
func (r *Round) Moves() []Move { return r.moves }

// Hand returns the given seat's hand.
func (r *Round) Hand(player int) []deck.Card { return r.players[player].Hand }

// Kitty returns the current kitty contents.
func (r *Round) Kitty() []deck.Card { return r.kitty }

// PlayerPassed reports whether a seat has permanently passed this round.
func (r *Round) PlayerPassed(player int) bool { return r.passed[player] }

func (r *Round) passedCount() int {
	n := 0
	for _, p := range r.passed {
		if p {
			n++
		}
	}
	return n
}

// BiddingOver reports whether the auction has resolved: three seats have
// passed against a standing bid, or all four passed without one.
func (r *Round) BiddingOver() bool {
	n := r.passedCount()
	return (r.contract != nil && n >= numPlayers-1) || n == numPlayers
}

// DiscardingOver reports whether the declarer has exchanged the kitty back
// down to a ten-card hand.
func (r *Round) DiscardingOver() bool {
	if !r.BiddingOver() {
		return false
	}
	if r.contract == nil {
		return true
	}
	return len(r.players[r.contract.Player].Hand) <= handSize
}

// Over reports whether the round is terminal: ten tricks resolved, or an
// all-pass auction.
func (r *Round) Over() bool {
	if r.BiddingOver() && r.contract == nil {
		return true
	}
	return r.tricksResolved() == numTricks
}

func (r *Round) tricksResolved() int {
	n := 0
	for _, c := range r.trickCounts {
		n += c
	}
	return n
}

// Phase returns the round's derived lifecycle stage.
func (r *Round) Phase() Phase {
	switch {
	case r.Over():
		return PhaseOver
	case !r.BiddingOver():
		return PhaseBidding
	case !r.DiscardingOver():
		return PhaseDiscarding
	default:
		return PhasePlaying
	}
}

// Contract returns the standing (or final) contract bid, if any.
func (r *Round) Contract() (Bid, bool) {
	if r.contract == nil {
		return Bid{}, false
	}
	return r.contract.Bid, true
}

// DeclarerID returns the contract holder's seat, or -1.
func (r *Round) DeclarerID() int {
	if r.contract == nil {
		return -1
	}
	return r.contract.Player
}

// Trump returns the round's trump; NoTrump until a suit contract stands.
func (r *Round) Trump() deck.Trump {
	if r.contract == nil {
		return deck.NoTrump
	}
	return r.contract.Bid.Trump()
}

// FullTrickSize is the number of cards that complete a trick: four, or
// three under misère where the declarer's partner sits out.
func (r *Round) FullTrickSize() int {
	if r.contract != nil && r.contract.Bid.Misere {
		return numPlayers - 1
	}
	return numPlayers
}

// TrickCounts returns tricks won per seat.
func (r *Round) TrickCounts() [numPlayers]int { return r.trickCounts }

// WonTricks returns the winning team per resolved trick, -1 where
// unresolved.
func (r *Round) WonTricks() [numTricks]int { return r.wonTricks }

// trickPlays returns every trick play in order, derived purely from the
// ledger. Kitty discards are DiscardMoves and never appear here.
func (r *Round) trickPlays() []PlayCardMove {
	var plays []PlayCardMove
	for _, m := range r.moves {
		if pm, ok := m.(PlayCardMove); ok {
			plays = append(plays, pm)
		}
	}
	return plays
}

// TrickMoves returns the plays of the trick in progress; a just-completed
// trick stays current until the next lead.
func (r *Round) TrickMoves() []PlayCardMove {
	if !r.DiscardingOver() || r.playCount == 0 {
		return nil
	}
	full := r.FullTrickSize()
	n := r.playCount % full
	if n == 0 {
		n = full
	}
	plays := r.trickPlays()
	if len(plays) < n {
		panic(fmt.Sprintf("round: ledger holds %d trick plays, cached count %d", len(plays), r.playCount))
	}
	return plays[len(plays)-n:]
}

// completedTricks groups resolved tricks from the ledger.
func (r *Round) completedTricks() [][]PlayCardMove {
	plays := r.trickPlays()
	full := r.FullTrickSize()
	var tricks [][]PlayCardMove
	for len(plays) >= full {
		tricks = append(tricks, plays[:full])
		plays = plays[full:]
	}
	return tricks
}

// effectiveSuit is the suit a played card counts as in its trick: the
// joker counts as trump, or as its declared suit at no trumps.
func (r *Round) effectiveSuit(m PlayCardMove) deck.Suit {
	if m.Play.Card.IsJoker() {
		if ts, ok := r.Trump().Suit(); ok {
			return ts
		}
		return m.Play.Declared
	}
	return m.Play.Card.RoundSuit(r.Trump())
}

// LedSuits returns the effective suits led in completed tricks. Leading
// the joker may only declare a suit not in this set.
func (r *Round) LedSuits() map[deck.Suit]bool {
	led := make(map[deck.Suit]bool)
	for _, trick := range r.completedTricks() {
		led[r.effectiveSuit(trick[0])] = true
	}
	return led
}

// Apply executes one action for the current player. It validates phase,
// turn and card ownership before mutating anything: a failed Apply leaves
// the round untouched.
func (r *Round) Apply(a Action) error {
	switch act := a.(type) {
	case Pass:
		return r.applyPass()
	case Bid:
		return r.applyBid(act)
	case PlayCard:
		return r.applyPlay(act)
	default:
		return fmt.Errorf("%w: unknown action type %T", ErrProtocolViolation, a)
	}
}

func (r *Round) applyPass() error {
	if r.Over() {
		return fmt.Errorf("%w: pass after round is over", ErrProtocolViolation)
	}
	if r.BiddingOver() {
		return fmt.Errorf("%w: pass after bidding resolved", ErrProtocolViolation)
	}
	r.moves = append(r.moves, PassMove{Player: r.current})
	r.passed[r.current] = true
	if r.BiddingOver() && r.contract != nil {
		r.distributeKitty()
	}
	r.nextPlayer()
	return nil
}

func (r *Round) applyBid(b Bid) error {
	if r.Over() {
		return fmt.Errorf("%w: bid after round is over", ErrProtocolViolation)
	}
	if r.BiddingOver() {
		return fmt.Errorf("%w: bid after bidding resolved", ErrProtocolViolation)
	}
	if !b.valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidBid, b)
	}
	if r.contract != nil && !b.Beats(r.contract.Bid) {
		return fmt.Errorf("%w: bid %s does not beat standing %s", ErrProtocolViolation, b, r.contract.Bid)
	}
	move := BidMove{Player: r.current, Bid: b}
	r.moves = append(r.moves, move)
	r.contract = &move
	if r.BiddingOver() {
		r.distributeKitty()
	}
	r.nextPlayer()
	return nil
}

func (r *Round) applyPlay(p PlayCard) error {
	if r.Over() {
		return fmt.Errorf("%w: play after round is over", ErrProtocolViolation)
	}
	if !r.BiddingOver() {
		return fmt.Errorf("%w: play during bidding", ErrProtocolViolation)
	}
	if p.Card.IsJoker() {
		if p.Declared < deck.Spades || p.Declared > deck.Hearts {
			return fmt.Errorf("%w: joker play without declared suit", ErrProtocolViolation)
		}
	} else if p.Declared != NoDeclaration {
		return fmt.Errorf("%w: declared suit on non-joker play %s", ErrProtocolViolation, p.Card)
	}
	player := r.players[r.current]
	if !player.holds(p.Card) {
		return fmt.Errorf("%w: %s does not hold %s", ErrProtocolViolation, SeatName(r.current), p.Card)
	}

	if !r.DiscardingOver() {
		// Kitty exchange: one discard per action, turn stays with the
		// declarer until the hand is back to ten.
		player.removeFromHand(p.Card)
		r.kitty = append(r.kitty, p.Card)
		r.moves = append(r.moves, DiscardMove{Player: r.current, Card: p.Card})
		return nil
	}

	player.removeFromHand(p.Card)
	r.moves = append(r.moves, PlayCardMove{Player: r.current, Play: p})
	r.playCount++

	trick := r.TrickMoves()
	if len(trick) == r.FullTrickSize() {
		winner := r.trickWinner(trick)
		r.wonTricks[r.tricksResolved()] = TeamOf(winner)
		r.trickCounts[winner]++
		r.current = winner
	} else {
		r.nextPlayer()
	}
	return nil
}

// distributeKitty hands the kitty to the declarer, growing the hand to 13.
func (r *Round) distributeKitty() {
	declarer := r.players[r.contract.Player]
	declarer.Hand = append(declarer.Hand, r.kitty...)
	r.kitty = r.kitty[:0]
}

// nextPlayer advances the turn. During bidding, permanently-passed seats
// are skipped; during play, rotation is plain except that a misère
// declarer's partner never gets a turn.
func (r *Round) nextPlayer() {
	if r.Over() {
		return
	}
	if r.BiddingOver() {
		if !r.DiscardingOver() {
			r.current = r.contract.Player
			return
		}
		if r.contract.Bid.Misere && r.current == (r.contract.Player+1)%numPlayers {
			r.current = (r.current + 2) % numPlayers
			return
		}
		r.current = (r.current + 1) % numPlayers
		return
	}
	for {
		r.current = (r.current + 1) % numPlayers
		if !r.passed[r.current] {
			return
		}
	}
}

// trickWinner resolves a complete trick: highest round-rank of the led
// effective suit wins unless trumped; the joker is unbeatable.
func (r *Round) trickWinner(trick []PlayCardMove) int {
	if len(trick) == 0 {
		panic("round: trick resolution on empty trick")
	}
	trump := r.Trump()
	trumpSuit, hasTrump := trump.Suit()

	winning := trick[0]
	for _, m := range trick[1:] {
		switch {
		case r.effectiveSuit(m) == r.effectiveSuit(winning):
			if m.Play.Card.RoundRank(trump) > winning.Play.Card.RoundRank(trump) {
				winning = m
			}
		case hasTrump && r.effectiveSuit(m) == trumpSuit:
			winning = m
		}
	}
	return winning.Player
}

// bidAchieved reports whether the declaring side met its contract.
func (r *Round) bidAchieved() bool {
	declarer := r.contract.Player
	partner := (declarer + 2) % numPlayers
	tricks := r.trickCounts[declarer] + r.trickCounts[partner]
	if r.contract.Bid.Misere {
		return tricks == 0
	}
	return tricks >= r.contract.Bid.Amount
}

// Points returns the round's score delta as (north-south, east-west).
// The declaring side scores the full contract value, positive or negative;
// defenders collect ten per trick except against misère. An all-pass round
// scores nothing.
func (r *Round) Points() (int, int) {
	if !r.Over() || r.contract == nil {
		return 0, 0
	}
	var pts [2]int
	declarer := r.contract.Player
	value := r.contract.Bid.Points()
	if r.bidAchieved() {
		pts[TeamOf(declarer)] += value
	} else {
		pts[TeamOf(declarer)] -= value
	}
	if !r.contract.Bid.Misere {
		defenders := r.trickCounts[(declarer+1)%numPlayers] + r.trickCounts[(declarer+3)%numPlayers]
		pts[1-TeamOf(declarer)] += defenders * 10
	}
	return pts[0], pts[1]
}

// Scene renders a one-shot debugging summary of the whole round state.
func (r *Round) Scene() string {
	var b strings.Builder
	fmt.Fprintf(&b, "board %d dealer %s phase %s to-move %s\n",
		r.boardID, SeatName(r.DealerID()), r.Phase(), SeatName(r.current))
	if bid, ok := r.Contract(); ok {
		fmt.Fprintf(&b, "contract %s by %s (trump %s)\n", bid, SeatName(r.contract.Player), r.Trump())
	}
	for _, p := range r.players {
		cards := make([]string, len(p.Hand))
		for i, c := range p.Hand {
			cards[i] = c.String()
		}
		fmt.Fprintf(&b, "%s: %s\n", SeatName(p.ID), strings.Join(cards, " "))
	}
	kitty := make([]string, len(r.kitty))
	for i, c := range r.kitty {
		kitty[i] = c.String()
	}
	fmt.Fprintf(&b, "kitty: %s\n", strings.Join(kitty, " "))
	if trick := r.TrickMoves(); len(trick) > 0 {
		plays := make([]string, len(trick))
		for i, m := range trick {
			plays[i] = m.String()
		}
		fmt.Fprintf(&b, "trick: %s\n", strings.Join(plays, ", "))
	}
	fmt.Fprintf(&b, "tricks won: N-S %d, E-W %d\n",
		r.trickCounts[0]+r.trickCounts[2], r.trickCounts[1]+r.trickCounts[3])
	return b.String()
}
