package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/cardworks/fivehundred/internal/randutil"
)

// DefaultTargetScore ends the match once a team reaches +500 or -500.
const DefaultTargetScore = 500

// Config configures a match.
type Config struct {
	// Seed drives every shuffle in the match; identical seeds and action
	// sequences reproduce identical states.
	Seed int64

	// TargetScore is the winning (and, negated, losing) threshold;
	// defaults to DefaultTargetScore.
	TargetScore int

	Logger *log.Logger
}

// Game runs successive rounds with a rotating dealer, accumulating team
// scores until a team reaches the target (or its negation). Rounds are
// owned exclusively by the game and replaced wholesale at round boundary.
type Game struct {
	logger *log.Logger
	rng    *rand.Rand
	judger *Judger

	round   *Round
	boardID int
	scores  [2]int
	target  int
	actions []Action
}

// New creates a match and deals its first round.
func New(cfg Config) (*Game, error) {
	if cfg.TargetScore == 0 {
		cfg.TargetScore = DefaultTargetScore
	}
	if cfg.TargetScore < 0 {
		return nil, fmt.Errorf("target score must be positive, got %d", cfg.TargetScore)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		logger: logger,
		rng:    randutil.New(cfg.Seed),
		target: cfg.TargetScore,
	}
	g.judger = NewJudger(g)
	g.boardID = g.rng.IntN(numPlayers)
	round, err := NewRound(g.boardID, g.rng)
	if err != nil {
		return nil, err
	}
	g.round = round
	return g, nil
}

// Round exposes the current round for inspection; mutation goes through
// Apply only.
func (g *Game) Round() *Round { return g.round }

// CurrentPlayer returns the seat to move.
func (g *Game) CurrentPlayer() int { return g.round.CurrentPlayer() }

// Scores returns the cumulative (N-S, E-W) score.
func (g *Game) Scores() (int, int) { return g.scores[0], g.scores[1] }

// Actions returns every action applied this match, in order.
func (g *Game) Actions() []Action { return g.actions }

// LegalActions enumerates the current player's legal actions; empty once
// the match is over.
func (g *Game) LegalActions() []Action {
	return g.judger.LegalActions()
}

// Apply executes one action for the current player, scoring and starting
// the next round when this one ends.
func (g *Game) Apply(a Action) error {
	if g.IsMatchOver() {
		return fmt.Errorf("%w: match is over", ErrProtocolViolation)
	}
	actor := g.round.CurrentPlayer()
	if err := g.round.Apply(a); err != nil {
		return err
	}
	g.actions = append(g.actions, a)
	g.logger.Debug("applied action",
		"seat", SeatName(actor), "action", a.String(), "phase", g.round.Phase().String())

	if !g.round.Over() {
		return nil
	}

	ns, ew := g.round.Points()
	g.scores[0] += ns
	g.scores[1] += ew
	g.logger.Info("round over",
		"board", g.round.BoardID(), "deltaNS", ns, "deltaEW", ew,
		"scoreNS", g.scores[0], "scoreEW", g.scores[1])

	if g.IsMatchOver() {
		return nil
	}
	g.boardID = (g.boardID + 1) % numPlayers
	round, err := NewRound(g.boardID, g.rng)
	if err != nil {
		return err
	}
	g.round = round
	return nil
}

// IsMatchOver reports whether a team has reached the target score or
// fallen to its negation.
func (g *Game) IsMatchOver() bool {
	for _, s := range g.scores {
		if s >= g.target || s <= -g.target {
			return true
		}
	}
	return false
}

// Winner returns the winning team (0 = N-S, 1 = E-W) and true once the
// match is over. A team wins by reaching the target or by the other team
// falling to its negation.
func (g *Game) Winner() (int, bool) {
	if !g.IsMatchOver() {
		return 0, false
	}
	switch {
	case g.scores[0] >= g.target || g.scores[1] <= -g.target:
		return 0, true
	default:
		return 1, true
	}
}

// PerfectInformation snapshots the current round plus match scores.
func (g *Game) PerfectInformation() PerfectInfo {
	info := g.round.PerfectInformation()
	info.Scores = g.scores
	return info
}

// ViewFor returns the given seat's visible state.
func (g *Game) ViewFor(player int) PlayerView {
	return ViewFor(g.PerfectInformation(), player)
}
