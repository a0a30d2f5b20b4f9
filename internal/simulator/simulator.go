// Package simulator plays batches of matches between built-in agents and
// aggregates the outcomes.
package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/cardworks/fivehundred/internal/bot"
	"github.com/cardworks/fivehundred/internal/game"
	"github.com/cardworks/fivehundred/internal/randutil"
	"github.com/cardworks/fivehundred/internal/statistics"
)

// Config holds configuration for running simulations.
type Config struct {
	Matches     int
	Seed        int64
	TargetScore int
	Agents      [4]string // agent type per seat, indexed by seat id
	Timeout     time.Duration
	Parallelism int
	RoundLimit  int
	Logger      *log.Logger
	Clock       quartz.Clock
	Monitor     MatchMonitor
}

// Simulator runs match simulations.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Monitor == nil {
		config.Monitor = NullMatchMonitor{}
	}
	if config.Parallelism < 1 {
		config.Parallelism = 1
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregate results. Matches run
// concurrently up to the configured parallelism; each match derives its
// own seed so results do not depend on scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	s.config.Monitor.OnRunStart(s.config.Matches)

	var mu sync.Mutex
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.Parallelism)

	for match := 0; match < s.config.Matches; match++ {
		matchSeed := s.config.Seed + int64(match)
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playMatch(matchSeed)
			if err != nil {
				return fmt.Errorf("match with seed %d: %w", matchSeed, err)
			}
			mu.Lock()
			stats.Add(result)
			mu.Unlock()
			s.config.Monitor.OnMatchComplete(result)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Monitor.OnRunComplete(stats)
	return stats, nil
}

// playMatch plays a single match to completion.
func (s *Simulator) playMatch(matchSeed int64) (statistics.MatchResult, error) {
	g, err := game.New(game.Config{
		Seed:        matchSeed,
		TargetScore: s.config.TargetScore,
		Logger:      s.config.Logger,
	})
	if err != nil {
		return statistics.MatchResult{}, err
	}

	// Agents share an RNG stream separate from the game's shuffle stream.
	botRng := randutil.Stream(matchSeed, 1)
	var agents [4]game.Agent
	for seat, name := range s.config.Agents {
		agent, err := newAgent(name, botRng, s.config.Logger)
		if err != nil {
			return statistics.MatchResult{}, err
		}
		agents[seat] = agent
	}

	result := statistics.MatchResult{Seed: matchSeed}
	for !g.IsMatchOver() {
		legal := g.LegalActions()
		if len(legal) == 0 {
			return result, fmt.Errorf("no legal actions in non-terminal state (phase %s)", g.Round().Phase())
		}
		actor := g.CurrentPlayer()

		action, err := s.decide(agents[actor], g.ViewFor(actor), legal)
		if err != nil {
			return result, fmt.Errorf("seat %s: %w", game.SeatName(actor), err)
		}

		round := g.Round()
		if err := g.Apply(action); err != nil {
			return result, fmt.Errorf("seat %s played %s: %w", game.SeatName(actor), action, err)
		}

		if round.Over() {
			result.Rounds++
			s.tallyRound(round, &result)
			if s.config.RoundLimit > 0 && result.Rounds >= s.config.RoundLimit && !g.IsMatchOver() {
				return result, fmt.Errorf("round limit %d reached without a winner", s.config.RoundLimit)
			}
		}
	}

	winner, ok := g.Winner()
	if !ok {
		return result, fmt.Errorf("match over without a winner")
	}
	result.Winner = winner
	result.FinalNS, result.FinalEW = g.Scores()
	return result, nil
}

// tallyRound folds a finished round's contract outcome into the result.
func (s *Simulator) tallyRound(round *game.Round, result *statistics.MatchResult) {
	contract, ok := round.Contract()
	if !ok {
		result.AllPassRounds++
		return
	}
	if contract.Misere {
		result.MisereContracts++
	}
	declarerTeam := game.TeamOf(round.DeclarerID())
	ns, ew := round.Points()
	declarerPoints := ns
	if declarerTeam == 1 {
		declarerPoints = ew
	}
	if declarerPoints > 0 {
		result.ContractsMade++
	} else {
		result.ContractsFailed++
	}
}

// decide asks an agent for its action, abandoning the match if the agent
// does not answer within the timeout.
func (s *Simulator) decide(agent game.Agent, view game.PlayerView, legal []game.Action) (game.Action, error) {
	if s.config.Timeout <= 0 {
		return agent.Act(view, legal), nil
	}

	actionCh := make(chan game.Action, 1)
	go func() {
		actionCh <- agent.Act(view, legal)
	}()

	timeoutFired := make(chan struct{})
	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		close(timeoutFired)
	})
	defer timer.Stop()

	select {
	case action := <-actionCh:
		return action, nil
	case <-timeoutFired:
		return nil, fmt.Errorf("decision timed out after %v", s.config.Timeout)
	}
}

// newAgent creates a built-in agent of the named type.
func newAgent(name string, rng *rand.Rand, logger *log.Logger) (game.Agent, error) {
	switch name {
	case "random":
		return bot.NewRandom(rng, logger), nil
	case "passer":
		return bot.NewPasser(logger), nil
	default:
		return nil, fmt.Errorf("unknown agent type %q", name)
	}
}
