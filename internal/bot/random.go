// Package bot ships the built-in agents the simulation harness seats at
// the table. They pick among the judger's legal actions only; none of them
// carries game knowledge beyond the view they are handed.
package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/cardworks/fivehundred/internal/game"
)

// Random picks uniformly among the legal actions.
type Random struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandom creates a random agent with its own seeded generator.
func NewRandom(rng *rand.Rand, logger *log.Logger) *Random {
	return &Random{rng: rng, logger: logger}
}

func (b *Random) Act(view game.PlayerView, legal []game.Action) game.Action {
	if len(legal) == 0 {
		return nil
	}
	action := legal[b.rng.IntN(len(legal))]
	b.logger.Debug("random agent acting",
		"seat", game.SeatName(view.PlayerID), "action", action.String(), "choices", len(legal))
	return action
}
