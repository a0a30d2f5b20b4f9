package bot

import (
	"github.com/charmbracelet/log"

	"github.com/cardworks/fivehundred/internal/game"
)

// Passer always passes when it may, and otherwise plays the first legal
// action. Four passers produce an endless run of all-pass rounds, which
// makes the bot useful as a deterministic baseline in tests.
type Passer struct {
	logger *log.Logger
}

// NewPasser creates a passer agent.
func NewPasser(logger *log.Logger) *Passer {
	return &Passer{logger: logger}
}

func (b *Passer) Act(view game.PlayerView, legal []game.Action) game.Action {
	if len(legal) == 0 {
		return nil
	}
	for _, a := range legal {
		if _, ok := a.(game.Pass); ok {
			return a
		}
	}
	return legal[0]
}
