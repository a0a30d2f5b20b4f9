package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardworks/fivehundred/internal/game"
	"github.com/cardworks/fivehundred/internal/randutil"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRandomPicksLegalAction(t *testing.T) {
	agent := NewRandom(randutil.New(1), testLogger())

	g, err := game.New(game.Config{Seed: 1})
	require.NoError(t, err)

	for i := 0; i < 50 && !g.IsMatchOver(); i++ {
		legal := g.LegalActions()
		require.NotEmpty(t, legal)

		action := agent.Act(g.ViewFor(g.CurrentPlayer()), legal)
		require.NotNil(t, action)
		assert.Contains(t, legal, action)
		require.NoError(t, g.Apply(action))
	}
}

func TestRandomIsSeedDeterministic(t *testing.T) {
	legal := []game.Action{game.Pass{}, game.MisereBid(), game.OpenMisereBid()}

	a := NewRandom(randutil.New(9), testLogger())
	b := NewRandom(randutil.New(9), testLogger())
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Act(game.PlayerView{}, legal), b.Act(game.PlayerView{}, legal))
	}
}

func TestPasserPrefersPass(t *testing.T) {
	agent := NewPasser(testLogger())

	legal := []game.Action{game.MisereBid(), game.Pass{}}
	action := agent.Act(game.PlayerView{}, legal)
	assert.Equal(t, game.PassActionID, action.ID())
}

func TestPasserFallsBackToFirstAction(t *testing.T) {
	agent := NewPasser(testLogger())

	legal := []game.Action{game.MisereBid(), game.OpenMisereBid()}
	action := agent.Act(game.PlayerView{}, legal)
	assert.Equal(t, game.MisereBid().ID(), action.ID())
}
