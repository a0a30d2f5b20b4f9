package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardworks/fivehundred/internal/deck"
	"github.com/cardworks/fivehundred/internal/randutil"
)

func TestPerfectInformationDuringBidding(t *testing.T) {
	g, err := New(Config{Seed: 13})
	require.NoError(t, err)
	r := g.Round()

	first := r.CurrentPlayer()
	require.NoError(t, g.Apply(Pass{}))
	second := r.CurrentPlayer()
	require.NoError(t, g.Apply(mustBid(t, 6, deck.TrumpSpades)))

	info := g.PerfectInformation()
	assert.Equal(t, r.BoardID(), info.BoardID)
	assert.Equal(t, PhaseBidding, info.Phase)
	assert.Equal(t, 3, info.MoveCount) // deal, pass, bid

	require.Len(t, info.Bids[first], 1)
	assert.Equal(t, PassActionID, info.Bids[first][0].ID())
	require.Len(t, info.Bids[second], 1)
	assert.Equal(t, mustBid(t, 6, deck.TrumpSpades).ID(), info.Bids[second][0].ID())

	// The contract is not published until the auction resolves.
	assert.Nil(t, info.Contract)
	assert.Equal(t, second, info.Declarer)
	assert.True(t, info.PlayersPassed[first])
	assert.Equal(t, -1, info.OpenMisereDeclarer)
}

func TestPerfectInformationCopiesHands(t *testing.T) {
	g, err := New(Config{Seed: 13})
	require.NoError(t, err)
	r := g.Round()

	info := g.PerfectInformation()
	for p := 0; p < numPlayers; p++ {
		require.Equal(t, r.Hand(p), info.Hands[p])
	}
	require.Equal(t, r.Kitty(), info.Kitty)

	// Mutating the snapshot never touches the round.
	originalHand := append([]deck.Card(nil), r.Hand(0)...)
	originalKitty := append([]deck.Card(nil), r.Kitty()...)
	for i := range info.Hands[0] {
		info.Hands[0][i] = deck.Joker
	}
	for i := range info.Kitty {
		info.Kitty[i] = deck.Joker
	}
	assert.Equal(t, originalHand, r.Hand(0))
	assert.Equal(t, originalKitty, r.Kitty())
}

func TestPerfectInformationTrickBySeat(t *testing.T) {
	hands := [numPlayers][]deck.Card{
		{card(deck.King, deck.Spades), card(deck.Ace, deck.Clubs)},
		{card(deck.Ace, deck.Spades), card(deck.Four, deck.Hearts)},
		{card(deck.Six, deck.Clubs), card(deck.Seven, deck.Clubs)},
		{card(deck.Ten, deck.Diamonds), card(deck.Nine, deck.Diamonds)},
	}
	r := scriptedRound(t, 3, 0, mustBid(t, 8, deck.NoTrump), hands)

	require.NoError(t, r.Apply(PlayOf(card(deck.King, deck.Spades))))
	require.NoError(t, r.Apply(PlayOf(card(deck.Ace, deck.Spades))))

	info := r.PerfectInformation()
	assert.Equal(t, 0, info.Lead)
	require.NotNil(t, info.TrickCards[0])
	assert.Equal(t, card(deck.King, deck.Spades), *info.TrickCards[0])
	require.NotNil(t, info.TrickCards[1])
	assert.Equal(t, card(deck.Ace, deck.Spades), *info.TrickCards[1])
	assert.Nil(t, info.TrickCards[2])
	assert.Nil(t, info.TrickCards[3])
}

func TestOpenMisereExposureAfterFirstTrick(t *testing.T) {
	hands := [numPlayers][]deck.Card{
		{card(deck.King, deck.Spades), card(deck.Ace, deck.Clubs)},
		{card(deck.Ace, deck.Spades), card(deck.Four, deck.Hearts)},
		{card(deck.Six, deck.Clubs), card(deck.Seven, deck.Clubs)},
		{card(deck.Ten, deck.Diamonds), card(deck.Nine, deck.Diamonds)},
	}
	r := scriptedRound(t, 3, 1, OpenMisereBid(), hands)

	info := r.PerfectInformation()
	assert.Equal(t, -1, info.OpenMisereDeclarer)

	// Declarer E leads; partner W sits out, so S and N complete the trick.
	require.NoError(t, r.Apply(PlayOf(card(deck.Ace, deck.Spades))))
	info = r.PerfectInformation()
	assert.Equal(t, -1, info.OpenMisereDeclarer, "hand stays hidden until a trick resolves")

	require.NoError(t, r.Apply(PlayOf(card(deck.Six, deck.Clubs))))
	require.NoError(t, r.Apply(PlayOf(card(deck.King, deck.Spades))))

	info = r.PerfectInformation()
	assert.Equal(t, 1, info.OpenMisereDeclarer)

	// Other seats now see the declarer's remaining cards; the declarer
	// sees no mirror of its own exposure.
	view := ViewFor(info, 0)
	assert.Equal(t, r.Hand(1), view.DeclarerHand)
	own := ViewFor(info, 1)
	assert.Nil(t, own.DeclarerHand)
}

func TestViewForHidesOtherHands(t *testing.T) {
	g, err := New(Config{Seed: 19})
	require.NoError(t, err)
	r := g.Round()

	seat := r.CurrentPlayer()
	view := g.ViewFor(seat)

	assert.Equal(t, seat, view.PlayerID)
	assert.Equal(t, r.Hand(seat), view.Hand)
	assert.Equal(t, PhaseBidding, view.Phase)
	assert.Nil(t, view.DeclarerHand)
	assert.Equal(t, deck.NoTrump, view.Trump)
}

func TestViewForCarriesMatchScores(t *testing.T) {
	g, err := New(Config{Seed: 21, TargetScore: 10000})
	require.NoError(t, err)
	rng := randutil.Stream(21, 99)

	r := g.Round()
	require.NoError(t, g.Apply(mustBid(t, 6, deck.TrumpSpades)))
	for !r.Over() {
		legal := g.LegalActions()
		require.NoError(t, g.Apply(legal[rng.IntN(len(legal))]))
	}

	ns, ew := g.Scores()
	view := g.ViewFor(0)
	assert.Equal(t, [2]int{ns, ew}, view.Scores)
}
