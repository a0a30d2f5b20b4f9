package game

import (
	rand "math/rand/v2"

	"github.com/cardworks/fivehundred/internal/deck"
)

// dealPlan is the fixed tranche sizes dealt to each seat; one kitty card
// follows each tranche, so the kitty ends with exactly three cards.
var dealPlan = [...]int{3, 4, 3}

// Dealer shuffles a 43-card deck with an explicit, caller-seeded generator
// and deals from the top of its stock. All randomness in a round lives here.
type Dealer struct {
	shuffled []deck.Card
	stock    []deck.Card
}

// NewDealer shuffles a fresh deck with rng.
func NewDealer(rng *rand.Rand) *Dealer {
	cards := deck.Deck()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	stock := make([]deck.Card, len(cards))
	copy(stock, cards)
	return &Dealer{shuffled: cards, stock: stock}
}

// ShuffledDeck returns the post-shuffle deck order recorded in the ledger.
func (d *Dealer) ShuffledDeck() []deck.Card { return d.shuffled }

// StockRemaining returns the number of undealt cards.
func (d *Dealer) StockRemaining() int { return len(d.stock) }

// DealTo transfers n cards from the stock to pile. The fixed deal plan
// consumes the stock exactly, so running out is an engine bug.
func (d *Dealer) DealTo(pile *[]deck.Card, n int) {
	for i := 0; i < n; i++ {
		if len(d.stock) == 0 {
			panic("dealer: stock exhausted mid-deal")
		}
		card := d.stock[len(d.stock)-1]
		d.stock = d.stock[:len(d.stock)-1]
		*pile = append(*pile, card)
	}
}
