package game

import "github.com/cardworks/fivehundred/internal/deck"

var seatNames = [numPlayers]string{"N", "E", "S", "W"}

// SeatName returns the compass name of a seat id.
func SeatName(id int) string {
	if id < 0 || id >= numPlayers {
		return "?"
	}
	return seatNames[id]
}

// TeamOf returns the team (0 = N-S, 1 = E-W) of a seat.
func TeamOf(id int) int { return id % 2 }

// Player is one seat and its hand. Cards move between hand, kitty, and
// trick records by explicit transfer; a card lives in exactly one
// container at a time.
type Player struct {
	ID   int
	Hand []deck.Card
}

func (p *Player) holds(c deck.Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

func (p *Player) holdsJoker() bool { return p.holds(deck.Joker) }

// removeFromHand transfers c out of the hand, reporting whether it was held.
func (p *Player) removeFromHand(c deck.Card) bool {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}
