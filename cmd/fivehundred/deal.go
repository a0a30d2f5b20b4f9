package main

import (
	"fmt"
	"time"

	"github.com/cardworks/fivehundred/internal/game"
	"github.com/cardworks/fivehundred/internal/randutil"
)

// DealCmd deals a single board and prints it, useful for eyeballing
// shuffles and reproducing seeds.
type DealCmd struct {
	Seed  *int64 `kong:"help='Deterministic RNG seed (0 uses wall clock)'"`
	Board int    `kong:"default='0',help='Board id, 0-3 (sets the dealer seat)'"`
}

func (c *DealCmd) Run() error {
	seed := time.Now().UnixNano()
	if c.Seed != nil && *c.Seed != 0 {
		seed = *c.Seed
	}

	round, err := game.NewRound(c.Board, randutil.New(seed))
	if err != nil {
		return err
	}

	fmt.Printf("seed %d\n", seed)
	fmt.Print(round.Scene())
	return nil
}
