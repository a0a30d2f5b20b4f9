// Package statistics aggregates match outcomes across a simulation run.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// MatchResult is the outcome of a single simulated match.
type MatchResult struct {
	Seed    int64 // RNG seed for this match (for replay)
	Rounds  int   // rounds played before a team reached the target
	Winner  int   // winning team: 0 = N-S, 1 = E-W
	FinalNS int
	FinalEW int

	ContractsMade   int // contracts the declaring side fulfilled
	ContractsFailed int // contracts that went down
	AllPassRounds   int // rounds thrown in without a bid
	MisereContracts int // misère or open misère contracts played
}

// Statistics tracks aggregate results over many matches.
type Statistics struct {
	Matches int
	NSWins  int
	EWWins  int

	TotalRounds     int
	ContractsMade   int
	ContractsFailed int
	AllPassRounds   int
	MisereContracts int

	SumRounds   float64
	SumRounds2  float64 // sum of squares for variance
	RoundCounts []float64
}

// Add folds one match result into the aggregate.
func (s *Statistics) Add(r MatchResult) {
	s.Matches++
	if r.Winner == 0 {
		s.NSWins++
	} else {
		s.EWWins++
	}
	s.TotalRounds += r.Rounds
	s.ContractsMade += r.ContractsMade
	s.ContractsFailed += r.ContractsFailed
	s.AllPassRounds += r.AllPassRounds
	s.MisereContracts += r.MisereContracts

	rounds := float64(r.Rounds)
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.RoundCounts = append(s.RoundCounts, rounds)
}

// MeanRounds returns the mean match length in rounds.
func (s *Statistics) MeanRounds() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Matches)
}

// StdDevRounds returns the sample standard deviation of match length.
func (s *Statistics) StdDevRounds() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.MeanRounds()
	variance := (s.SumRounds2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// MedianRounds returns the median match length in rounds.
func (s *Statistics) MedianRounds() float64 {
	if len(s.RoundCounts) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.RoundCounts))
	copy(sorted, s.RoundCounts)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// ContractMakeRate returns the fraction of contracts fulfilled.
func (s *Statistics) ContractMakeRate() float64 {
	total := s.ContractsMade + s.ContractsFailed
	if total == 0 {
		return 0
	}
	return float64(s.ContractsMade) / float64(total)
}

// NSWinRate returns the fraction of matches won by N-S.
func (s *Statistics) NSWinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.NSWins) / float64(s.Matches)
}

// Validate cross-checks internal consistency before results are reported.
func (s *Statistics) Validate() error {
	if s.NSWins+s.EWWins != s.Matches {
		return fmt.Errorf("wins (%d+%d) do not sum to matches (%d)", s.NSWins, s.EWWins, s.Matches)
	}
	if len(s.RoundCounts) != s.Matches {
		return fmt.Errorf("round samples (%d) do not match matches (%d)", len(s.RoundCounts), s.Matches)
	}
	contracts := s.ContractsMade + s.ContractsFailed
	if contracts+s.AllPassRounds != s.TotalRounds {
		return fmt.Errorf("contracts (%d) plus all-pass rounds (%d) do not sum to rounds (%d)",
			contracts, s.AllPassRounds, s.TotalRounds)
	}
	return nil
}
