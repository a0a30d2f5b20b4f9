package simulator

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardworks/fivehundred/internal/game"
)

// FileConfig represents a simulation config file.
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
	Seats      []SeatConfig       `hcl:"seat,block"`
}

// SimulationSettings contains run-level configuration.
type SimulationSettings struct {
	Matches           int   `hcl:"matches,optional"`
	Seed              int64 `hcl:"seed,optional"`
	TargetScore       int   `hcl:"target_score,optional"`
	Parallelism       int   `hcl:"parallelism,optional"`
	RoundLimit        int   `hcl:"round_limit,optional"`
	DecisionTimeoutMS int   `hcl:"decision_timeout_ms,optional"`
}

// SeatConfig assigns an agent to a seat ("N", "E", "S" or "W").
type SeatConfig struct {
	Seat  string `hcl:"seat,label"`
	Agent string `hcl:"agent"`
}

// DefaultFileConfig returns the configuration used when no file is given.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Simulation: SimulationSettings{
			Matches:           100,
			Seed:              1,
			TargetScore:       game.DefaultTargetScore,
			Parallelism:       1,
			RoundLimit:        500,
			DecisionTimeoutMS: 5000,
		},
	}
}

// LoadFileConfig loads simulation configuration from an HCL file, falling
// back to defaults when the file does not exist.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultFileConfig()
	if config.Simulation.Matches == 0 {
		config.Simulation.Matches = defaults.Simulation.Matches
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = defaults.Simulation.Seed
	}
	if config.Simulation.TargetScore == 0 {
		config.Simulation.TargetScore = defaults.Simulation.TargetScore
	}
	if config.Simulation.Parallelism == 0 {
		config.Simulation.Parallelism = defaults.Simulation.Parallelism
	}
	if config.Simulation.RoundLimit == 0 {
		config.Simulation.RoundLimit = defaults.Simulation.RoundLimit
	}
	if config.Simulation.DecisionTimeoutMS == 0 {
		config.Simulation.DecisionTimeoutMS = defaults.Simulation.DecisionTimeoutMS
	}

	return &config, nil
}

// AgentNames flattens seat blocks into a per-seat agent table, defaulting
// unnamed seats to the random agent.
func (c *FileConfig) AgentNames() ([4]string, error) {
	agents := [4]string{"random", "random", "random", "random"}
	for _, seat := range c.Seats {
		found := false
		for id := 0; id < 4; id++ {
			if game.SeatName(id) == seat.Seat {
				agents[id] = seat.Agent
				found = true
				break
			}
		}
		if !found {
			return agents, fmt.Errorf("unknown seat %q (want N, E, S or W)", seat.Seat)
		}
	}
	return agents, nil
}

// DecisionTimeout returns the per-decision timeout as a duration.
func (c *FileConfig) DecisionTimeout() time.Duration {
	return time.Duration(c.Simulation.DecisionTimeoutMS) * time.Millisecond
}
