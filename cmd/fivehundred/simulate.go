package main

import (
	"context"
	"time"

	"github.com/cardworks/fivehundred/internal/simulator"
)

// SimulateCmd runs batches of matches and reports aggregate statistics.
type SimulateCmd struct {
	Config      string `kong:"default='fivehundred.hcl',help='Path to HCL simulation config'"`
	Matches     int    `kong:"help='Number of matches to simulate (overrides config)'"`
	Seed        *int64 `kong:"help='Deterministic RNG seed (overrides config, 0 uses wall clock)'"`
	Target      int    `kong:"help='Winning score threshold (overrides config)'"`
	Parallelism int    `kong:"help='Concurrent matches (overrides config)'"`
	TimeoutMs   int    `kong:"help='Per-decision timeout in milliseconds (overrides config)'"`
	Quiet       bool   `kong:"help='Suppress per-match output'"`
	Debug       bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	fileConfig, err := simulator.LoadFileConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Matches > 0 {
		fileConfig.Simulation.Matches = c.Matches
	}
	if c.Seed != nil {
		fileConfig.Simulation.Seed = *c.Seed
	}
	if fileConfig.Simulation.Seed == 0 {
		fileConfig.Simulation.Seed = time.Now().UnixNano()
		logger.Info("using wall clock seed", "seed", fileConfig.Simulation.Seed)
	}
	if c.Target > 0 {
		fileConfig.Simulation.TargetScore = c.Target
	}
	if c.Parallelism > 0 {
		fileConfig.Simulation.Parallelism = c.Parallelism
	}
	if c.TimeoutMs > 0 {
		fileConfig.Simulation.DecisionTimeoutMS = c.TimeoutMs
	}

	agents, err := fileConfig.AgentNames()
	if err != nil {
		return err
	}

	var monitor simulator.MatchMonitor
	if !c.Quiet {
		monitor = simulator.NewPrettyMonitor(nil)
	}

	sim := simulator.New(simulator.Config{
		Matches:     fileConfig.Simulation.Matches,
		Seed:        fileConfig.Simulation.Seed,
		TargetScore: fileConfig.Simulation.TargetScore,
		Agents:      agents,
		Timeout:     fileConfig.DecisionTimeout(),
		Parallelism: fileConfig.Simulation.Parallelism,
		RoundLimit:  fileConfig.Simulation.RoundLimit,
		Logger:      logger,
		Monitor:     monitor,
	})

	_, err = sim.Run(context.Background())
	return err
}
