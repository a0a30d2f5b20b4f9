package simulator

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardworks/fivehundred/internal/statistics"
)

// MatchMonitor receives notifications about simulation progress.
type MatchMonitor interface {
	// OnRunStart is called once before any match is played.
	OnRunStart(matches int)

	// OnMatchComplete is called after each match completes. Matches may
	// finish concurrently; implementations must be safe for concurrent use.
	OnMatchComplete(result statistics.MatchResult)

	// OnRunComplete is called once with the aggregate results.
	OnRunComplete(stats *statistics.Statistics)
}

// NullMatchMonitor is a no-op implementation.
type NullMatchMonitor struct{}

func (NullMatchMonitor) OnRunStart(int)                         {}
func (NullMatchMonitor) OnMatchComplete(statistics.MatchResult) {}
func (NullMatchMonitor) OnRunComplete(*statistics.Statistics)   {}

// monitorStyles contains styling for simulation output.
type monitorStyles struct {
	Header  lipgloss.Style
	NSTeam  lipgloss.Style
	EWTeam  lipgloss.Style
	Muted   lipgloss.Style
	Summary lipgloss.Style
}

func newMonitorStyles() monitorStyles {
	return monitorStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		NSTeam: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		EWTeam: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Summary: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// PrettyMonitor prints each match result as it completes.
type PrettyMonitor struct {
	mu      sync.Mutex
	writer  io.Writer
	styles  monitorStyles
	done    int
	matches int
}

// NewPrettyMonitor creates a monitor writing formatted results to writer,
// defaulting to stdout.
func NewPrettyMonitor(writer io.Writer) *PrettyMonitor {
	if writer == nil {
		writer = os.Stdout
	}
	return &PrettyMonitor{writer: writer, styles: newMonitorStyles()}
}

func (p *PrettyMonitor) OnRunStart(matches int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.matches = matches
	p.done = 0
	fmt.Fprintln(p.writer, p.styles.Header.Render(fmt.Sprintf("Simulating %d matches", matches)))
}

func (p *PrettyMonitor) OnMatchComplete(result statistics.MatchResult) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++

	winner := p.styles.NSTeam.Render("N-S")
	if result.Winner == 1 {
		winner = p.styles.EWTeam.Render("E-W")
	}
	fmt.Fprintf(p.writer, "[%d/%d] %s wins %d to %d %s\n",
		p.done, p.matches, winner, result.FinalNS, result.FinalEW,
		p.styles.Muted.Render(fmt.Sprintf("(%d rounds, seed %d)", result.Rounds, result.Seed)))
}

func (p *PrettyMonitor) OnRunComplete(stats *statistics.Statistics) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.writer)
	fmt.Fprintln(p.writer, p.styles.Summary.Render("=== RESULTS ==="))
	fmt.Fprintf(p.writer, "Matches: %d (%s %d, %s %d)\n",
		stats.Matches,
		p.styles.NSTeam.Render("N-S"), stats.NSWins,
		p.styles.EWTeam.Render("E-W"), stats.EWWins)
	fmt.Fprintf(p.writer, "Rounds/match: mean %.1f, median %.1f, stddev %.1f\n",
		stats.MeanRounds(), stats.MedianRounds(), stats.StdDevRounds())
	fmt.Fprintf(p.writer, "Contracts: %d made, %d failed (%.1f%% make rate)\n",
		stats.ContractsMade, stats.ContractsFailed, stats.ContractMakeRate()*100)
	fmt.Fprintf(p.writer, "Misere contracts: %d\n", stats.MisereContracts)
	fmt.Fprintf(p.writer, "All-pass rounds: %d\n", stats.AllPassRounds)
}
