package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unklstewy/flight-director/pkg/config"
	"github.com/unklstewy/flight-director/pkg/flight"
	"github.com/unklstewy/flight-director/pkg/replay"
)

// flight-replay is a lightweight replay player: it steps through a
// snapshot file and shows the decision engine's output per snapshot,
// with manual stepping for classroom walkthroughs.
func main() {
	configPath := flag.String("config", "configs/config.json", "Path to configuration file")
	replayPath := flag.String("replay", "", "Replay CSV file (empty = generated demo flight)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	evaluator, err := flight.NewEvaluator(cfg)
	if err != nil {
		log.Fatalf("Failed to create evaluator: %v", err)
	}

	var snapshots []flight.Snapshot
	if *replayPath != "" {
		snapshots, err = replay.Load(*replayPath)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
	} else {
		snapshots = replay.GenerateProfile(replay.ProfileOptions{
			MaxThrustN: cfg.Aircraft.MaxThrustN,
		})
	}

	interval := time.Second / 2
	if cfg.Replay.SnapshotsPerSecond > 0 {
		interval = time.Duration(float64(time.Second) / cfg.Replay.SnapshotsPerSecond)
	}

	m := model{
		evaluator: evaluator,
		snapshots: snapshots,
		interval:  interval,
		playing:   true,
	}
	m.status = evaluator.Evaluate(snapshots[0])

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

type model struct {
	evaluator *flight.Evaluator
	snapshots []flight.Snapshot
	interval  time.Duration

	index   int
	playing bool
	status  flight.Status
}

type tickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "n", "right":
			m = m.advance()
		case "r":
			m.index = 0
			m.status = m.evaluator.Evaluate(m.snapshots[0])
		}
	case tickMsg:
		if m.playing {
			m = m.advance()
		}
		return m, tick(m.interval)
	}
	return m, nil
}

func (m model) advance() model {
	if m.index < len(m.snapshots)-1 {
		m.index++
		m.status = m.evaluator.Evaluate(m.snapshots[m.index])
	} else {
		m.playing = false
	}
	return m
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

func (m model) View() string {
	var s strings.Builder
	st := m.status
	snap := st.Snapshot

	s.WriteString(titleStyle.Render("FLIGHT REPLAY"))
	s.WriteString(fmt.Sprintf("  %d/%d", m.index+1, len(m.snapshots)))
	if !m.playing {
		s.WriteString("  " + pausedStyle.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)))
		s.WriteString(valueStyle.Render(value))
		s.WriteString("\n")
	}

	row("Airspeed", fmt.Sprintf("%.1f m/s", snap.VelocityMps))
	row("Altitude", fmt.Sprintf("%.0f m", snap.AltitudeM))
	row("AoA/Flaps", fmt.Sprintf("%.1f° / %.0f°", snap.AngleOfAttackDeg, snap.FlapAngleDeg))
	row("Bank", fmt.Sprintf("%.1f°", snap.BankAngleDeg))
	row("Lift/Weight", fmt.Sprintf("%.0f / %.0f N", st.LiftN, st.WeightN))
	row("Drag", fmt.Sprintf("%.0f N", st.DragN))
	row("Stall speed", fmt.Sprintf("%.1f m/s (margin %+.1f)", st.Stall.StallSpeedMps, st.Stall.SpeedMarginMps))
	s.WriteString("\n")

	stall := okStyle.Render(string(st.Stall.State))
	switch st.Stall.State {
	case flight.StallWarning:
		stall = warnStyle.Render(string(st.Stall.State))
	case flight.Stalled:
		stall = alertStyle.Render(string(st.Stall.State))
	}
	s.WriteString(labelStyle.Render("Stall       ") + stall + "\n")

	takeoff := "NOT READY (" + string(st.Takeoff.LimitingFactor) + ")"
	if st.Takeoff.Airborne {
		takeoff = "AIRBORNE"
	} else if st.Takeoff.Ready {
		takeoff = "READY (ROTATE)"
	}
	row("Takeoff", takeoff)

	landing := string(st.Landing.Stage)
	if st.Landing.Unstabilized {
		landing += "  " + alertStyle.Render("UNSTABILIZED")
	}
	row("Landing", landing)
	row("Mode", string(st.InFlight.Mode))

	turn := fmt.Sprintf("n=%.2f", st.Turn.LoadFactor)
	if st.Turn.RadiusDefined {
		turn = fmt.Sprintf("radius %.0f m, n=%.2f", st.Turn.RadiusM, st.Turn.LoadFactor)
	}
	if st.Turn.Overload {
		turn += "  " + alertStyle.Render("OVERLOAD")
	}
	row("Turn", turn)

	hold := string(st.AltitudeHold.Command)
	if st.AltitudeHold.Command != flight.CommandHold {
		hold += fmt.Sprintf(" (%+.1f m/s, dev %+.0f m)",
			st.AltitudeHold.CommandedRateMps, st.AltitudeHold.DeviationM)
	}
	row("Alt hold", hold)

	for _, w := range st.Warnings {
		s.WriteString(warnStyle.Render(fmt.Sprintf("WARNING [%s]: %s", w.Field, w.Message)))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("SPACE: pause  n/→: step  r: restart  q: quit"))
	s.WriteString("\n")

	return s.String()
}
