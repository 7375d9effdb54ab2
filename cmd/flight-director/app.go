package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/unklstewy/flight-director/internal/db"
	"github.com/unklstewy/flight-director/pkg/flight"
	"github.com/unklstewy/flight-director/pkg/replay"
)

// App represents the dashboard application.
type App struct {
	evaluator *flight.Evaluator
	player    *replay.Player

	// Recording (nil when disabled)
	repo      *db.SessionRepository
	sessionID int64

	// UI components
	tviewApp   *tview.Application
	physics    *tview.TextView
	decisions  *tview.TextView
	controls   *tview.TextView
	logs       *tview.TextView
	rootLayout *tview.Flex

	// State
	mu     sync.Mutex
	paused bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates a new dashboard instance.
func NewApp(evaluator *flight.Evaluator, player *replay.Player, repo *db.SessionRepository, sessionID int64) *App {
	app := &App{
		evaluator: evaluator,
		player:    player,
		repo:      repo,
		sessionID: sessionID,
	}
	app.setupUI()
	return app
}

// setupUI initializes the user interface.
func (a *App) setupUI() {
	a.tviewApp = tview.NewApplication()

	a.physics = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.physics.SetBorder(true).SetTitle(" Physics ")

	a.decisions = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.decisions.SetBorder(true).SetTitle(" Decisions ")

	a.controls = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	a.controls.SetBorder(true).SetTitle(" Controls ")
	a.controls.SetText(`[yellow]PLAYBACK[-]
  [white]SPACE[-]  Pause/Resume

[yellow]CONTROL[-]
  [white]q[-]      Quit`)

	a.logs = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(100)
	a.logs.SetBorder(true).SetTitle(" Advisories ")

	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.physics, 0, 1, false).
		AddItem(a.decisions, 0, 1, false)

	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.controls, 0, 1, false).
		AddItem(a.logs, 0, 2, false)

	a.rootLayout = tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(left, 0, 7, true).
		AddItem(right, 0, 3, false)

	a.tviewApp.SetRoot(a.rootLayout, true)
	a.tviewApp.SetInputCapture(a.handleKeyboard)
}

// handleKeyboard processes keyboard input.
func (a *App) handleKeyboard(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'q':
		if a.cancel != nil {
			a.cancel()
		}
		a.tviewApp.Stop()
		return nil
	case ' ':
		a.mu.Lock()
		a.paused = !a.paused
		paused := a.paused
		a.mu.Unlock()
		if paused {
			a.addLog("INFO", "playback paused")
		} else {
			a.addLog("INFO", "playback resumed")
		}
		return nil
	}
	return event
}

// Run starts playback and the UI loop; it blocks until the user quits
// or the replay completes.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	a.ctx, a.cancel = ctx, cancel
	defer cancel()

	go func() {
		err := a.player.Play(ctx, a.step)
		if err == nil {
			a.addLog("INFO", "replay complete")
		} else if ctx.Err() == nil {
			a.addLog("ERROR", err.Error())
		}
	}()

	return a.tviewApp.Run()
}

// step evaluates one snapshot and refreshes the panels. It blocks while
// playback is paused.
func (a *App) step(index int, snap flight.Snapshot) error {
	for {
		a.mu.Lock()
		paused := a.paused
		a.mu.Unlock()
		if !paused {
			break
		}
		select {
		case <-a.ctx.Done():
			return a.ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}

	st := a.evaluator.Evaluate(snap)

	if a.repo != nil {
		if err := a.repo.RecordEvaluation(context.Background(), a.sessionID, index, st); err != nil {
			a.addLog("ERROR", fmt.Sprintf("recording failed: %v", err))
		}
	}

	a.tviewApp.QueueUpdateDraw(func() {
		a.updatePhysics(index, st)
		a.updateDecisions(st)
	})

	for _, w := range st.Warnings {
		a.addLog("WARN", fmt.Sprintf("%s: %s", w.Field, w.Message))
	}
	if st.Stall.State == flight.Stalled {
		a.addLog("ALERT", fmt.Sprintf("stalled at %.1f m/s (Vs %.1f m/s)",
			st.Snapshot.VelocityMps, st.Stall.StallSpeedMps))
	}
	if st.Turn.Overload {
		a.addLog("ALERT", fmt.Sprintf("structural overload, n=%.2f", st.Turn.LoadFactor))
	}

	return nil
}

// updatePhysics updates the physics panel content.
func (a *App) updatePhysics(index int, st flight.Status) {
	s := st.Snapshot
	text := fmt.Sprintf("[yellow]SNAPSHOT[-] [white]%d/%d[-]\n\n", index+1, a.player.Len())
	text += fmt.Sprintf("[gray]Airspeed:[-]  [white]%.1f m/s[-]\n", s.VelocityMps)
	text += fmt.Sprintf("[gray]Altitude:[-]  [white]%.0f m[-]\n", s.AltitudeM)
	text += fmt.Sprintf("[gray]AoA:[-]       [white]%.1f°[-]   [gray]Flaps:[-] [white]%.0f°[-]\n", s.AngleOfAttackDeg, s.FlapAngleDeg)
	text += fmt.Sprintf("[gray]Bank:[-]      [white]%.1f°[-]   [gray]V/S:[-] [white]%+.1f m/s[-]\n", s.BankAngleDeg, s.VerticalSpeedMps)
	text += fmt.Sprintf("[gray]Thrust:[-]    [white]%.0f N[-]\n\n", s.ThrustN)

	text += fmt.Sprintf("[gray]Lift:[-]      [white]%.0f N[-] [gray](CL %.3f)[-]\n", st.LiftN, st.LiftCoefficient)
	text += fmt.Sprintf("[gray]Drag:[-]      [white]%.0f N[-] [gray](CD %.4f)[-]\n", st.DragN, st.DragCoefficient)
	text += fmt.Sprintf("[gray]Weight:[-]    [white]%.0f N[-]\n", st.WeightN)
	text += fmt.Sprintf("[gray]Vs:[-]        [white]%.1f m/s[-] [gray](margin %+.1f)[-]\n", st.Stall.StallSpeedMps, st.Stall.SpeedMarginMps)
	text += fmt.Sprintf("[gray]Load:[-]      [white]%.2f g[-]\n", st.LoadFactor)

	a.physics.SetText(text)
}

// updateDecisions updates the classifier panel content.
func (a *App) updateDecisions(st flight.Status) {
	stallColor := "green"
	switch st.Stall.State {
	case flight.StallWarning:
		stallColor = "yellow"
	case flight.Stalled:
		stallColor = "red"
	}

	text := fmt.Sprintf("[gray]Stall:[-]     [%s]%s[-]\n", stallColor, st.Stall.State)

	switch {
	case st.Takeoff.Airborne:
		text += "[gray]Takeoff:[-]   [green]AIRBORNE[-]\n"
	case st.Takeoff.Ready:
		text += "[gray]Takeoff:[-]   [green]READY (ROTATE)[-]\n"
	default:
		text += fmt.Sprintf("[gray]Takeoff:[-]   [white]NOT READY[-] [gray](%s)[-]\n", st.Takeoff.LimitingFactor)
	}

	text += fmt.Sprintf("[gray]Landing:[-]   [white]%s[-]", st.Landing.Stage)
	if st.Landing.Unstabilized {
		text += " [red]UNSTABILIZED[-]"
	}
	text += "\n"

	text += fmt.Sprintf("[gray]Mode:[-]      [white]%s[-]\n", st.InFlight.Mode)

	if st.Turn.RadiusDefined {
		text += fmt.Sprintf("[gray]Turn:[-]      [white]%.0f m, n=%.2f[-]", st.Turn.RadiusM, st.Turn.LoadFactor)
	} else {
		text += fmt.Sprintf("[gray]Turn:[-]      [white]wings level, n=%.2f[-]", st.Turn.LoadFactor)
	}
	if st.Turn.Overload {
		text += " [red]OVERLOAD[-]"
	}
	text += "\n"

	text += fmt.Sprintf("[gray]Alt hold:[-]  [white]%s[-]", st.AltitudeHold.Command)
	if st.AltitudeHold.Command != flight.CommandHold {
		text += fmt.Sprintf(" [gray](%+.1f m/s, dev %+.0f m)[-]",
			st.AltitudeHold.CommandedRateMps, st.AltitudeHold.DeviationM)
	}
	text += "\n"

	a.decisions.SetText(text)
}

// addLog appends a timestamped message to the advisories panel.
func (a *App) addLog(level, message string) {
	color := "white"
	switch level {
	case "WARN":
		color = "yellow"
	case "ERROR", "ALERT":
		color = "red"
	}
	line := fmt.Sprintf("[gray]%s[-] [%s]%s[-] %s\n",
		time.Now().Format("15:04:05"), color, level, message)

	a.tviewApp.QueueUpdateDraw(func() {
		fmt.Fprint(a.logs, line)
		a.logs.ScrollToEnd()
	})
}
