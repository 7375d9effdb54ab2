package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/unklstewy/flight-director/internal/db"
	"github.com/unklstewy/flight-director/pkg/config"
	"github.com/unklstewy/flight-director/pkg/flight"
)

// flight-eval evaluates a single flight snapshot from command-line
// flags and prints the resulting status. Useful for spot checks and for
// scripting against the decision engine without a replay file.
func main() {
	configPath := flag.String("config", "configs/config.json", "Path to configuration file")
	asJSON := flag.Bool("json", false, "Print the full status as JSON")
	record := flag.Bool("record", false, "Record the evaluation to the configured database")
	sessions := flag.Int("sessions", 0, "List the N most recent recorded sessions and exit")
	prune := flag.Duration("prune", 0, "Delete recorded sessions older than this duration and exit")

	var snap flight.Snapshot
	flag.Float64Var(&snap.VelocityMps, "velocity", 0, "Airspeed (m/s)")
	flag.Float64Var(&snap.AltitudeM, "altitude", 0, "Altitude above ground (m)")
	flag.Float64Var(&snap.AngleOfAttackDeg, "aoa", 0, "Angle of attack (degrees)")
	flag.Float64Var(&snap.FlapAngleDeg, "flaps", 0, "Flap angle (degrees)")
	flag.Float64Var(&snap.BankAngleDeg, "bank", 0, "Bank angle (degrees)")
	flag.Float64Var(&snap.ThrustN, "thrust", 0, "Thrust setting (N)")
	flag.Float64Var(&snap.VerticalSpeedMps, "vs", 0, "Vertical speed (m/s, negative = descent)")
	flag.Float64Var(&snap.TargetAltitudeM, "target", 0, "Target altitude for altitude hold (m, 0 = none)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *sessions > 0 || *prune > 0 {
		if err := maintainSessions(cfg, *sessions, *prune); err != nil {
			log.Fatalf("Session maintenance failed: %v", err)
		}
		return
	}

	evaluator, err := flight.NewEvaluator(cfg)
	if err != nil {
		log.Fatalf("Failed to create evaluator: %v", err)
	}

	status := evaluator.Evaluate(snap)

	if *record {
		if err := recordStatus(cfg, status); err != nil {
			log.Fatalf("Failed to record evaluation: %v", err)
		}
	}

	if *asJSON {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal status: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	printStatus(status)
}

func printStatus(st flight.Status) {
	fmt.Println("=== FLIGHT STATUS ===")
	fmt.Printf("Lift:        %.0f N (CL %.3f)\n", st.LiftN, st.LiftCoefficient)
	fmt.Printf("Drag:        %.0f N (CD %.4f)\n", st.DragN, st.DragCoefficient)
	fmt.Printf("Weight:      %.0f N\n", st.WeightN)
	fmt.Printf("Stall speed: %.1f m/s (margin %+.1f m/s)\n", st.Stall.StallSpeedMps, st.Stall.SpeedMarginMps)
	fmt.Printf("Load factor: %.2f\n", st.LoadFactor)
	fmt.Println()

	fmt.Printf("Stall:         %s\n", st.Stall.State)
	if st.Takeoff.Airborne {
		fmt.Println("Takeoff:       AIRBORNE")
	} else if st.Takeoff.Ready {
		fmt.Println("Takeoff:       READY (ROTATE)")
	} else {
		fmt.Printf("Takeoff:       NOT READY (%s)\n", st.Takeoff.LimitingFactor)
	}
	fmt.Printf("Landing:       %s", st.Landing.Stage)
	if st.Landing.Unstabilized {
		fmt.Print("  [UNSTABILIZED]")
	}
	fmt.Println()
	fmt.Printf("Mode:          %s\n", st.InFlight.Mode)
	if st.Turn.RadiusDefined {
		fmt.Printf("Turn:          radius %.0f m, n=%.2f", st.Turn.RadiusM, st.Turn.LoadFactor)
	} else {
		fmt.Printf("Turn:          no finite radius, n=%.2f", st.Turn.LoadFactor)
	}
	if st.Turn.Overload {
		fmt.Print("  [OVERLOAD]")
	}
	fmt.Println()
	fmt.Printf("Altitude hold: %s", st.AltitudeHold.Command)
	if st.AltitudeHold.Command != flight.CommandHold {
		fmt.Printf(" (%.1f m/s commanded, deviation %+.0f m)",
			st.AltitudeHold.CommandedRateMps, st.AltitudeHold.DeviationM)
	}
	fmt.Println()

	if len(st.Warnings) > 0 {
		fmt.Println()
		for _, w := range st.Warnings {
			fmt.Printf("WARNING [%s]: %s\n", w.Field, w.Message)
		}
	}

	// Advisories drive the exit code so scripts can react
	if st.Stall.State == flight.Stalled || st.Turn.Overload {
		os.Exit(1)
	}
}

func maintainSessions(cfg *config.Config, listLimit int, pruneAge time.Duration) error {
	database, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer database.Close()

	ctx := context.Background()

	if pruneAge > 0 {
		if err := database.CleanupOldSessions(ctx, pruneAge); err != nil {
			return err
		}
		fmt.Printf("Pruned sessions older than %s\n", pruneAge)
	}

	if listLimit > 0 {
		repo := db.NewSessionRepository(database)
		summaries, err := repo.ListSessions(ctx, listLimit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No recorded sessions")
			return nil
		}
		fmt.Printf("%-5s %-16s %-8s %-20s %6s %6s %9s\n",
			"ID", "LABEL", "SOURCE", "STARTED", "EVALS", "STALLS", "OVERLOADS")
		for _, s := range summaries {
			fmt.Printf("%-5d %-16s %-8s %-20s %6d %6d %9d\n",
				s.ID, s.Label, s.Source, s.StartedAt.Format("2006-01-02 15:04:05"),
				s.Evaluations, s.Stalls, s.Overloads)
		}
	}

	return nil
}

func recordStatus(cfg *config.Config, st flight.Status) error {
	database, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := database.InitSchema(ctx); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	repo := db.NewSessionRepository(database)
	session, err := repo.CreateSession(ctx, "flight-eval", "manual", cfg.Aircraft)
	if err != nil {
		return err
	}
	if err := repo.RecordEvaluation(ctx, session.ID, 0, st); err != nil {
		return err
	}
	return repo.CloseSession(ctx, session.ID)
}
