package main

import (
	"context"
	"flag"
	"log"

	"github.com/unklstewy/flight-director/internal/db"
	"github.com/unklstewy/flight-director/pkg/config"
	"github.com/unklstewy/flight-director/pkg/flight"
	"github.com/unklstewy/flight-director/pkg/replay"
)

// flight-director is the terminal dashboard: it plays a replay file (or
// a generated demo flight) through the decision engine and renders the
// full flight status per snapshot.
func main() {
	configPath := flag.String("config", "configs/config.json", "Path to configuration file")
	replayPath := flag.String("replay", "", "Replay CSV file (empty = generated demo flight)")
	rateOverride := flag.Float64("rate", 0, "Playback rate in snapshots/s (0 = from config)")
	record := flag.Bool("record", false, "Record the run to the configured database")
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
	source := "profile"
	if *replayPath != "" {
		snapshots, err = replay.Load(*replayPath)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		source = "replay"
	} else {
		snapshots = replay.GenerateProfile(replay.ProfileOptions{
			MaxThrustN: cfg.Aircraft.MaxThrustN,
		})
	}

	perSecond := cfg.Replay.SnapshotsPerSecond
	if *rateOverride > 0 {
		perSecond = *rateOverride
	}

	var repo *db.SessionRepository
	var sessionID int64
	if *record || cfg.Database.Enabled {
		database, err := db.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		ctx := context.Background()
		if err := database.InitSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		repo = db.NewSessionRepository(database)
		session, err := repo.CreateSession(ctx, "flight-director", source, cfg.Aircraft)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		sessionID = session.ID
		defer repo.CloseSession(ctx, sessionID)
	}

	app := NewApp(evaluator, replay.NewPlayer(snapshots, perSecond), repo, sessionID)
	if err := app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
