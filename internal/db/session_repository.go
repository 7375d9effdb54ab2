package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/unklstewy/flight-director/pkg/aero"
	"github.com/unklstewy/flight-director/pkg/flight"
)

// Session describes one recorded run.
type Session struct {
	ID         int64
	Label      string
	Source     string
	StartedAt  time.Time
	FinishedAt *time.Time
}

// SessionSummary aggregates a recorded session for display.
type SessionSummary struct {
	Session
	Evaluations int
	Stalls      int
	Overloads   int
}

// SessionRepository handles database operations for recorded runs.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// CreateSession opens a new recording session. The aircraft constants
// are stored alongside so a recorded run can be interpreted later even
// if the configuration changes.
func (r *SessionRepository) CreateSession(ctx context.Context, label, source string, aircraft aero.Aircraft) (*Session, error) {
	aircraftJSON, err := json.Marshal(aircraft)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal aircraft constants: %w", err)
	}

	s := &Session{
		Label:  label,
		Source: source,
	}
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO sessions (label, source, aircraft)
		 VALUES ($1, $2, $3)
		 RETURNING id, started_at`,
		label, source, aircraftJSON,
	).Scan(&s.ID, &s.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s, nil
}

// CloseSession marks a session as finished.
func (r *SessionRepository) CloseSession(ctx context.Context, sessionID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET finished_at = now() WHERE id = $1`,
		sessionID,
	); err != nil {
		return fmt.Errorf("failed to close session %d: %w", sessionID, err)
	}
	return nil
}

// RecordEvaluation persists one evaluation cycle. The sequence number
// is the snapshot index within the session.
func (r *SessionRepository) RecordEvaluation(ctx context.Context, sessionID int64, sequence int, st flight.Status) error {
	var warningsJSON []byte
	if len(st.Warnings) > 0 {
		var err error
		warningsJSON, err = json.Marshal(st.Warnings)
		if err != nil {
			return fmt.Errorf("failed to marshal warnings: %w", err)
		}
	}

	// Undefined turn radius is stored as NULL
	var turnRadius sql.NullFloat64
	if st.Turn.RadiusDefined {
		turnRadius = sql.NullFloat64{Float64: st.Turn.RadiusM, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evaluations (
			session_id, sequence,
			velocity_mps, altitude_m, angle_of_attack_deg, flap_angle_deg,
			bank_angle_deg, thrust_n, vertical_speed_mps, target_altitude_m,
			lift_n, drag_n, stall_speed_mps, load_factor,
			stall_state, takeoff_ready, takeoff_limit, landing_stage,
			in_flight_mode, turn_radius_m, turn_overload, altitude_hold_command,
			warnings
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)`,
		sessionID, sequence,
		st.Snapshot.VelocityMps, st.Snapshot.AltitudeM, st.Snapshot.AngleOfAttackDeg,
		st.Snapshot.FlapAngleDeg, st.Snapshot.BankAngleDeg, st.Snapshot.ThrustN,
		st.Snapshot.VerticalSpeedMps, st.Snapshot.TargetAltitudeM,
		st.LiftN, st.DragN, st.StallSpeedMps, st.LoadFactor,
		string(st.Stall.State), st.Takeoff.Ready, string(st.Takeoff.LimitingFactor),
		string(st.Landing.Stage), string(st.InFlight.Mode),
		turnRadius, st.Turn.Overload, string(st.AltitudeHold.Command),
		warningsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to record evaluation %d: %w", sequence, err)
	}

	return nil
}

// ListSessions returns recent sessions with aggregate counts, newest
// first.
func (r *SessionRepository) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.label, s.source, s.started_at, s.finished_at,
		        COUNT(e.id),
		        COUNT(e.id) FILTER (WHERE e.stall_state = 'STALLED'),
		        COUNT(e.id) FILTER (WHERE e.turn_overload)
		 FROM sessions s
		 LEFT JOIN evaluations e ON e.session_id = s.id
		 GROUP BY s.id
		 ORDER BY s.started_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var summaries []SessionSummary
	for rows.Next() {
		var s SessionSummary
		var finished sql.NullTime
		if err := rows.Scan(&s.ID, &s.Label, &s.Source, &s.StartedAt, &finished,
			&s.Evaluations, &s.Stalls, &s.Overloads); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if finished.Valid {
			s.FinishedAt = &finished.Time
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
