// Package flight implements the flight-mode classifiers and the status
// aggregator of the decision engine.
//
// Six stateless algorithms — stall detection, takeoff readiness,
// landing stage, in-flight mode, turn advisory and altitude hold —
// consume the aerodynamic model plus one input snapshot and emit a
// structured classification. The Evaluator composes all of them into a
// single Status record per evaluation cycle.
//
// Nothing in this package retains cross-call state; every evaluation is
// an independent pure computation, safe for concurrent callers.
package flight

import (
	"fmt"

	"github.com/unklstewy/flight-director/pkg/aero"
	"github.com/unklstewy/flight-director/pkg/config"
)

// Evaluator runs all classifiers against snapshots using a fixed,
// validated configuration. The configuration is read-only after
// construction, so a single Evaluator may be shared across goroutines.
type Evaluator struct {
	cfg *config.Config
}

// NewEvaluator creates an evaluator after validating the configuration.
// An invalid configuration is fatal: no evaluator is returned.
func NewEvaluator(cfg *config.Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &Evaluator{cfg: cfg}, nil
}

// Aircraft returns the aircraft constants the evaluator runs with.
func (e *Evaluator) Aircraft() aero.Aircraft {
	return e.cfg.Aircraft
}

// Evaluate runs the aerodynamic model and all six classifiers against
// one snapshot and returns a fresh Status. Out-of-range inputs are
// clamped and reported as field-level warnings; the evaluation always
// completes.
func (e *Evaluator) Evaluate(s Snapshot) Status {
	s, warnings := sanitize(s)

	ac := e.cfg.Aircraft

	cl := ac.LiftCoefficient(s.AngleOfAttackDeg, s.FlapAngleDeg)
	lift := ac.Lift(s.VelocityMps, cl)
	cd := ac.DragCoefficient(cl)
	drag := ac.Drag(s.VelocityMps, cd)
	weight := ac.Weight()

	st := Status{
		Snapshot:        s,
		LiftCoefficient: cl,
		LiftN:           lift,
		DragCoefficient: cd,
		DragN:           drag,
		WeightN:         weight,
		StallSpeedMps:   ac.StallSpeed(),
		LoadFactor:      ac.LoadFactor(lift),
		Warnings:        warnings,
	}

	st.Stall = ClassifyStall(ac, e.cfg.Stall, s)
	st.Takeoff = EvaluateTakeoff(ac, e.cfg.Takeoff, s)
	st.Landing = ClassifyLanding(e.cfg.Landing, s)
	st.InFlight = ClassifyFlightMode(e.cfg.InFlight, s)
	st.Turn = EvaluateTurn(ac, e.cfg.Turn, s)
	st.AltitudeHold = EvaluateAltitudeHold(e.cfg.AltitudeHold, s)

	return st
}

// sanitize clamps physically impossible inputs and reports each clamp
// as a warning. The evaluation proceeds on the clamped values.
func sanitize(s Snapshot) (Snapshot, []Warning) {
	var warnings []Warning

	if s.VelocityMps < 0 {
		warnings = append(warnings, Warning{
			Field:   "velocity_mps",
			Message: fmt.Sprintf("negative airspeed %g m/s, using magnitude", s.VelocityMps),
		})
		s.VelocityMps = -s.VelocityMps
	}

	if s.AngleOfAttackDeg > 90 || s.AngleOfAttackDeg < -90 {
		clamped := 90.0
		if s.AngleOfAttackDeg < 0 {
			clamped = -90.0
		}
		warnings = append(warnings, Warning{
			Field:   "angle_of_attack_deg",
			Message: fmt.Sprintf("angle of attack %g° beyond physical limits, clamped to %g°", s.AngleOfAttackDeg, clamped),
		})
		s.AngleOfAttackDeg = clamped
	}

	if s.BankAngleDeg > 90 || s.BankAngleDeg < -90 {
		clamped := 90.0
		if s.BankAngleDeg < 0 {
			clamped = -90.0
		}
		warnings = append(warnings, Warning{
			Field:   "bank_angle_deg",
			Message: fmt.Sprintf("bank angle %g° beyond 90°, clamped to %g°", s.BankAngleDeg, clamped),
		})
		s.BankAngleDeg = clamped
	}

	if s.ThrustN < 0 {
		warnings = append(warnings, Warning{
			Field:   "thrust_n",
			Message: fmt.Sprintf("negative thrust %g N, clamped to 0", s.ThrustN),
		})
		s.ThrustN = 0
	}

	return s, warnings
}
