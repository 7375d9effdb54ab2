package flight

import (
	"github.com/unklstewy/flight-director/pkg/aero"
	"github.com/unklstewy/flight-director/pkg/config"
)

// TakeoffResult is the takeoff classifier output.
type TakeoffResult struct {
	// Ready is true when all takeoff conditions are met
	Ready bool `json:"ready"`

	// Airborne is true when the aircraft has already left the runway
	// (altitude above the ground threshold with lift carrying weight)
	Airborne bool `json:"airborne"`

	// LimitingFactor names the first condition currently failing, so a
	// consumer can explain why the aircraft is not ready; empty when
	// Ready is true
	LimitingFactor TakeoffLimit `json:"limiting_factor,omitempty"`

	// LiftN and WeightN are the forces behind the decision
	LiftN   float64 `json:"lift_n"`
	WeightN float64 `json:"weight_n"`
}

// EvaluateTakeoff decides takeoff readiness for the snapshot.
//
// The aircraft is ready to rotate when, simultaneously:
//   - lift force >= weight
//   - airspeed >= clean stall speed
//   - thrust >= MinThrustFraction of maximum available thrust
//
// The conditions are checked in that order and the first failure is
// reported as the limiting factor. An aircraft above the ground
// threshold with lift carrying its weight is reported as airborne
// instead; the readiness conditions no longer apply.
func EvaluateTakeoff(ac aero.Aircraft, cfg config.TakeoffConfig, s Snapshot) TakeoffResult {
	cl := ac.LiftCoefficient(s.AngleOfAttackDeg, s.FlapAngleDeg)
	lift := ac.Lift(s.VelocityMps, cl)
	weight := ac.Weight()

	r := TakeoffResult{
		LiftN:   lift,
		WeightN: weight,
	}

	if s.AltitudeM > cfg.GroundAltitudeM && lift >= weight {
		r.Airborne = true
		r.Ready = true
		return r
	}

	switch {
	case lift < weight:
		r.LimitingFactor = LimitLift
	case s.VelocityMps < ac.StallSpeed():
		r.LimitingFactor = LimitAirspeed
	case s.ThrustN < cfg.MinThrustFraction*ac.MaxThrustN:
		r.LimitingFactor = LimitThrust
	default:
		r.Ready = true
	}

	return r
}
