package flight

import (
	"github.com/unklstewy/flight-director/pkg/aero"
	"github.com/unklstewy/flight-director/pkg/config"
)

// StallResult is the stall classifier output.
type StallResult struct {
	// State is the stall classification
	State StallState `json:"state"`

	// StallSpeedMps is the effective stall speed for the current
	// configuration (flaps and bank accounted for)
	StallSpeedMps float64 `json:"stall_speed_mps"`

	// SpeedMarginMps is airspeed minus effective stall speed; negative
	// when below stall speed
	SpeedMarginMps float64 `json:"speed_margin_mps"`
}

// ClassifyStall classifies the snapshot into NORMAL, STALL_WARNING or
// STALLED.
//
// Two independent checks feed the classification:
//   - Speed: airspeed at or below the effective stall speed is STALLED;
//     within the configured margin band above it (default 1.1×Vs) is
//     STALL_WARNING.
//   - Angle of attack: at or above the aircraft's stall angle is
//     STALLED; at or above the warning angle is STALL_WARNING.
//
// When the two checks disagree the more severe state wins.
//
// The effective stall speed accounts for flap deflection (lowers Vs)
// and bank angle (load factor raises Vs by sqrt(n)).
func ClassifyStall(ac aero.Aircraft, cfg config.StallConfig, s Snapshot) StallResult {
	vs := ac.StallSpeedInTurn(s.FlapAngleDeg, s.BankAngleDeg)

	bySpeed := StallNormal
	switch {
	case s.VelocityMps <= vs:
		bySpeed = Stalled
	case s.VelocityMps <= vs*cfg.SpeedMarginFraction:
		bySpeed = StallWarning
	}

	byAngle := StallNormal
	switch {
	case s.AngleOfAttackDeg >= ac.StallAngleDeg:
		byAngle = Stalled
	case s.AngleOfAttackDeg >= cfg.WarningAngleDeg:
		byAngle = StallWarning
	}

	state := bySpeed
	if byAngle.severity() > state.severity() {
		state = byAngle
	}

	return StallResult{
		State:          state,
		StallSpeedMps:  vs,
		SpeedMarginMps: s.VelocityMps - vs,
	}
}
