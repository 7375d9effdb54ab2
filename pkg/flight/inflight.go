package flight

import (
	"github.com/unklstewy/flight-director/pkg/config"
)

// InFlightResult is the in-flight mode classifier output.
type InFlightResult struct {
	// Mode is the vertical flight regime
	Mode FlightMode `json:"mode"`

	// DeviationM is current altitude minus target altitude; zero when
	// no target is set
	DeviationM float64 `json:"deviation_m"`

	// TargetAgreement reports whether the classified mode is consistent
	// with the sign of the altitude deviation. Always true when no
	// target is set. Disagreement is an advisory, never an error: an
	// aircraft can legitimately climb through its target.
	TargetAgreement bool `json:"target_agreement"`
}

// ClassifyFlightMode classifies the vertical regime from vertical speed:
// CLIMB above the climb threshold, DESCEND below the descend threshold,
// CRUISE otherwise.
//
// When a target altitude is set (non-zero), the result also reports
// whether the mode agrees with the deviation sign — below the target
// the expectation is CLIMB or CRUISE, above it DESCEND or CRUISE.
func ClassifyFlightMode(cfg config.InFlightConfig, s Snapshot) InFlightResult {
	mode := ModeCruise
	switch {
	case s.VerticalSpeedMps > cfg.ClimbRateMps:
		mode = ModeClimb
	case s.VerticalSpeedMps < cfg.DescendRateMps:
		mode = ModeDescend
	}

	r := InFlightResult{
		Mode:            mode,
		TargetAgreement: true,
	}

	if s.TargetAltitudeM != 0 {
		r.DeviationM = s.AltitudeM - s.TargetAltitudeM
		switch {
		case r.DeviationM < 0 && mode == ModeDescend:
			r.TargetAgreement = false
		case r.DeviationM > 0 && mode == ModeClimb:
			r.TargetAgreement = false
		}
	}

	return r
}
