package flight

import (
	"github.com/unklstewy/flight-director/pkg/config"
)

// LandingResult is the landing classifier output.
type LandingResult struct {
	// Stage is the landing phase for this snapshot
	Stage LandingStage `json:"stage"`

	// DescentRateMps is the descent rate magnitude (m/s, >= 0 when
	// descending, 0 when climbing)
	DescentRateMps float64 `json:"descent_rate_mps"`

	// Unstabilized is true when the aircraft is inside the final
	// approach band with a descent rate beyond the configured safe
	// limit. The stage classification is unaffected; this is an
	// advisory.
	Unstabilized bool `json:"unstabilized"`
}

// ClassifyLanding classifies the landing phase from altitude and
// vertical speed.
//
// The stage is a pure function of altitude against the configured
// boundaries, which keeps the classification monotonic in altitude:
//
//	altitude > ApproachAltitudeM             → CRUISE_APPROACH
//	FlareAltitudeM < altitude <= Approach    → FINAL_APPROACH
//	TouchdownAltitudeM < altitude <= Flare   → FLARE
//	altitude <= TouchdownAltitudeM           → TOUCHDOWN
//
// An excessive descent rate inside the final approach band does not
// push the stage back up; it sets the Unstabilized advisory instead.
// The core is stateless: sequencing across snapshots is the caller's
// concern.
func ClassifyLanding(cfg config.LandingConfig, s Snapshot) LandingResult {
	descentRate := 0.0
	if s.VerticalSpeedMps < 0 {
		descentRate = -s.VerticalSpeedMps
	}

	r := LandingResult{
		DescentRateMps: descentRate,
	}

	switch {
	case s.AltitudeM <= cfg.TouchdownAltitudeM:
		r.Stage = StageTouchdown
	case s.AltitudeM <= cfg.FlareAltitudeM:
		r.Stage = StageFlare
	case s.AltitudeM <= cfg.ApproachAltitudeM:
		r.Stage = StageFinalApproach
		r.Unstabilized = descentRate > cfg.MaxDescentRateMps
	default:
		r.Stage = StageCruiseApproach
	}

	return r
}
