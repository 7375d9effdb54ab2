package flight

import (
	"math"

	"github.com/unklstewy/flight-director/pkg/config"
)

// AltitudeHoldResult is the altitude hold controller output.
type AltitudeHoldResult struct {
	// Command is HOLD inside the deadband, otherwise CLIMB or DESCEND
	Command HoldCommand `json:"command"`

	// DeviationM is current altitude minus target altitude; zero when
	// no target is set
	DeviationM float64 `json:"deviation_m"`

	// CommandedRateMps is the commanded climb rate (positive) or
	// descent rate (negative); zero for HOLD
	CommandedRateMps float64 `json:"commanded_rate_mps"`
}

// EvaluateAltitudeHold produces a corrective command toward the target
// altitude. A zero target means no target is set; the command is HOLD
// with zero deviation, matching ClassifyFlightMode.
//
// The response is purely proportional: commanded rate is
// Gain·|deviation| capped at MaxCommandRateMps, signed toward the
// target. There is no integral or derivative term and no accumulated
// error; each snapshot is evaluated on its own.
func EvaluateAltitudeHold(cfg config.AltitudeHoldConfig, s Snapshot) AltitudeHoldResult {
	if s.TargetAltitudeM == 0 {
		return AltitudeHoldResult{Command: CommandHold}
	}

	deviation := s.AltitudeM - s.TargetAltitudeM

	r := AltitudeHoldResult{
		DeviationM: deviation,
	}

	if math.Abs(deviation) <= cfg.DeadbandM {
		r.Command = CommandHold
		return r
	}

	rate := math.Min(cfg.Gain*math.Abs(deviation), cfg.MaxCommandRateMps)
	if deviation < 0 {
		r.Command = CommandClimb
		r.CommandedRateMps = rate
	} else {
		r.Command = CommandDescend
		r.CommandedRateMps = -rate
	}

	return r
}
