package flight

import (
	"math"

	"github.com/unklstewy/flight-director/pkg/aero"
	"github.com/unklstewy/flight-director/pkg/config"
)

// TurnResult is the turn classifier output.
type TurnResult struct {
	// RadiusM is the coordinated turn radius in meters; only meaningful
	// when RadiusDefined is true
	RadiusM float64 `json:"radius_m"`

	// RadiusDefined is false when no finite turn radius exists (zero
	// bank, or bank at/beyond 90°)
	RadiusDefined bool `json:"radius_defined"`

	// LoadFactor is the load factor required to sustain the turn
	LoadFactor float64 `json:"load_factor"`

	// Overload is true when the load factor exceeds the configured
	// structural limit. This advisory is always computed, never
	// suppressed.
	Overload bool `json:"overload"`
}

// EvaluateTurn computes the turn geometry and the structural-load
// advisory for the snapshot. Wings level yields load factor 1, no
// finite radius and no overload. A knife-edge bank has an unbounded
// load factor and is always an overload.
func EvaluateTurn(ac aero.Aircraft, cfg config.TurnConfig, s Snapshot) TurnResult {
	radius, defined := ac.TurnRadius(s.VelocityMps, s.BankAngleDeg)
	n := aero.BankLoadFactor(s.BankAngleDeg)

	return TurnResult{
		RadiusM:       radius,
		RadiusDefined: defined,
		LoadFactor:    n,
		Overload:      math.IsInf(n, 1) || n > cfg.MaxLoadFactor,
	}
}
