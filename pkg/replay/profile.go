package replay

import (
	"math"

	"github.com/unklstewy/flight-director/pkg/flight"
)

// ProfileOptions parameterizes a generated demo flight.
type ProfileOptions struct {
	// CruiseAltitudeM is the top of the climb (default: 500)
	CruiseAltitudeM float64

	// CruiseSpeedMps is the cruise airspeed (default: 55)
	CruiseSpeedMps float64

	// RotateSpeedMps is the speed at which the aircraft rotates and
	// lifts off (default: 35)
	RotateSpeedMps float64

	// MaxThrustN is the full-power thrust used during the takeoff roll
	// and climb (default: 8000)
	MaxThrustN float64

	// StepsPerPhase is the number of snapshots per flight phase
	// (default: 20)
	StepsPerPhase int
}

func (o ProfileOptions) withDefaults() ProfileOptions {
	if o.CruiseAltitudeM <= 0 {
		o.CruiseAltitudeM = 500
	}
	if o.CruiseSpeedMps <= 0 {
		o.CruiseSpeedMps = 55
	}
	if o.RotateSpeedMps <= 0 {
		o.RotateSpeedMps = 35
	}
	if o.MaxThrustN <= 0 {
		o.MaxThrustN = 8000
	}
	if o.StepsPerPhase <= 0 {
		o.StepsPerPhase = 20
	}
	return o
}

// GenerateProfile synthesizes a complete demo flight as a snapshot
// sequence: takeoff roll, climb, cruise (with a banked turn), descent,
// final approach and touchdown. The sequence is deterministic for a
// given set of options, which makes it suitable for demos and tests.
//
// The profile is kinematic only — each snapshot is a plausible state,
// not the result of integrating the previous one.
func GenerateProfile(opts ProfileOptions) []flight.Snapshot {
	o := opts.withDefaults()
	n := o.StepsPerPhase
	var seq []flight.Snapshot

	// Takeoff roll: accelerate to rotate speed on the runway
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		seq = append(seq, flight.Snapshot{
			VelocityMps:      f * o.RotateSpeedMps,
			AltitudeM:        0,
			AngleOfAttackDeg: 2,
			FlapAngleDeg:     10,
			ThrustN:          o.MaxThrustN,
			TargetAltitudeM:  o.CruiseAltitudeM,
		})
	}

	// Climb: accelerate toward cruise speed while climbing
	for i := 0; i < n; i++ {
		f := float64(i+1) / float64(n)
		seq = append(seq, flight.Snapshot{
			VelocityMps:      o.RotateSpeedMps + f*(o.CruiseSpeedMps-o.RotateSpeedMps),
			AltitudeM:        f * o.CruiseAltitudeM,
			AngleOfAttackDeg: 8 - 4*f,
			FlapAngleDeg:     10 * (1 - f),
			ThrustN:          o.MaxThrustN,
			VerticalSpeedMps: 5,
			TargetAltitudeM:  o.CruiseAltitudeM,
		})
	}

	// Cruise with a gentle turn mid-segment
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		bank := 30 * math.Sin(f*math.Pi)
		seq = append(seq, flight.Snapshot{
			VelocityMps:      o.CruiseSpeedMps,
			AltitudeM:        o.CruiseAltitudeM,
			AngleOfAttackDeg: 3,
			BankAngleDeg:     bank,
			ThrustN:          0.5 * o.MaxThrustN,
			TargetAltitudeM:  o.CruiseAltitudeM,
		})
	}

	// Descent to the approach ceiling
	for i := 0; i < n; i++ {
		f := float64(i+1) / float64(n)
		seq = append(seq, flight.Snapshot{
			VelocityMps:      o.CruiseSpeedMps - 10*f,
			AltitudeM:        o.CruiseAltitudeM * (1 - 0.7*f),
			AngleOfAttackDeg: 4,
			ThrustN:          0.3 * o.MaxThrustN,
			VerticalSpeedMps: -4,
		})
	}

	// Final approach and touchdown: flaps out, decelerating
	finalTop := o.CruiseAltitudeM * 0.3
	for i := 0; i < n; i++ {
		f := float64(i+1) / float64(n)
		alt := finalTop * (1 - f)
		vs := -3.0
		if alt < 10 {
			vs = -1 // flare
		}
		if alt < 0.5 {
			alt = 0
			vs = 0
		}
		seq = append(seq, flight.Snapshot{
			VelocityMps:      o.CruiseSpeedMps - 10 - 15*f,
			AltitudeM:        alt,
			AngleOfAttackDeg: 5 + 2*f,
			FlapAngleDeg:     30,
			ThrustN:          0.15 * o.MaxThrustN,
			VerticalSpeedMps: vs,
		})
	}

	return seq
}
