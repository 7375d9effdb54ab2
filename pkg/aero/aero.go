// Package aero implements the aerodynamic model for the flight decision
// engine: lift, drag, stall speed, load factor and turn geometry.
//
// Every function is a pure computation over an Aircraft definition and
// instantaneous flight parameters. Nothing in this package keeps state
// between calls, so all functions are safe for concurrent use.
//
// Units are SI throughout: meters, seconds, kilograms, newtons, degrees
// for angles at the API boundary (converted to radians internally).
package aero

import (
	"fmt"
	"math"
)

const (
	// StandardAirDensity is sea-level air density at 15°C (kg/m³).
	StandardAirDensity = 1.225

	// StandardGravity is standard gravitational acceleration (m/s²).
	StandardGravity = 9.81

	// DegreesToRadians converts degrees to radians.
	DegreesToRadians = math.Pi / 180.0

	// RadiansToDegrees converts radians to degrees.
	RadiansToDegrees = 180.0 / math.Pi
)

// Aircraft holds the fixed physical constants of the airframe being
// evaluated. Values are immutable for the duration of a run; Validate
// must pass before any computation is attempted.
type Aircraft struct {
	// MassKg is the aircraft mass in kilograms
	MassKg float64 `json:"mass_kg"`

	// WingAreaM2 is the reference wing area in square meters
	WingAreaM2 float64 `json:"wing_area_m2"`

	// LiftCoefficientZero is the lift coefficient at zero angle of attack
	LiftCoefficientZero float64 `json:"lift_coefficient_zero"`

	// LiftCoefficientSlope is the lift coefficient increase per degree
	// of angle of attack (linear region)
	LiftCoefficientSlope float64 `json:"lift_coefficient_slope"`

	// LiftCoefficientFlap is the lift coefficient increase per degree
	// of flap deflection
	LiftCoefficientFlap float64 `json:"lift_coefficient_flap"`

	// MaxLiftCoefficient is CL_max for the clean configuration,
	// used for stall speed
	MaxLiftCoefficient float64 `json:"max_lift_coefficient"`

	// ZeroLiftDragCoefficient is the parasitic drag coefficient CD0
	ZeroLiftDragCoefficient float64 `json:"zero_lift_drag_coefficient"`

	// InducedDragFactor is the induced drag factor k in the drag polar
	// CD = CD0 + k*CL²
	InducedDragFactor float64 `json:"induced_drag_factor"`

	// MaxThrustN is the maximum available thrust in newtons
	MaxThrustN float64 `json:"max_thrust_n"`

	// StallAngleDeg is the angle of attack (degrees) at which the wing
	// stalls; the lift curve decays beyond it
	StallAngleDeg float64 `json:"stall_angle_deg"`

	// AirDensity is the ambient air density in kg/m³
	AirDensity float64 `json:"air_density"`

	// Gravity is the gravitational acceleration in m/s²
	Gravity float64 `json:"gravity"`
}

// Validate checks the aircraft constants for physical consistency.
// A violation here is a configuration error: the caller must not
// proceed with any computation.
func (a Aircraft) Validate() error {
	if a.MassKg <= 0 {
		return fmt.Errorf("aircraft mass must be positive, got %g kg", a.MassKg)
	}
	if a.WingAreaM2 <= 0 {
		return fmt.Errorf("wing area must be positive, got %g m²", a.WingAreaM2)
	}
	if a.AirDensity <= 0 {
		return fmt.Errorf("air density must be positive, got %g kg/m³", a.AirDensity)
	}
	if a.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %g m/s²", a.Gravity)
	}
	if a.MaxLiftCoefficient <= 0 {
		return fmt.Errorf("max lift coefficient must be positive, got %g", a.MaxLiftCoefficient)
	}
	if a.ZeroLiftDragCoefficient < 0 {
		return fmt.Errorf("zero-lift drag coefficient must be non-negative, got %g", a.ZeroLiftDragCoefficient)
	}
	if a.InducedDragFactor < 0 {
		return fmt.Errorf("induced drag factor must be non-negative, got %g", a.InducedDragFactor)
	}
	if a.StallAngleDeg <= 0 {
		return fmt.Errorf("stall angle must be positive, got %g°", a.StallAngleDeg)
	}
	return nil
}

// Weight returns the aircraft weight in newtons (W = m·g).
func (a Aircraft) Weight() float64 {
	return a.MassKg * a.Gravity
}

// LiftCoefficient returns the lift coefficient for the given angle of
// attack and flap deflection (both in degrees).
//
// The lift curve is linear below the stall angle:
//
//	CL = CL0 + CLα·α + CLflap·δf
//
// Beyond the stall angle the wing is separated and the coefficient
// decays linearly at twice the lift-curve slope, floored at zero, so
// the lift loss shows up in the computed forces rather than clamping
// at CL_max.
func (a Aircraft) LiftCoefficient(alphaDeg, flapDeg float64) float64 {
	cl := a.LiftCoefficientZero + a.LiftCoefficientSlope*alphaDeg + a.LiftCoefficientFlap*flapDeg

	if alphaDeg > a.StallAngleDeg {
		// Separated flow: decay from the stall-angle value
		clStall := a.LiftCoefficientZero + a.LiftCoefficientSlope*a.StallAngleDeg + a.LiftCoefficientFlap*flapDeg
		cl = clStall - 2.0*a.LiftCoefficientSlope*(alphaDeg-a.StallAngleDeg)
	}

	if cl < 0 {
		cl = 0
	}
	return cl
}

// Lift returns the lift force in newtons for the given airspeed (m/s)
// and lift coefficient:
//
//	L = ½·ρ·v²·S·CL
func (a Aircraft) Lift(velocity, liftCoefficient float64) float64 {
	return 0.5 * a.AirDensity * velocity * velocity * a.WingAreaM2 * liftCoefficient
}

// DragCoefficient returns the total drag coefficient from the parabolic
// drag polar:
//
//	CD = CD0 + k·CL²
//
// The induced term is non-negative, so CD >= CD0 always holds.
func (a Aircraft) DragCoefficient(liftCoefficient float64) float64 {
	return a.ZeroLiftDragCoefficient + a.InducedDragFactor*liftCoefficient*liftCoefficient
}

// Drag returns the drag force in newtons for the given airspeed (m/s)
// and drag coefficient:
//
//	D = ½·ρ·v²·S·CD
func (a Aircraft) Drag(velocity, dragCoefficient float64) float64 {
	return 0.5 * a.AirDensity * velocity * velocity * a.WingAreaM2 * dragCoefficient
}

// StallSpeed returns the 1g stall speed (m/s) for the clean
// configuration:
//
//	Vs = sqrt(2W / (ρ·S·CL_max))
//
// This is the minimum speed at which lift can still equal weight.
func (a Aircraft) StallSpeed() float64 {
	return math.Sqrt(2.0 * a.Weight() / (a.AirDensity * a.WingAreaM2 * a.MaxLiftCoefficient))
}

// StallSpeedWithFlaps returns the stall speed (m/s) accounting for the
// CL_max increase from flap deflection. Flaps lower the stall speed.
func (a Aircraft) StallSpeedWithFlaps(flapDeg float64) float64 {
	effectiveCLMax := a.MaxLiftCoefficient + a.LiftCoefficientFlap*flapDeg
	if effectiveCLMax <= 0 {
		effectiveCLMax = a.MaxLiftCoefficient
	}
	return math.Sqrt(2.0 * a.Weight() / (a.AirDensity * a.WingAreaM2 * effectiveCLMax))
}

// StallSpeedInTurn returns the stall speed (m/s) in a banked turn.
// Load factor raises stall speed by sqrt(n):
//
//	Vs_turn = Vs·sqrt(n)
//
// A load factor below 1 (unloaded wing) is treated as 1.
func (a Aircraft) StallSpeedInTurn(flapDeg, bankDeg float64) float64 {
	n := BankLoadFactor(bankDeg)
	if n < 1 {
		n = 1
	}
	return a.StallSpeedWithFlaps(flapDeg) * math.Sqrt(n)
}

// LoadFactor returns the ratio of lift force to weight. A value of 1
// corresponds to level unaccelerated flight.
func (a Aircraft) LoadFactor(lift float64) float64 {
	return lift / a.Weight()
}

// BankLoadFactor returns the load factor required to sustain a level
// turn at the given bank angle (degrees):
//
//	n = 1 / cos(φ)
//
// At 90° bank the required load factor is unbounded; the function
// returns +Inf in that case and callers are expected to treat it as an
// overload, not as a fault.
func BankLoadFactor(bankDeg float64) float64 {
	c := math.Cos(math.Abs(bankDeg) * DegreesToRadians)
	if c <= 1e-9 {
		return math.Inf(1)
	}
	return 1.0 / c
}

// TurnRadius returns the radius (meters) of a coordinated level turn at
// the given airspeed (m/s) and bank angle (degrees):
//
//	r = v² / (g·tan(φ))
//
// There is no finite turn radius at zero bank (straight flight) or at
// 90° bank; ok is false in those cases and the radius value must be
// ignored. An undefined radius is a normal outcome, not an error.
func (a Aircraft) TurnRadius(velocity, bankDeg float64) (radius float64, ok bool) {
	abs := math.Abs(bankDeg)
	if abs < 1e-6 || abs >= 90.0 {
		return 0, false
	}
	return velocity * velocity / (a.Gravity * math.Tan(abs*DegreesToRadians)), true
}
