package flight

// Snapshot is one set of instantaneous flight parameters. Every
// evaluation consumes exactly one snapshot; no temporal relationship
// between snapshots is assumed. Classifiers that do not need a field
// ignore it.
type Snapshot struct {
	// VelocityMps is the airspeed in m/s
	VelocityMps float64 `json:"velocity_mps"`

	// AltitudeM is the altitude above ground in meters
	AltitudeM float64 `json:"altitude_m"`

	// AngleOfAttackDeg is the angle of attack in degrees
	AngleOfAttackDeg float64 `json:"angle_of_attack_deg"`

	// FlapAngleDeg is the flap deflection in degrees
	FlapAngleDeg float64 `json:"flap_angle_deg"`

	// BankAngleDeg is the bank angle in degrees
	BankAngleDeg float64 `json:"bank_angle_deg"`

	// ThrustN is the current thrust setting in newtons
	ThrustN float64 `json:"thrust_n"`

	// VerticalSpeedMps is the rate of climb (positive) or descent
	// (negative) in m/s
	VerticalSpeedMps float64 `json:"vertical_speed_mps"`

	// TargetAltitudeM is the altitude-hold target in meters; zero means
	// no target is set
	TargetAltitudeM float64 `json:"target_altitude_m"`
}

// StallState classifies proximity to an aerodynamic stall.
type StallState string

const (
	StallNormal  StallState = "NORMAL"
	StallWarning StallState = "STALL_WARNING"
	Stalled      StallState = "STALLED"
)

// severity orders stall states so the most severe finding wins when the
// speed and angle-of-attack checks disagree.
func (s StallState) severity() int {
	switch s {
	case Stalled:
		return 2
	case StallWarning:
		return 1
	default:
		return 0
	}
}

// LandingStage classifies the phase of a landing for one snapshot.
type LandingStage string

const (
	StageCruiseApproach LandingStage = "CRUISE_APPROACH"
	StageFinalApproach  LandingStage = "FINAL_APPROACH"
	StageFlare          LandingStage = "FLARE"
	StageTouchdown      LandingStage = "TOUCHDOWN"
)

// Ordinal returns the stage position in the descent sequence; higher
// values are closer to the ground. Stage boundaries are monotonic in
// altitude, so repeated evaluation over a real descent traverses the
// ordinals in increasing order.
func (s LandingStage) Ordinal() int {
	switch s {
	case StageTouchdown:
		return 3
	case StageFlare:
		return 2
	case StageFinalApproach:
		return 1
	default:
		return 0
	}
}

// FlightMode classifies the vertical flight regime.
type FlightMode string

const (
	ModeClimb   FlightMode = "CLIMB"
	ModeDescend FlightMode = "DESCEND"
	ModeCruise  FlightMode = "CRUISE"
)

// HoldCommand is the altitude-hold corrective command.
type HoldCommand string

const (
	CommandHold    HoldCommand = "HOLD"
	CommandClimb   HoldCommand = "CLIMB"
	CommandDescend HoldCommand = "DESCEND"
)

// TakeoffLimit names the condition currently preventing takeoff.
type TakeoffLimit string

const (
	// LimitNone means no condition is failing
	LimitNone TakeoffLimit = ""

	// LimitLift means lift has not yet reached weight
	LimitLift TakeoffLimit = "INSUFFICIENT_LIFT"

	// LimitAirspeed means airspeed is below stall speed
	LimitAirspeed TakeoffLimit = "BELOW_STALL_SPEED"

	// LimitThrust means thrust is below the minimum operating threshold
	LimitThrust TakeoffLimit = "INSUFFICIENT_THRUST"
)

// Warning is a field-level input advisory attached to a Status. It
// reports out-of-range inputs that were clamped or flagged; the
// evaluation still completes.
type Warning struct {
	// Field is the snapshot field the warning refers to
	Field string `json:"field"`

	// Message describes the problem and how the value was handled
	Message string `json:"message"`
}

// Status is the aggregate result of one evaluation cycle: the derived
// physics values plus one outcome per classifier. A fresh Status is
// created per call and owned solely by the caller after return.
type Status struct {
	// Snapshot echoes the evaluated input
	Snapshot Snapshot `json:"snapshot"`

	// Derived physics values, recomputed every cycle
	LiftCoefficient float64 `json:"lift_coefficient"`
	LiftN           float64 `json:"lift_n"`
	DragCoefficient float64 `json:"drag_coefficient"`
	DragN           float64 `json:"drag_n"`
	WeightN         float64 `json:"weight_n"`
	StallSpeedMps   float64 `json:"stall_speed_mps"`
	LoadFactor      float64 `json:"load_factor"`

	// Classifier outcomes
	Stall        StallResult        `json:"stall"`
	Takeoff      TakeoffResult      `json:"takeoff"`
	Landing      LandingResult      `json:"landing"`
	InFlight     InFlightResult     `json:"in_flight"`
	Turn         TurnResult         `json:"turn"`
	AltitudeHold AltitudeHoldResult `json:"altitude_hold"`

	// Warnings holds field-level input advisories; empty on a clean run
	Warnings []Warning `json:"warnings,omitempty"`
}
