package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unklstewy/flight-director/pkg/aero"
)

// Config represents the complete application configuration: the aircraft
// constants plus every per-algorithm threshold. All thresholds carry
// documented defaults and can be overridden from a JSON file without
// code changes.
type Config struct {
	Aircraft     aero.Aircraft      `json:"aircraft"`
	Stall        StallConfig        `json:"stall"`
	Takeoff      TakeoffConfig      `json:"takeoff"`
	Landing      LandingConfig      `json:"landing"`
	InFlight     InFlightConfig     `json:"in_flight"`
	Turn         TurnConfig         `json:"turn"`
	AltitudeHold AltitudeHoldConfig `json:"altitude_hold"`
	Database     DatabaseConfig     `json:"database"`
	Replay       ReplayConfig       `json:"replay"`
}

// StallConfig contains stall detection thresholds.
type StallConfig struct {
	// SpeedMarginFraction defines the warning band above stall speed.
	// Flying below SpeedMarginFraction * Vs (but above Vs) raises
	// STALL_WARNING (default: 1.1)
	SpeedMarginFraction float64 `json:"speed_margin_fraction"`

	// WarningAngleDeg is the angle of attack at which an approach to
	// stall is flagged; the hard stall angle itself is the aircraft's
	// StallAngleDeg (default: 12)
	WarningAngleDeg float64 `json:"warning_angle_deg"`
}

// TakeoffConfig contains takeoff readiness thresholds.
type TakeoffConfig struct {
	// MinThrustFraction is the minimum thrust setting, as a fraction of
	// maximum available thrust, required for a takeoff roll (default: 0.5)
	MinThrustFraction float64 `json:"min_thrust_fraction"`

	// GroundAltitudeM is the altitude below which the aircraft is
	// considered on or near the runway (default: 1.0)
	GroundAltitudeM float64 `json:"ground_altitude_m"`
}

// LandingConfig contains the landing stage boundaries. The boundaries
// must be monotonic in altitude (approach > flare > touchdown) so a real
// descent traverses the stages in order.
type LandingConfig struct {
	// ApproachAltitudeM is the ceiling of the final approach band;
	// above it the stage is CRUISE_APPROACH (default: 150)
	ApproachAltitudeM float64 `json:"approach_altitude_m"`

	// FlareAltitudeM is the altitude below which the flare begins
	// (default: 10)
	FlareAltitudeM float64 `json:"flare_altitude_m"`

	// TouchdownAltitudeM is the altitude at or below which the aircraft
	// is considered on the ground (default: 0.5)
	TouchdownAltitudeM float64 `json:"touchdown_altitude_m"`

	// MaxDescentRateMps is the maximum safe descent rate (magnitude,
	// m/s) for a stabilized final approach (default: 5)
	MaxDescentRateMps float64 `json:"max_descent_rate_mps"`
}

// InFlightConfig contains the climb/descend classification thresholds.
type InFlightConfig struct {
	// ClimbRateMps is the vertical speed above which the mode is CLIMB
	// (default: 0.5)
	ClimbRateMps float64 `json:"climb_rate_mps"`

	// DescendRateMps is the vertical speed below which the mode is
	// DESCEND; must be negative (default: -0.5)
	DescendRateMps float64 `json:"descend_rate_mps"`
}

// TurnConfig contains turn advisory limits.
type TurnConfig struct {
	// MaxLoadFactor is the structural load factor limit; exceeding it
	// sets the overload advisory (default: 2.5, typical for light
	// utility category aircraft)
	MaxLoadFactor float64 `json:"max_load_factor"`
}

// AltitudeHoldConfig contains the altitude hold controller settings.
type AltitudeHoldConfig struct {
	// DeadbandM is the tolerance around the target altitude within
	// which no corrective command is issued (default: 2)
	DeadbandM float64 `json:"deadband_m"`

	// Gain is the proportional gain converting altitude deviation (m)
	// to a commanded climb rate (m/s) (default: 0.4)
	Gain float64 `json:"gain"`

	// MaxCommandRateMps caps the commanded climb/descend rate
	// (default: 10)
	MaxCommandRateMps float64 `json:"max_command_rate_mps"`
}

// DatabaseConfig contains PostgreSQL connection settings for optional
// session recording.
type DatabaseConfig struct {
	// Enabled determines whether evaluations are recorded
	Enabled bool `json:"enabled"`

	// Host is the database server hostname
	Host string `json:"host"`

	// Port is the database server port
	Port int `json:"port"`

	// Database is the database name
	Database string `json:"database"`

	// Username for database authentication
	Username string `json:"username"`

	// Password for database authentication (should be loaded from
	// the FLIGHT_DIRECTOR_DB_PASSWORD environment variable)
	Password string `json:"password"`

	// SSLMode for PostgreSQL connections (disable, require, verify-ca, verify-full)
	SSLMode string `json:"ssl_mode"`

	// MaxOpenConns is the maximum number of open connections
	MaxOpenConns int `json:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle connections
	MaxIdleConns int `json:"max_idle_conns"`
}

// ReplayConfig contains snapshot replay settings.
type ReplayConfig struct {
	// SnapshotsPerSecond is the playback rate for replay files
	// (default: 2)
	SnapshotsPerSecond float64 `json:"snapshots_per_second"`
}

// Load reads configuration from a JSON file.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	return cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the aircraft constants and threshold consistency.
// A failure here is a configuration error: no computation may proceed.
func (c *Config) Validate() error {
	if err := c.Aircraft.Validate(); err != nil {
		return fmt.Errorf("aircraft: %w", err)
	}
	if c.Stall.SpeedMarginFraction < 1.0 {
		return fmt.Errorf("stall: speed margin fraction must be >= 1, got %g", c.Stall.SpeedMarginFraction)
	}
	if c.Stall.WarningAngleDeg >= c.Aircraft.StallAngleDeg {
		return fmt.Errorf("stall: warning angle %g° must be below stall angle %g°",
			c.Stall.WarningAngleDeg, c.Aircraft.StallAngleDeg)
	}
	if c.Takeoff.MinThrustFraction <= 0 || c.Takeoff.MinThrustFraction > 1 {
		return fmt.Errorf("takeoff: min thrust fraction must be in (0, 1], got %g", c.Takeoff.MinThrustFraction)
	}
	if c.Landing.TouchdownAltitudeM >= c.Landing.FlareAltitudeM ||
		c.Landing.FlareAltitudeM >= c.Landing.ApproachAltitudeM {
		return fmt.Errorf("landing: stage boundaries must satisfy touchdown < flare < approach, got %g / %g / %g",
			c.Landing.TouchdownAltitudeM, c.Landing.FlareAltitudeM, c.Landing.ApproachAltitudeM)
	}
	if c.Landing.MaxDescentRateMps <= 0 {
		return fmt.Errorf("landing: max descent rate must be positive, got %g", c.Landing.MaxDescentRateMps)
	}
	if c.InFlight.ClimbRateMps <= 0 {
		return fmt.Errorf("in_flight: climb rate threshold must be positive, got %g", c.InFlight.ClimbRateMps)
	}
	if c.InFlight.DescendRateMps >= 0 {
		return fmt.Errorf("in_flight: descend rate threshold must be negative, got %g", c.InFlight.DescendRateMps)
	}
	if c.Turn.MaxLoadFactor <= 1 {
		return fmt.Errorf("turn: max load factor must exceed 1, got %g", c.Turn.MaxLoadFactor)
	}
	if c.AltitudeHold.DeadbandM < 0 {
		return fmt.Errorf("altitude_hold: deadband must be non-negative, got %g", c.AltitudeHold.DeadbandM)
	}
	if c.AltitudeHold.Gain <= 0 {
		return fmt.Errorf("altitude_hold: gain must be positive, got %g", c.AltitudeHold.Gain)
	}
	if c.AltitudeHold.MaxCommandRateMps <= 0 {
		return fmt.Errorf("altitude_hold: max command rate must be positive, got %g", c.AltitudeHold.MaxCommandRateMps)
	}
	return nil
}

// applyEnvironmentOverrides applies sensitive settings from environment
// variables, so credentials never have to live in the config file.
func (c *Config) applyEnvironmentOverrides() {
	if password := os.Getenv("FLIGHT_DIRECTOR_DB_PASSWORD"); password != "" {
		c.Database.Password = password
	}
	if user := os.Getenv("FLIGHT_DIRECTOR_DB_USER"); user != "" {
		c.Database.Username = user
	}
}

// DefaultConfig returns a configuration with sensible defaults for a
// light single-engine trainer.
func DefaultConfig() *Config {
	return &Config{
		Aircraft: aero.Aircraft{
			MassKg:                  1000,
			WingAreaM2:              16,
			LiftCoefficientZero:     0.25,
			LiftCoefficientSlope:    0.10, // per degree
			LiftCoefficientFlap:     0.01, // per degree of flap
			MaxLiftCoefficient:      1.4,
			ZeroLiftDragCoefficient: 0.02,
			InducedDragFactor:       0.045,
			MaxThrustN:              8000,
			StallAngleDeg:           15,
			AirDensity:              aero.StandardAirDensity,
			Gravity:                 aero.StandardGravity,
		},
		Stall: StallConfig{
			SpeedMarginFraction: 1.1,
			WarningAngleDeg:     12,
		},
		Takeoff: TakeoffConfig{
			MinThrustFraction: 0.5,
			GroundAltitudeM:   1.0,
		},
		Landing: LandingConfig{
			ApproachAltitudeM:  150,
			FlareAltitudeM:     10,
			TouchdownAltitudeM: 0.5,
			MaxDescentRateMps:  5,
		},
		InFlight: InFlightConfig{
			ClimbRateMps:   0.5,
			DescendRateMps: -0.5,
		},
		Turn: TurnConfig{
			MaxLoadFactor: 2.5,
		},
		AltitudeHold: AltitudeHoldConfig{
			DeadbandM:         2,
			Gain:              0.4,
			MaxCommandRateMps: 10,
		},
		Database: DatabaseConfig{
			Enabled:      false,
			Host:         "localhost",
			Port:         5432,
			Database:     "flightdirector",
			Username:     "flightdirector",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		},
		Replay: ReplayConfig{
			SnapshotsPerSecond: 2,
		},
	}
}
