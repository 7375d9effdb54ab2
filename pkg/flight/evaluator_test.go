package flight

import (
	"encoding/json"
	"testing"

	"github.com/unklstewy/flight-director/pkg/config"
)

// TestNewEvaluator tests configuration validation at construction.
func TestNewEvaluator(t *testing.T) {
	t.Run("Default configuration is valid", func(t *testing.T) {
		if _, err := NewEvaluator(config.DefaultConfig()); err != nil {
			t.Fatalf("Expected default config to validate, got: %v", err)
		}
	})

	t.Run("Invalid aircraft is rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Aircraft.WingAreaM2 = 0
		if _, err := NewEvaluator(cfg); err == nil {
			t.Error("Expected error for zero wing area, got nil")
		}
	})

	t.Run("Inverted landing boundaries are rejected", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Landing.FlareAltitudeM = 200 // above approach ceiling
		if _, err := NewEvaluator(cfg); err == nil {
			t.Error("Expected error for inverted landing boundaries, got nil")
		}
	})
}

// TestEvaluate tests the aggregate status record.
func TestEvaluate(t *testing.T) {
	ev, err := NewEvaluator(config.DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create evaluator: %v", err)
	}

	cruise := Snapshot{
		VelocityMps:      50,
		AltitudeM:        500,
		AngleOfAttackDeg: 3,
		ThrustN:          4000,
		TargetAltitudeM:  500,
	}

	t.Run("All fields populated", func(t *testing.T) {
		st := ev.Evaluate(cruise)

		if st.WeightN <= 0 {
			t.Errorf("Expected positive weight, got %g", st.WeightN)
		}
		if st.StallSpeedMps <= 0 {
			t.Errorf("Expected positive stall speed, got %g", st.StallSpeedMps)
		}
		if st.DragCoefficient < ev.Aircraft().ZeroLiftDragCoefficient {
			t.Errorf("Expected CD >= CD0, got %g", st.DragCoefficient)
		}
		if st.Stall.State != StallNormal {
			t.Errorf("Expected NORMAL stall state in cruise, got %s", st.Stall.State)
		}
		if st.Landing.Stage != StageCruiseApproach {
			t.Errorf("Expected CRUISE_APPROACH at 500 m, got %s", st.Landing.Stage)
		}
		if st.InFlight.Mode != ModeCruise {
			t.Errorf("Expected CRUISE mode, got %s", st.InFlight.Mode)
		}
		if st.AltitudeHold.Command != CommandHold {
			t.Errorf("Expected HOLD at target altitude, got %s", st.AltitudeHold.Command)
		}
		if len(st.Warnings) != 0 {
			t.Errorf("Expected no warnings for a clean snapshot, got %v", st.Warnings)
		}
	})

	t.Run("Deterministic across repeated calls", func(t *testing.T) {
		first := ev.Evaluate(cruise)
		for i := 0; i < 5; i++ {
			got := ev.Evaluate(cruise)
			a, _ := json.Marshal(first)
			b, _ := json.Marshal(got)
			if string(a) != string(b) {
				t.Fatalf("Expected identical status on repeated evaluation:\n%s\nvs\n%s", a, b)
			}
		}
	})

	t.Run("Negative airspeed warns and proceeds", func(t *testing.T) {
		bad := cruise
		bad.VelocityMps = -50
		st := ev.Evaluate(bad)
		if len(st.Warnings) != 1 {
			t.Fatalf("Expected 1 warning, got %d", len(st.Warnings))
		}
		if st.Warnings[0].Field != "velocity_mps" {
			t.Errorf("Expected warning on velocity_mps, got %s", st.Warnings[0].Field)
		}
		if st.Snapshot.VelocityMps != 50 {
			t.Errorf("Expected magnitude 50 m/s after clamping, got %g", st.Snapshot.VelocityMps)
		}
		// Derived values must match the clamped input
		if st.LiftN <= 0 {
			t.Errorf("Expected positive lift after clamping, got %g", st.LiftN)
		}
	})

	t.Run("Extreme angle of attack clamped", func(t *testing.T) {
		bad := cruise
		bad.AngleOfAttackDeg = 150
		st := ev.Evaluate(bad)
		if st.Snapshot.AngleOfAttackDeg != 90 {
			t.Errorf("Expected alpha clamped to 90°, got %g", st.Snapshot.AngleOfAttackDeg)
		}
		if len(st.Warnings) == 0 {
			t.Error("Expected a warning for extreme angle of attack")
		}
		if st.Stall.State != Stalled {
			t.Errorf("Expected STALLED at clamped 90° alpha, got %s", st.Stall.State)
		}
	})

	t.Run("Serializes to JSON", func(t *testing.T) {
		st := ev.Evaluate(cruise)
		data, err := json.Marshal(st)
		if err != nil {
			t.Fatalf("Failed to marshal status: %v", err)
		}
		var decoded Status
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Failed to unmarshal status: %v", err)
		}
		if decoded.Stall.State != st.Stall.State {
			t.Errorf("Expected stall state %s after round trip, got %s",
				st.Stall.State, decoded.Stall.State)
		}
	})
}
