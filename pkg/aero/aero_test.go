package aero

import (
	"math"
	"testing"
)

// testAircraft returns a small GA-class airframe used across the tests.
func testAircraft() Aircraft {
	return Aircraft{
		MassKg:                  1000,
		WingAreaM2:              16,
		LiftCoefficientZero:     0.25,
		LiftCoefficientSlope:    0.10,
		LiftCoefficientFlap:     0.01,
		MaxLiftCoefficient:      1.4,
		ZeroLiftDragCoefficient: 0.02,
		InducedDragFactor:       0.045,
		MaxThrustN:              8000,
		StallAngleDeg:           15,
		AirDensity:              StandardAirDensity,
		Gravity:                 StandardGravity,
	}
}

// approxEqual checks if two values are within tolerance.
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// TestValidate tests aircraft constant validation.
func TestValidate(t *testing.T) {
	t.Run("Valid aircraft passes", func(t *testing.T) {
		if err := testAircraft().Validate(); err != nil {
			t.Errorf("Expected valid aircraft, got error: %v", err)
		}
	})

	t.Run("Non-positive mass rejected", func(t *testing.T) {
		ac := testAircraft()
		ac.MassKg = 0
		if err := ac.Validate(); err == nil {
			t.Error("Expected error for zero mass, got nil")
		}
	})

	t.Run("Non-positive wing area rejected", func(t *testing.T) {
		ac := testAircraft()
		ac.WingAreaM2 = -5
		if err := ac.Validate(); err == nil {
			t.Error("Expected error for negative wing area, got nil")
		}
	})

	t.Run("Non-positive air density rejected", func(t *testing.T) {
		ac := testAircraft()
		ac.AirDensity = 0
		if err := ac.Validate(); err == nil {
			t.Error("Expected error for zero air density, got nil")
		}
	})
}

// TestLiftCoefficient tests the lift curve including post-stall decay.
func TestLiftCoefficient(t *testing.T) {
	ac := testAircraft()

	t.Run("Zero angle of attack", func(t *testing.T) {
		cl := ac.LiftCoefficient(0, 0)
		if !approxEqual(cl, 0.25, 1e-9) {
			t.Errorf("Expected CL 0.25 at zero alpha, got %g", cl)
		}
	})

	t.Run("Linear region", func(t *testing.T) {
		cl := ac.LiftCoefficient(5, 10)
		// 0.25 + 0.10*5 + 0.01*10 = 0.85
		if !approxEqual(cl, 0.85, 1e-9) {
			t.Errorf("Expected CL 0.85, got %g", cl)
		}
	})

	t.Run("Monotonic up to stall angle", func(t *testing.T) {
		prev := ac.LiftCoefficient(0, 0)
		for alpha := 1.0; alpha <= ac.StallAngleDeg; alpha++ {
			cl := ac.LiftCoefficient(alpha, 0)
			if cl <= prev {
				t.Errorf("Expected CL to increase at alpha %g, got %g <= %g", alpha, cl, prev)
			}
			prev = cl
		}
	})

	t.Run("Decays beyond stall angle", func(t *testing.T) {
		atStall := ac.LiftCoefficient(ac.StallAngleDeg, 0)
		beyond := ac.LiftCoefficient(ac.StallAngleDeg+5, 0)
		if beyond >= atStall {
			t.Errorf("Expected post-stall CL %g below stall-angle CL %g", beyond, atStall)
		}
	})

	t.Run("Never negative", func(t *testing.T) {
		cl := ac.LiftCoefficient(60, 0)
		if cl < 0 {
			t.Errorf("Expected non-negative CL deep post-stall, got %g", cl)
		}
	})
}

// TestLiftAndDrag tests the force equations and the drag polar.
func TestLiftAndDrag(t *testing.T) {
	ac := testAircraft()

	t.Run("Lift formula", func(t *testing.T) {
		// L = 0.5 * 1.225 * 40² * 16 * 1.0 = 15680 N
		lift := ac.Lift(40, 1.0)
		if !approxEqual(lift, 15680, 0.5) {
			t.Errorf("Expected lift 15680 N, got %g", lift)
		}
	})

	t.Run("Lift is zero at zero airspeed", func(t *testing.T) {
		if lift := ac.Lift(0, 1.4); lift != 0 {
			t.Errorf("Expected zero lift at zero airspeed, got %g", lift)
		}
	})

	t.Run("Drag coefficient never below CD0", func(t *testing.T) {
		for cl := -2.0; cl <= 2.0; cl += 0.1 {
			cd := ac.DragCoefficient(cl)
			if cd < ac.ZeroLiftDragCoefficient {
				t.Errorf("Expected CD >= CD0 at CL %g, got %g", cl, cd)
			}
		}
	})

	t.Run("Drag polar", func(t *testing.T) {
		// CD = 0.02 + 0.045*1² = 0.065
		cd := ac.DragCoefficient(1.0)
		if !approxEqual(cd, 0.065, 1e-9) {
			t.Errorf("Expected CD 0.065, got %g", cd)
		}
	})
}

// TestStallSpeed tests stall speed values and monotonicity.
func TestStallSpeed(t *testing.T) {
	ac := testAircraft()

	t.Run("Clean configuration value", func(t *testing.T) {
		// Vs = sqrt(2*1000*9.81 / (1.225*16*1.4)) ≈ 26.74 m/s
		vs := ac.StallSpeed()
		if !approxEqual(vs, 26.74, 0.05) {
			t.Errorf("Expected stall speed ≈26.74 m/s, got %g", vs)
		}
	})

	t.Run("Strictly positive", func(t *testing.T) {
		if vs := ac.StallSpeed(); vs <= 0 {
			t.Errorf("Expected positive stall speed, got %g", vs)
		}
	})

	t.Run("Increases with mass", func(t *testing.T) {
		heavy := ac
		heavy.MassKg = 1500
		if heavy.StallSpeed() <= ac.StallSpeed() {
			t.Errorf("Expected higher stall speed for heavier aircraft: %g vs %g",
				heavy.StallSpeed(), ac.StallSpeed())
		}
	})

	t.Run("Decreases with wing area", func(t *testing.T) {
		bigWing := ac
		bigWing.WingAreaM2 = 24
		if bigWing.StallSpeed() >= ac.StallSpeed() {
			t.Errorf("Expected lower stall speed for bigger wing: %g vs %g",
				bigWing.StallSpeed(), ac.StallSpeed())
		}
	})

	t.Run("Decreases with max lift coefficient", func(t *testing.T) {
		highCL := ac
		highCL.MaxLiftCoefficient = 2.0
		if highCL.StallSpeed() >= ac.StallSpeed() {
			t.Errorf("Expected lower stall speed for higher CLmax: %g vs %g",
				highCL.StallSpeed(), ac.StallSpeed())
		}
	})

	t.Run("Flaps reduce stall speed", func(t *testing.T) {
		withFlaps := ac.StallSpeedWithFlaps(30)
		clean := ac.StallSpeed()
		if withFlaps >= clean {
			t.Errorf("Expected flaps to reduce stall speed: %g vs %g", withFlaps, clean)
		}
	})

	t.Run("Bank raises stall speed", func(t *testing.T) {
		banked := ac.StallSpeedInTurn(0, 60)
		clean := ac.StallSpeed()
		// At 60° bank n=2, Vs scales by sqrt(2)
		if !approxEqual(banked, clean*math.Sqrt2, 0.01) {
			t.Errorf("Expected 60° bank stall speed %g, got %g", clean*math.Sqrt2, banked)
		}
	})
}

// TestLoadFactor tests lift-based and bank-based load factor.
func TestLoadFactor(t *testing.T) {
	ac := testAircraft()

	t.Run("Unity in level flight", func(t *testing.T) {
		n := ac.LoadFactor(ac.Weight())
		if !approxEqual(n, 1.0, 1e-9) {
			t.Errorf("Expected load factor 1.0 when lift equals weight, got %g", n)
		}
	})

	t.Run("Bank angle 60 gives n=2", func(t *testing.T) {
		n := BankLoadFactor(60)
		if !approxEqual(n, 2.0, 1e-9) {
			t.Errorf("Expected load factor 2.0 at 60° bank, got %g", n)
		}
	})

	t.Run("Knife edge is infinite", func(t *testing.T) {
		if n := BankLoadFactor(90); !math.IsInf(n, 1) {
			t.Errorf("Expected +Inf load factor at 90° bank, got %g", n)
		}
	})
}

// TestTurnRadius tests the turn geometry including the undefined sentinel.
func TestTurnRadius(t *testing.T) {
	ac := testAircraft()

	t.Run("Level turn at 45 degrees", func(t *testing.T) {
		// r = 30² / (9.81 * tan(45°)) ≈ 91.74 m
		r, ok := ac.TurnRadius(30, 45)
		if !ok {
			t.Fatal("Expected defined turn radius at 45° bank")
		}
		if !approxEqual(r, 91.74, 1.0) {
			t.Errorf("Expected turn radius ≈91.74 m, got %g", r)
		}
	})

	t.Run("Undefined at zero bank", func(t *testing.T) {
		if _, ok := ac.TurnRadius(30, 0); ok {
			t.Error("Expected undefined turn radius at zero bank")
		}
	})

	t.Run("Undefined at 90 degrees", func(t *testing.T) {
		if _, ok := ac.TurnRadius(30, 90); ok {
			t.Error("Expected undefined turn radius at 90° bank")
		}
	})

	t.Run("Negative bank mirrors positive", func(t *testing.T) {
		rPos, _ := ac.TurnRadius(30, 30)
		rNeg, ok := ac.TurnRadius(30, -30)
		if !ok {
			t.Fatal("Expected defined turn radius at -30° bank")
		}
		if !approxEqual(rPos, rNeg, 1e-9) {
			t.Errorf("Expected symmetric turn radius, got %g vs %g", rPos, rNeg)
		}
	})
}
