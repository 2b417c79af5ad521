package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/arena/components"
)

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"exact", 80, 80},
		{"round down", 59, 40},
		{"round up", 61, 80},
		{"half rounds away", 20, 40},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapToGrid(tt.v, 40); got != tt.want {
				t.Errorf("SnapToGrid(%v, 40) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestStepAxis(t *testing.T) {
	tests := []struct {
		name              string
		pos, target, step float64
		want              float64
	}{
		{"step forward", 0, 100, 5, 5},
		{"step backward", 100, 0, 5, 95},
		{"land on target", 98, 100, 5, 100},
		{"already there", 40, 40, 5, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepAxis(tt.pos, tt.target, tt.step); got != tt.want {
				t.Errorf("StepAxis(%v, %v, %v) = %v, want %v", tt.pos, tt.target, tt.step, got, tt.want)
			}
		})
	}
}

func TestStepPlayerAxisIndependent(t *testing.T) {
	p := &components.Player{Position: components.Position{X: 400, Y: 500}, Size: 20, Speed: 5}

	// Pointer snaps to (480, 480): x needs 80, y needs 20 -> both step by 5
	StepPlayer(p, 478, 470, 40, 800, 600)
	if p.X != 405 || p.Y != 495 {
		t.Errorf("after one tick player at (%v, %v), want (405, 495)", p.X, p.Y)
	}

	for i := 0; i < 100; i++ {
		StepPlayer(p, 478, 470, 40, 800, 600)
	}
	if p.X != 480 || p.Y != 480 {
		t.Errorf("player settled at (%v, %v), want (480, 480)", p.X, p.Y)
	}
}

func TestStepPlayerClampsToArena(t *testing.T) {
	p := &components.Player{Position: components.Position{X: 22, Y: 578}, Size: 20, Speed: 5}

	StepPlayer(p, -200, 900, 40, 800, 600)
	if p.X != 20 || p.Y != 580 {
		t.Errorf("player at (%v, %v), want clamped to (20, 580)", p.X, p.Y)
	}
}

func TestChaseAndKite(t *testing.T) {
	pos := components.Position{X: 0, Y: 0}
	ChaseStep(&pos, 30, 40, 1.2, 2)
	// Unit vector (0.6, 0.8), distance 2.4
	if math.Abs(pos.X-1.44) > 1e-9 || math.Abs(pos.Y-1.92) > 1e-9 {
		t.Errorf("chase moved to (%v, %v), want (1.44, 1.92)", pos.X, pos.Y)
	}

	pos = components.Position{X: 0, Y: 0}
	KiteStep(&pos, 30, 40, 1, 1)
	if math.Abs(pos.X+0.6) > 1e-9 || math.Abs(pos.Y+0.8) > 1e-9 {
		t.Errorf("kite moved to (%v, %v), want (-0.6, -0.8)", pos.X, pos.Y)
	}

	// Coincident points do not move
	pos = components.Position{X: 5, Y: 5}
	ChaseStep(&pos, 5, 5, 1, 1)
	if pos.X != 5 || pos.Y != 5 {
		t.Errorf("coincident chase moved to (%v, %v)", pos.X, pos.Y)
	}
}

func TestEffectiveSpeed(t *testing.T) {
	if s := EffectiveSpeed(1.2, components.Status{}, 0.5); s != 1.2 {
		t.Errorf("unslowed speed = %v, want 1.2", s)
	}
	if s := EffectiveSpeed(1.2, components.Status{SlowMs: 100}, 0.5); s != 0.6 {
		t.Errorf("slowed speed = %v, want 0.6", s)
	}
}

func TestApproachIsExponential(t *testing.T) {
	// Each frame covers 15% of the remaining gap, so the gap shrinks geometrically
	x, y := 0.0, 0.0
	for i := 0; i < 3; i++ {
		x, y = Approach(x, y, 100, 0, 0.15, 1)
	}
	want := 100 * (1 - math.Pow(0.85, 3))
	if math.Abs(x-want) > 1e-9 || y != 0 {
		t.Errorf("after 3 frames x = %v, want %v", x, want)
	}

	// A very long frame lands on the target instead of overshooting
	x, _ = Approach(0, 0, 100, 0, 0.15, 20)
	if x != 100 {
		t.Errorf("long frame x = %v, want 100", x)
	}
}

func TestTickTimer(t *testing.T) {
	v := 100.0
	TickTimer(&v, 30)
	if v != 70 {
		t.Errorf("timer = %v, want 70", v)
	}
	TickTimer(&v, 500)
	if v != 0 {
		t.Errorf("timer = %v, want clamped to 0", v)
	}
}

func TestCollisionHelpers(t *testing.T) {
	if !CirclesOverlap(0, 0, 20, 25, 0, 6) {
		t.Error("circles 25 apart with radii 20+6 should overlap")
	}
	if CirclesOverlap(0, 0, 20, 26, 0, 6) {
		t.Error("touching circles should not count as overlap")
	}
	if !OutOfBounds(-1, 10, 800, 600) || !OutOfBounds(10, 601, 800, 600) {
		t.Error("points outside arena not detected")
	}
	if OutOfBounds(800, 600, 800, 600) {
		t.Error("arena edge should be inside")
	}
}
