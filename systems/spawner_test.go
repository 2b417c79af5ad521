package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/arena/config"
)

func testSpawner() config.SpawnerConfig {
	return config.Default().Spawner
}

func TestWaveEnemyCount(t *testing.T) {
	sp := testSpawner()
	tests := []struct {
		wave int
		want int
	}{
		{1, 4},  // 3 + floor(1.5)
		{2, 6},  // 3 + 3
		{3, 7},  // 3 + floor(4.5)
		{4, 9},  // 3 + 6
		{5, 1},  // boss
		{6, 12}, // 3 + 9
		{10, 1}, // boss
		{11, 19},
	}

	for _, tt := range tests {
		if got := WaveEnemyCount(tt.wave, sp); got != tt.want {
			t.Errorf("WaveEnemyCount(%d) = %d, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestPlanWaveBoss(t *testing.T) {
	sp := testSpawner()
	rng := rand.New(rand.NewSource(1))

	plans := PlanWave(rng, 5, sp, 100)
	if len(plans) != 1 {
		t.Fatalf("boss wave planned %d enemies, want 1", len(plans))
	}
	if plans[0].Type != "boss" {
		t.Errorf("boss wave type = %q, want boss", plans[0].Type)
	}
	if plans[0].X != 100 || plans[0].Y != 100 {
		t.Errorf("boss placed at (%v, %v), want origin", plans[0].X, plans[0].Y)
	}
}

func TestPlacementGrid(t *testing.T) {
	layout := testSpawner().Layout
	tests := []struct {
		i    int
		x, y float64
	}{
		{0, 100, 100},
		{4, 700, 100},
		{5, 100, 200},
		{7, 400, 200},
		{12, 400, 300},
	}
	for _, tt := range tests {
		x, y := Placement(tt.i, layout)
		if x != tt.x || y != tt.y {
			t.Errorf("Placement(%d) = (%v, %v), want (%v, %v)", tt.i, x, y, tt.x, tt.y)
		}
	}
}

func TestTypePoolGrowsWithWave(t *testing.T) {
	pool := testSpawner().Pool
	tests := []struct {
		wave int
		want int
	}{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {9, 4},
	}
	for _, tt := range tests {
		if got := len(TypePool(tt.wave, pool)); got != tt.want {
			t.Errorf("TypePool(%d) has %d types, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestScaling(t *testing.T) {
	tests := []struct {
		name       string
		base, wave int
		per        float64
		want       int
	}{
		{"goblin wave 1", 3, 1, 0.1, 3},  // 3.3
		{"goblin wave 4", 3, 4, 0.1, 4},  // 4.2
		{"brute wave 3", 6, 3, 0.1, 7},   // 7.8
		{"boss wave 5", 30, 5, 0.1, 45},  // 45
		{"goblin xp wave 10", 2, 10, 0.05, 3},
		{"boss xp wave 5", 20, 5, 0.05, 25},
		{"exact product", 10, 3, 0.1, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleHealth(tt.base, tt.wave, tt.per); got != tt.want {
				t.Errorf("scaled(%d, %d, %v) = %d, want %d", tt.base, tt.wave, tt.per, got, tt.want)
			}
		})
	}
}

// TestDrawTypeDistribution draws many types and checks the observed counts
// against the fixed 50/30/15/5 table.
func TestDrawTypeDistribution(t *testing.T) {
	sp := testSpawner()
	rng := rand.New(rand.NewSource(42))

	const trials = 100000
	counts := make(map[string]float64)
	for i := 0; i < trials; i++ {
		counts[DrawType(rng, sp.Weights, 100)]++
	}

	obs := make([]float64, len(sp.Weights))
	exp := make([]float64, len(sp.Weights))
	for i, w := range sp.Weights {
		obs[i] = counts[w.Type]
		exp[i] = float64(trials) * float64(w.Weight) / 100

		ratio := obs[i] / trials
		want := float64(w.Weight) / 100
		if math.Abs(ratio-want) > 0.01 {
			t.Errorf("%s ratio = %.4f, want %.2f ± 0.01", w.Type, ratio, want)
		}
	}

	chi := stat.ChiSquare(obs, exp)
	dist := distuv.ChiSquared{K: float64(len(obs) - 1)}
	if p := 1 - dist.CDF(chi); p < 0.001 {
		t.Errorf("chi-square %.2f (p=%.5f) rejects the weight table", chi, p)
	}
}

func TestDrawTypeIgnoresPool(t *testing.T) {
	// Wave 1 only unlocks goblins, but the draw still uses the full table
	sp := testSpawner()
	rng := rand.New(rand.NewSource(7))

	seen := make(map[string]bool)
	for _, p := range PlanWave(rng, 1, sp, 100) {
		seen[p.Type] = true
	}
	for i := 0; i < 200; i++ {
		seen[DrawType(rng, sp.Weights, 100)] = true
	}
	if !seen["brute"] || !seen["archer"] {
		t.Errorf("expected non-pool types to be drawable, saw %v", seen)
	}
}
