package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/arena/config"
)

// SpawnPlan is one enemy to create at the start of a wave.
type SpawnPlan struct {
	Type string
	X, Y float64
}

// IsBossWave reports whether wave spawns a lone boss.
func IsBossWave(wave, every int) bool {
	return every > 0 && wave%every == 0
}

// WaveEnemyCount returns how many enemies wave spawns.
func WaveEnemyCount(wave int, sp config.SpawnerConfig) int {
	if IsBossWave(wave, sp.BossEvery) {
		return 1
	}
	return sp.BaseCount + int(math.Floor(float64(wave)*sp.CountPerWave))
}

// TypePool returns the enemy types unlocked by wave, in table order.
//
// The pool is informational only: DrawType always draws from the full weight
// table, so early waves can still roll types that are not yet in the pool.
func TypePool(wave int, pool []config.PoolEntry) []string {
	var types []string
	for _, p := range pool {
		if wave >= p.MinWave {
			types = append(types, p.Type)
		}
	}
	return types
}

// DrawType picks a type by cumulative weight: a uniform draw in [0,total)
// selects the first entry whose running sum reaches it.
func DrawType(rng *rand.Rand, weights []config.SpawnWeight, total int) string {
	if len(weights) == 0 {
		return ""
	}
	r := rng.Float64() * float64(total)
	sum := 0.0
	for _, w := range weights {
		sum += float64(w.Weight)
		if r <= sum {
			return w.Type
		}
	}
	return weights[len(weights)-1].Type
}

// scaled returns floor(base * (1 + wave*per)). The epsilon absorbs binary
// rounding of products like 3*0.1.
func scaled(base, wave int, per float64) int {
	return int(math.Floor(float64(base)*(1+float64(wave)*per) + 1e-9))
}

// ScaleHealth returns the wave-scaled health of a preset.
func ScaleHealth(base, wave int, per float64) int {
	return scaled(base, wave, per)
}

// ScaleXP returns the wave-scaled xp value of a preset.
func ScaleXP(base, wave int, per float64) int {
	return scaled(base, wave, per)
}

// Placement returns the spawn position of the i-th enemy on the layout grid.
func Placement(i int, layout config.LayoutConfig) (x, y float64) {
	col := i % layout.Columns
	row := i / layout.Columns
	return layout.OriginX + float64(col)*layout.SpacingX, layout.OriginY + float64(row)*layout.SpacingY
}

// PlanWave lays out the roster for wave.
func PlanWave(rng *rand.Rand, wave int, sp config.SpawnerConfig, totalWeight int) []SpawnPlan {
	n := WaveEnemyCount(wave, sp)
	boss := IsBossWave(wave, sp.BossEvery)

	plans := make([]SpawnPlan, 0, n)
	for i := 0; i < n; i++ {
		typ := sp.BossType
		if !boss {
			typ = DrawType(rng, sp.Weights, totalWeight)
		}
		x, y := Placement(i, sp.Layout)
		plans = append(plans, SpawnPlan{Type: typ, X: x, Y: y})
	}
	return plans
}
