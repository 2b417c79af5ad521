package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Wave outcomes.
const (
	OutcomeCleared    = "cleared"
	OutcomeDefeated   = "defeated"
	OutcomeUnfinished = "unfinished"
)

// WaveStats holds aggregated statistics for one wave of a run.
type WaveStats struct {
	Run        int     `csv:"run"`
	Wave       int     `csv:"wave"`
	Outcome    string  `csv:"outcome"`
	StartMs    float64 `csv:"-"`
	DurationMs float64 `csv:"duration_ms"`

	Enemies     int `csv:"enemies"`
	Kills       int `csv:"kills"`
	Casts       int `csv:"casts"`
	Hits        int `csv:"hits"`
	SplashHits  int `csv:"splash_hits"`
	DamageDealt int `csv:"damage_dealt"`
	DamageTaken int `csv:"damage_taken"`
	Healed      int `csv:"healed"`
	EnemyHeals  int `csv:"enemy_heals"`
	XPGained    int `csv:"xp_gained"`
	LevelUps    int `csv:"level_ups"`

	// Player state when the wave ended
	PlayerHP    int `csv:"player_hp"`
	PlayerMaxHP int `csv:"player_max_hp"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WaveStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("run", s.Run),
		slog.Int("wave", s.Wave),
		slog.String("outcome", s.Outcome),
		slog.Float64("duration_ms", s.DurationMs),
		slog.Int("enemies", s.Enemies),
		slog.Int("kills", s.Kills),
		slog.Int("casts", s.Casts),
		slog.Int("hits", s.Hits),
		slog.Int("splash_hits", s.SplashHits),
		slog.Int("damage_dealt", s.DamageDealt),
		slog.Int("damage_taken", s.DamageTaken),
		slog.Int("healed", s.Healed),
		slog.Int("enemy_heals", s.EnemyHeals),
		slog.Int("xp_gained", s.XPGained),
		slog.Int("level_ups", s.LevelUps),
		slog.Int("player_hp", s.PlayerHP),
	)
}

// LogStats logs the wave stats using slog.
func (s WaveStats) LogStats() {
	slog.Info("wave", "stats", s)
}

// RunStats summarizes one complete run.
type RunStats struct {
	Run         int     `csv:"run"`
	Seed        int64   `csv:"seed"`
	WaveReached int     `csv:"wave_reached"`
	WavesClear  int     `csv:"waves_cleared"`
	Level       int     `csv:"level"`
	Kills       int     `csv:"kills"`
	DurationMs  float64 `csv:"duration_ms"`
	Defeated    bool    `csv:"defeated"`
}

// Summary describes the distribution of a sample.
type Summary struct {
	N    int
	Mean float64
	Std  float64
	Min  float64
	Max  float64
	P10  float64
	P50  float64
	P90  float64
}

// Summarize computes the mean, sample standard deviation and empirical
// percentiles of values. An empty sample yields the zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Summary{
		N:    n,
		Mean: stat.Mean(sorted, nil),
		Min:  sorted[0],
		Max:  sorted[n-1],
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("n", s.N),
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.Std),
		slog.Float64("min", s.Min),
		slog.Float64("p10", s.P10),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
		slog.Float64("max", s.Max),
	)
}

// DurationsByWave groups cleared-wave durations by wave number.
func DurationsByWave(waves []WaveStats) map[int][]float64 {
	out := make(map[int][]float64)
	for _, w := range waves {
		if w.Outcome == OutcomeCleared {
			out[w.Wave] = append(out[w.Wave], w.DurationMs)
		}
	}
	return out
}
