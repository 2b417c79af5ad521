package game

import (
	"log/slog"

	"github.com/pthm-cable/arena/telemetry"
)

// AttachOutput routes finished waves to the output manager and, with
// logStats set, to slog along with the current perf window.
func (g *Game) AttachOutput(om *telemetry.OutputManager, logStats bool) {
	g.collector.OnWave(func(stats telemetry.WaveStats) {
		if logStats {
			stats.LogStats()
			g.perf.Stats().LogStats()
		}
		if err := om.WriteWave(stats); err != nil {
			slog.Error("failed to write wave stats", "error", err)
		}
		if err := om.WritePerf(g.perf.Stats(), g.tick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	})
}

// RunStats summarizes the current run from the waves collected so far.
func (g *Game) RunStats(seed int64) telemetry.RunStats {
	rs := telemetry.RunStats{
		Run:         g.run,
		Seed:        seed,
		WaveReached: g.wave,
		Level:       g.player.Level,
		DurationMs:  g.clockMs,
		Defeated:    g.phase == PhaseGameOver,
	}
	for _, w := range g.collector.Waves() {
		if w.Run != g.run {
			continue
		}
		rs.Kills += w.Kills
		if w.Outcome == telemetry.OutcomeCleared {
			rs.WavesClear++
		}
	}
	if cur, ok := g.collector.Current(); ok && cur.Run == g.run {
		rs.Kills += cur.Kills
	}
	return rs
}
