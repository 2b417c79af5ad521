// Package telemetry provides per-wave combat statistics, performance timing
// and CSV output.
package telemetry

import (
	"strings"

	"github.com/pthm-cable/arena/events"
)

// Collector accumulates simulation events for the wave in progress and
// produces a WaveStats when the wave ends. It implements events.Sink.
type Collector struct {
	run    int
	active bool
	cur    WaveStats
	waves  []WaveStats
	onWave func(WaveStats)
}

// NewCollector creates a collector tagging its rows with run.
func NewCollector(run int) *Collector {
	return &Collector{run: run}
}

// OnWave registers fn to receive each finished wave.
func (c *Collector) OnWave(fn func(WaveStats)) {
	c.onWave = fn
}

// SetRun changes the run number used for subsequent waves.
func (c *Collector) SetRun(run int) {
	c.run = run
}

// Handle implements events.Sink.
func (c *Collector) Handle(e events.Event) {
	if e.Type == events.WaveStart {
		if c.active {
			c.finish(e.TimeMs, OutcomeUnfinished, c.cur.PlayerHP, c.cur.PlayerMaxHP)
		}
		c.cur = WaveStats{Run: c.run, Wave: e.Wave, StartMs: e.TimeMs, Enemies: e.Amount}
		c.active = true
		return
	}
	if !c.active {
		return
	}

	switch e.Type {
	case events.SpellCast:
		c.cur.Casts++
	case events.EnemyHit:
		c.cur.Hits++
		c.cur.DamageDealt += e.Amount
		if strings.HasSuffix(e.Label, "(splash)") {
			c.cur.SplashHits++
		}
	case events.EnemyKilled:
		c.cur.Kills++
	case events.DamageTaken:
		c.cur.DamageTaken += e.Amount
		c.cur.PlayerHP, c.cur.PlayerMaxHP = e.HP, e.MaxHP
	case events.Heal:
		c.cur.Healed += e.Amount
	case events.EnemyHealed:
		c.cur.EnemyHeals++
	case events.XPGained:
		c.cur.XPGained += e.Amount
	case events.LevelUp:
		c.cur.LevelUps++
	case events.WaveComplete:
		c.finish(e.TimeMs, OutcomeCleared, e.HP, e.MaxHP)
	case events.GameOver:
		c.finish(e.TimeMs, OutcomeDefeated, e.HP, e.MaxHP)
	}
}

// Flush closes the wave in progress, if any, as unfinished.
func (c *Collector) Flush(nowMs float64) {
	if c.active {
		c.finish(nowMs, OutcomeUnfinished, c.cur.PlayerHP, c.cur.PlayerMaxHP)
	}
}

// Waves returns every finished wave in order.
func (c *Collector) Waves() []WaveStats {
	return c.waves
}

// Current returns the stats of the wave in progress.
func (c *Collector) Current() (WaveStats, bool) {
	return c.cur, c.active
}

func (c *Collector) finish(nowMs float64, outcome string, hp, maxHP int) {
	c.cur.Outcome = outcome
	c.cur.DurationMs = nowMs - c.cur.StartMs
	c.cur.PlayerHP, c.cur.PlayerMaxHP = hp, maxHP
	c.waves = append(c.waves, c.cur)
	c.active = false
	if c.onWave != nil {
		c.onWave(c.cur)
	}
}
