package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/events"
	"github.com/pthm-cable/arena/persist"
	"github.com/pthm-cable/arena/systems"
)

// resetPlayer restores the level-one player.
func (g *Game) resetPlayer() {
	pc := &g.cfg.Player
	g.player = components.Player{
		Position:       components.Position{X: pc.StartX, Y: pc.StartY},
		Size:           pc.Size,
		Speed:          pc.Speed,
		HP:             pc.MaxHP,
		MaxHP:          pc.MaxHP,
		Level:          1,
		XPToNext:       systems.XPToNext(1, g.cfg.Combat.XPBase, g.cfg.Combat.XPPerLevel),
		SpellsUnlocked: append([]int(nil), pc.StartingSpells...),
	}
}

// NewGame starts a fresh run at wave 1.
func (g *Game) NewGame() {
	g.resetPlayer()
	g.wave = 1
	g.zone = 0
	g.startRun()
}

// Continue resumes a saved run. A record that does not fit the current spell
// catalog or zone list is rejected with an error wrapping persist.ErrCorrupt,
// and a fresh run starts instead.
func (g *Game) Continue(rec persist.Record) error {
	if err := g.checkRecord(rec); err != nil {
		slog.Warn("discarding saved game", "error", err)
		g.NewGame()
		return err
	}

	rp := rec.Player
	g.resetPlayer()
	g.player.HP = rp.HP
	g.player.MaxHP = rp.MaxHP
	g.player.XP = rp.XP
	g.player.Level = rp.Level
	g.player.XPToNext = rp.XPToNext
	g.player.SkillPoints = rp.SkillPoints
	g.player.DamageBonus = rp.DamageBonus
	g.player.SpellsUnlocked = append([]int(nil), rp.SpellsUnlocked...)

	g.wave = rec.Game.Wave
	g.zone = rec.Game.ZoneIndex
	if rec.Settings != nil {
		g.applySettings(*rec.Settings)
	}

	g.startRun()
	return nil
}

// Load reads the injected store and continues the saved run. Without a store
// or a save it returns persist.ErrNoSave and leaves the game untouched; a
// corrupt save starts a fresh run.
func (g *Game) Load() error {
	if g.store == nil {
		return persist.ErrNoSave
	}
	rec, err := g.store.Load()
	switch {
	case errors.Is(err, persist.ErrNoSave):
		return err
	case err != nil:
		slog.Warn("failed to load saved game", "error", err)
		g.NewGame()
		return err
	}
	return g.Continue(rec)
}

func (g *Game) checkRecord(rec persist.Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("%w: %v", persist.ErrCorrupt, err)
	}
	for _, id := range rec.Player.SpellsUnlocked {
		if _, ok := g.template(id); !ok {
			return fmt.Errorf("%w: unknown spell %d", persist.ErrCorrupt, id)
		}
	}
	if rec.Game.ZoneIndex >= len(g.cfg.Zones) {
		return fmt.Errorf("%w: unknown zone %d", persist.ErrCorrupt, rec.Game.ZoneIndex)
	}
	return nil
}

// ReturnToMenu abandons the current run.
func (g *Game) ReturnToMenu() {
	g.collector.Flush(g.clockMs)
	g.initWorld()
	g.phase = PhaseMenu
	g.paused = false
}

// startRun rebuilds the spell book from the unlocked set and spawns the
// current wave into an empty world.
func (g *Game) startRun() {
	g.collector.Flush(g.clockMs)
	g.initWorld()

	g.spells = g.spells[:0]
	for _, id := range g.player.SpellsUnlocked {
		if t, ok := g.template(id); ok {
			g.spells = append(g.spells, components.NewSpellSlot(t))
		}
	}

	g.player.Invulnerable = false
	g.player.SinceDamagedMs = 0
	g.paused = false
	g.spawnWave(g.wave)
}

// spawnWave replaces the roster with the enemies of wave n.
func (g *Game) spawnWave(n int) {
	for _, id := range g.Roster() {
		g.removeEnemy(id)
	}

	sp := g.cfg.Spawner
	plans := systems.PlanWave(g.rng, n, sp, g.cfg.Derived.TotalWeight)
	for _, plan := range plans {
		g.spawnEnemy(plan.Type, plan.X, plan.Y, n)
	}

	g.wave = n
	g.target = 0
	g.phase = PhaseWaveInProgress
	g.transitionMs = 0

	label := ""
	if systems.IsBossWave(n, sp.BossEvery) {
		label = "boss"
	}
	g.emit(events.Event{
		Type:   events.WaveStart,
		Wave:   n,
		Label:  label,
		Sound:  "waveStart",
		Amount: len(plans),
	})
}

// spawnEnemy creates one enemy of the given preset, scaled for wave.
// Returns the new roster id.
func (g *Game) spawnEnemy(typ string, x, y float64, wave int) uint32 {
	preset, ok := g.cfg.Enemy(typ)
	if !ok {
		slog.Error("unknown enemy type", "type", typ)
		return 0
	}
	behavior, _ := components.ParseBehavior(preset.Behavior)
	special, _ := components.ParseSpecial(preset.Special)

	cooldown := preset.AttackCooldownMs
	if cooldown <= 0 {
		cooldown = g.cfg.Combat.DefaultAttackCooldownMs
	}

	g.nextID++
	id := g.nextID

	hp := systems.ScaleHealth(preset.Health, wave, g.cfg.Spawner.HealthScale)
	pos := components.Position{X: x, Y: y}
	body := components.Body{Radius: preset.Size}
	en := components.Enemy{
		ID:       id,
		Type:     preset.Type,
		Name:     preset.Name,
		Color:    preset.Color.ToRGBA(),
		HP:       hp,
		MaxHP:    hp,
		Speed:    preset.Speed,
		Attack:   preset.Attack,
		XPValue:  systems.ScaleXP(preset.XP, wave, g.cfg.Spawner.XPScale),
		Behavior: behavior,
		Ranged: components.RangedAttack{
			Range:           preset.AttackRange,
			ProjectileSpeed: preset.ProjectileSpeed,
		},
		Special:          special,
		AttackCooldownMs: cooldown,
	}
	st := components.Status{}

	e := g.enemyMap.NewEntity(&pos, &body, &en, &st)
	g.enemies[id] = e
	g.roster = append(g.roster, id)
	return id
}

// waveComplete ends the wave in progress, saves and schedules the next one.
func (g *Game) waveComplete() {
	if g.phase != PhaseWaveInProgress {
		return
	}
	cleared := g.wave
	g.wave++
	g.phase = PhaseWaveTransition
	g.transitionMs = g.cfg.Waves.TransitionMs

	// Each boss wave cleared opens the next zone.
	if systems.IsBossWave(cleared, g.cfg.Spawner.BossEvery) {
		g.zone = min(g.zone+1, len(g.cfg.Zones)-1)
	}

	g.emit(events.Event{
		Type:   events.WaveComplete,
		Wave:   cleared,
		Amount: g.wave,
		HP:     g.player.HP,
		MaxHP:  g.player.MaxHP,
	})
	g.save()
}

// gameOver ends the run. The prompt offering a restart unlocks after a delay.
func (g *Game) gameOver() {
	if g.phase == PhaseGameOver {
		return
	}
	g.phase = PhaseGameOver
	g.paused = false
	g.promptMs = g.cfg.Waves.GameOverPromptMs
	g.emit(events.Event{
		Type:  events.GameOver,
		Sound: "gameOver",
		HP:    g.player.HP,
		MaxHP: g.player.MaxHP,
	})
}

// Record captures the run for saving.
func (g *Game) Record() persist.Record {
	p := g.player
	st := g.settings
	return persist.Record{
		Version: persist.Version,
		Player: persist.PlayerRecord{
			HP:             p.HP,
			MaxHP:          p.MaxHP,
			XP:             p.XP,
			Level:          p.Level,
			XPToNext:       p.XPToNext,
			SkillPoints:    p.SkillPoints,
			SpellsUnlocked: append([]int(nil), p.SpellsUnlocked...),
			DamageBonus:    p.DamageBonus,
		},
		Game:     persist.GameRecord{Wave: g.wave, ZoneIndex: g.zone},
		Settings: &st,
	}
}

// save writes the run to the injected store, if any.
func (g *Game) save() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.Record()); err != nil {
		slog.Error("failed to save game", "error", err)
		g.emit(events.Event{Type: events.SaveFailed, Label: err.Error()})
		return
	}
	g.emit(events.Event{Type: events.GameSaved, Wave: g.wave})
}
