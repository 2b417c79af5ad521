package game

import (
	"image/color"
	"math"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/events"
	"github.com/pthm-cable/arena/systems"
)

// hit describes one application of damage. A negative Amount heals the
// player instead of hurting the nominal target.
type hit struct {
	Amount int
	Label  string
	Effect components.Effect
}

// applyDamage resolves a hit on enemy id. A killing hit awards xp, removes
// the enemy and completes the wave when the roster empties. Unknown ids are
// ignored.
func (g *Game) applyDamage(id uint32, h hit) {
	if h.Amount < 0 {
		g.healPlayer(-h.Amount, h.Label)
		return
	}

	e, ok := g.enemies[id]
	if !ok {
		return
	}
	_, _, en, st := g.enemyMap.Get(e)

	en.HP -= h.Amount
	st.FlashMs = g.cfg.Combat.HitFlashMs
	if h.Effect == components.EffectSlow {
		st.SlowMs = g.cfg.Combat.SlowMs
	}

	g.emit(events.Event{
		Type:     events.EnemyHit,
		EntityID: id,
		Name:     en.Name,
		Label:    h.Label,
		Sound:    "enemyHit",
		Amount:   h.Amount,
		HP:       max(en.HP, 0),
		MaxHP:    en.MaxHP,
	})

	if en.HP > 0 {
		return
	}

	name, xp := en.Name, en.XPValue
	g.emit(events.Event{Type: events.EnemyKilled, EntityID: id, Name: name, Amount: xp})
	g.awardXP(xp)
	g.removeEnemy(id)

	if len(g.roster) == 0 {
		g.waveComplete()
	}
}

// healPlayer restores player HP up to the maximum.
func (g *Game) healPlayer(amount int, label string) {
	restored := g.player.Heal(amount)
	g.emit(events.Event{
		Type:   events.Heal,
		Label:  label,
		Amount: restored,
		HP:     g.player.HP,
		MaxHP:  g.player.MaxHP,
	})
}

// damagePlayer hurts the player unless invulnerable. The hit opens a fresh
// invulnerability window; dropping to zero HP ends the run.
func (g *Game) damagePlayer(amount int) {
	p := &g.player
	if p.Invulnerable || !g.phase.Playing() {
		return
	}

	p.HP -= amount
	p.SinceDamagedMs = 0
	p.Invulnerable = true

	g.burst(p.X, p.Y, g.cfg.Particles.DamageTint.ToRGBA(), g.cfg.Particles.PlayerHit, g.cfg.Particles.PlayerHit.Size)
	g.emit(events.Event{
		Type:   events.DamageTaken,
		Sound:  "playerHit",
		Amount: amount,
		HP:     p.HP,
		MaxHP:  p.MaxHP,
	})

	if p.HP <= 0 {
		g.gameOver()
	}
}

// awardXP grants xp and announces each level gained.
func (g *Game) awardXP(amount int) {
	p := &g.player
	levels := systems.AwardXP(p, amount, g.cfg.Combat.XPBase, g.cfg.Combat.XPPerLevel)
	g.emit(events.Event{Type: events.XPGained, Amount: amount, HP: p.XP, MaxHP: p.XPToNext})

	for i := levels - 1; i >= 0; i-- {
		g.emit(events.Event{
			Type:   events.LevelUp,
			Sound:  "levelUp",
			Amount: p.Level - i,
			HP:     p.HP,
			MaxHP:  p.MaxHP,
		})
	}
}

// removeEnemy drops id from the world and the roster and keeps the target
// index inside the shrunken roster.
func (g *Game) removeEnemy(id uint32) {
	e, ok := g.enemies[id]
	if !ok {
		return
	}
	pos := g.posMap.Get(e)
	g.grid.Remove(e, pos.X, pos.Y)
	g.world.RemoveEntity(e)
	delete(g.enemies, id)

	for i, rid := range g.roster {
		if rid == id {
			g.roster = append(g.roster[:i], g.roster[i+1:]...)
			break
		}
	}
	g.clampTarget()
}

// clampTarget keeps the target index valid; it is 0 for an empty roster.
func (g *Game) clampTarget() {
	if g.target >= len(g.roster) {
		g.target = max(0, len(g.roster)-1)
	}
	if g.target < 0 {
		g.target = 0
	}
}

func (g *Game) emitEnemyHealed(healer, ally *components.Enemy, allyID uint32) {
	g.emit(events.Event{
		Type:     events.EnemyHealed,
		EntityID: allyID,
		Name:     healer.Name,
		Label:    ally.Name,
		Amount:   g.cfg.Combat.HealAmount,
		HP:       ally.HP,
		MaxHP:    ally.MaxHP,
	})
}

// burst spawns a cosmetic spray of particles at (x,y). Each particle gets a
// random heading, a speed up to preset.Speed and a size in [2, size+2).
func (g *Game) burst(x, y float64, c color.RGBA, preset config.BurstConfig, size float64) {
	for i := 0; i < preset.Count; i++ {
		angle := g.fxRng.Float64() * 2 * math.Pi
		speed := g.fxRng.Float64() * preset.Speed

		pos := components.Position{X: x, Y: y}
		vel := components.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		p := components.Particle{
			Color:   c,
			Size:    g.fxRng.Float64()*size + 2,
			Life:    preset.Life,
			MaxLife: preset.Life,
		}
		g.particleMap.NewEntity(&pos, &vel, &p)
	}
}
