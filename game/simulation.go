package game

import (
	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/systems"
	"github.com/pthm-cable/arena/telemetry"
)

// Update advances the simulation by dtMs milliseconds and then delivers the
// tick's events. Nothing moves while paused or outside a run; the game-over
// prompt delay still counts down.
func (g *Game) Update(dtMs float64) {
	if dtMs < 0 {
		dtMs = 0
	}

	switch {
	case g.phase == PhaseGameOver:
		systems.TickTimer(&g.promptMs, dtMs)
	case g.phase.Playing() && !g.paused:
		g.simulationStep(dtMs)
	}

	g.queue.Drain()
}

// simulationStep runs a single tick of the simulation.
func (g *Game) simulationStep(dt float64) {
	frames := systems.FrameFactor(dt, g.cfg.Arena.FrameMs)

	g.perf.StartTick()
	g.clockMs += dt
	g.tick++

	g.perf.StartPhase(telemetry.PhasePlayer)
	g.updatePlayer(dt)

	g.perf.StartPhase(telemetry.PhaseEnemies)
	g.updateEnemies(dt, frames)

	g.perf.StartPhase(telemetry.PhaseProjectiles)
	g.updateSpatialGrid()
	g.updateProjectiles(frames)

	g.perf.StartPhase(telemetry.PhaseParticles)
	g.updateParticles(frames)

	g.perf.StartPhase(telemetry.PhaseCooldowns)
	g.updateCooldowns(dt)

	g.perf.StartPhase(telemetry.PhaseTimers)
	g.updateTimers(dt)

	g.perf.EndTick()
}

// updatePlayer ticks invulnerability and steps toward the pointer cell.
func (g *Game) updatePlayer(dt float64) {
	p := &g.player
	if p.Invulnerable {
		p.SinceDamagedMs += dt
		if p.SinceDamagedMs >= g.cfg.Player.InvulnerableMs {
			p.Invulnerable = false
		}
	}

	systems.StepPlayer(p, g.pointerX, g.pointerY, g.cfg.Arena.GridSize, g.cfg.Arena.Width, g.cfg.Arena.Height)
}

// updateEnemies runs each enemy's behavior in roster order.
func (g *Game) updateEnemies(dt, frames float64) {
	combat := &g.cfg.Combat

	// Melee strikes can end the run mid-pass; the roster itself does not
	// change here, so iterating it directly is safe.
	for _, id := range g.roster {
		e := g.enemies[id]
		pos, _, en, st := g.enemyMap.Get(e)

		speed := systems.EffectiveSpeed(en.Speed, *st, combat.SlowFactor)
		systems.TickTimer(&st.SlowMs, dt)
		systems.TickTimer(&st.CooldownMs, dt)

		dist := systems.Distance(pos.X, pos.Y, g.player.X, g.player.Y)

		switch en.Behavior {
		case components.BehaviorMelee:
			if dist > combat.MeleeReach {
				systems.ChaseStep(pos, g.player.X, g.player.Y, speed, frames)
			} else if st.CooldownMs <= 0 {
				st.CooldownMs = en.AttackCooldownMs
				g.damagePlayer(en.Attack)
			}
		case components.BehaviorRanged:
			if dist <= en.Ranged.Range {
				if dist < en.Ranged.Range*combat.KiteFraction {
					systems.KiteStep(pos, g.player.X, g.player.Y, speed*combat.KiteSpeedFactor, frames)
				}
				if st.CooldownMs <= 0 {
					st.CooldownMs = en.AttackCooldownMs
					g.fireEnemyShot(pos.X, pos.Y, en)
				}
			}
		}

		if en.Special == components.SpecialHeal && st.CooldownMs <= 0 {
			g.healAlly(id, pos, en, st)
		}

		systems.TickTimer(&st.FlashMs, dt)
	}
}

// healAlly restores the first wounded ally in range, in roster order.
func (g *Game) healAlly(healerID uint32, pos *components.Position, healer *components.Enemy, st *components.Status) {
	combat := &g.cfg.Combat
	for _, otherID := range g.roster {
		if otherID == healerID {
			continue
		}
		oPos, _, other, _ := g.enemyMap.Get(g.enemies[otherID])
		if float64(other.HP) >= float64(other.MaxHP)*combat.HealThreshold {
			continue
		}
		if systems.Distance(pos.X, pos.Y, oPos.X, oPos.Y) >= combat.HealRadius {
			continue
		}

		other.HP = min(other.MaxHP, other.HP+combat.HealAmount)
		g.burst(oPos.X, oPos.Y, g.cfg.Particles.HealColor.ToRGBA(), g.cfg.Particles.Heal, g.cfg.Particles.Heal.Size)
		g.emitEnemyHealed(healer, other, otherID)
		st.CooldownMs = healer.AttackCooldownMs * combat.HealCooldownFactor
		return
	}
}

// fireEnemyShot launches a ballistic projectile at the player's position.
func (g *Game) fireEnemyShot(x, y float64, en *components.Enemy) {
	ux, uy, _ := systems.Direction(x, y, g.player.X, g.player.Y)
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{X: ux * en.Ranged.ProjectileSpeed, Y: uy * en.Ranged.ProjectileSpeed}
	body := components.Body{Radius: g.cfg.Combat.EnemyProjectileSize}
	proj := components.Projectile{
		Origin: components.OriginEnemy,
		Damage: en.Attack,
		Label:  en.Name,
		Color:  en.Color,
	}
	g.shotMap.NewEntity(&pos, &vel, &body, &proj)
}

// updateSpatialGrid rebuilds the enemy index.
func (g *Game) updateSpatialGrid() {
	g.grid.Clear()
	for _, id := range g.roster {
		e := g.enemies[id]
		pos := g.posMap.Get(e)
		g.grid.Insert(e, pos.X, pos.Y)
	}
}

// updateProjectiles moves every projectile and resolves its collisions.
func (g *Game) updateProjectiles(frames float64) {
	// Snapshot first: combat resolution creates and removes entities, which
	// is not allowed while a query holds the world.
	g.shotScratch = g.shotScratch[:0]
	query := g.shotFilter.Query()
	for query.Next() {
		g.shotScratch = append(g.shotScratch, query.Entity())
	}

	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height
	for i := len(g.shotScratch) - 1; i >= 0; i-- {
		e := g.shotScratch[i]
		if !g.world.Alive(e) {
			continue
		}
		pos, vel, body, proj := g.shotMap.Get(e)

		var done bool
		if proj.Origin == components.OriginEnemy {
			done = g.stepEnemyShot(pos, vel, body, proj, frames)
		} else {
			done = g.stepBolt(pos, body, proj, frames)
		}

		if done || systems.OutOfBounds(pos.X, pos.Y, w, h) {
			g.world.RemoveEntity(e)
		}
	}
}

// stepEnemyShot moves a ballistic shot and tests it against the player.
// Returns true when the shot is spent.
func (g *Game) stepEnemyShot(pos *components.Position, vel *components.Velocity, body *components.Body, proj *components.Projectile, frames float64) bool {
	pos.X += vel.X * frames
	pos.Y += vel.Y * frames

	if !systems.CirclesOverlap(pos.X, pos.Y, body.Radius, g.player.X, g.player.Y, g.player.Size) {
		return false
	}
	g.damagePlayer(proj.Damage)
	g.burst(pos.X, pos.Y, proj.Color, g.cfg.Particles.Shot, g.cfg.Particles.Shot.Size)
	return true
}

// stepBolt homes a player bolt on its target and resolves the impact.
// Returns true when the bolt is spent, including when its target is gone.
func (g *Game) stepBolt(pos *components.Position, body *components.Body, proj *components.Projectile, frames float64) bool {
	te, ok := g.enemies[proj.TargetID]
	if !ok {
		return true
	}
	tpos, tbody, _, _ := g.enemyMap.Get(te)

	pos.X, pos.Y = systems.Approach(pos.X, pos.Y, tpos.X, tpos.Y, proj.Speed, frames)
	if !systems.CirclesOverlap(pos.X, pos.Y, body.Radius, tpos.X, tpos.Y, tbody.Radius) {
		return false
	}

	// Splash victims are measured from the target before the hit can remove it.
	var splashIDs []uint32
	if proj.Effect == components.EffectSplash {
		g.neighbors = g.grid.QueryRadiusInto(g.neighbors[:0], tpos.X, tpos.Y, g.cfg.Combat.SplashRadius, te, g.posMap)
		for _, n := range g.neighbors {
			_, _, en, _ := g.enemyMap.Get(n.E)
			splashIDs = append(splashIDs, en.ID)
		}
	}

	g.applyDamage(proj.TargetID, hit{
		Amount: proj.Damage,
		Label:  proj.Label,
		Effect: proj.Effect,
	})
	g.burst(pos.X, pos.Y, proj.Color, g.cfg.Particles.Hit, body.Radius)

	if amount := systems.SplashAmount(proj.Damage, g.cfg.Combat.SplashFraction); amount > 0 {
		for _, id := range splashIDs {
			if _, alive := g.enemies[id]; alive {
				g.applyDamage(id, hit{Amount: amount, Label: proj.Label + " (splash)"})
			}
		}
	}
	return true
}

// updateParticles drifts and ages particles, removing the expired ones.
func (g *Game) updateParticles(frames float64) {
	g.particleScratch = g.particleScratch[:0]
	query := g.particleFilter.Query()
	for query.Next() {
		pos, vel, p := query.Get()
		pos.X += vel.X * frames
		pos.Y += vel.Y * frames
		p.Life -= frames
		if p.Life <= 0 {
			g.particleScratch = append(g.particleScratch, query.Entity())
		}
	}

	for _, e := range g.particleScratch {
		g.world.RemoveEntity(e)
	}
}

// updateCooldowns ticks every spell slot.
func (g *Game) updateCooldowns(dt float64) {
	for i := range g.spells {
		g.spells[i].Tick(dt)
	}
}

// updateTimers advances the phase countdowns.
func (g *Game) updateTimers(dt float64) {
	if g.phase != PhaseWaveTransition {
		return
	}
	systems.TickTimer(&g.transitionMs, dt)
	if g.transitionMs <= 0 {
		g.spawnWave(g.wave)
	}
}
