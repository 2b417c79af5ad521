package game

import (
	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/systems"
)

// Autopilot plays the game without a human: it keeps its distance from the
// current target, casts whatever is ready and spends skill points as soon as
// they arrive. Used by headless runs and the wave simulator.
type Autopilot struct {
	// Standoff is how far from the target the player tries to stand.
	Standoff float64
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{Standoff: 160}
}

// Drive issues this tick's commands. Call it before Update.
func (a *Autopilot) Drive(g *Game) {
	if g.Phase() == PhaseMenu {
		g.NewGame()
		return
	}
	if !g.Phase().Playing() || g.Paused() {
		return
	}

	for g.player.SkillPoints > 0 {
		unlocks := g.AvailableUnlocks()
		if len(unlocks) == 0 || !g.UnlockSpell(unlocks[0].ID) {
			break
		}
	}

	a.steer(g)

	for i, s := range g.spells {
		if !s.Ready {
			continue
		}
		if s.Template.Kind == components.SpellHeal && g.player.HP >= g.player.MaxHP {
			continue
		}
		g.Cast(i)
	}
}

// steer points away from the current target, or back to the start cell when
// the arena is clear.
func (a *Autopilot) steer(g *Game) {
	cfg := g.cfg
	id, ok := g.Target()
	if !ok {
		g.SetPointer(cfg.Player.StartX, cfg.Player.StartY)
		return
	}

	tpos := g.posMap.Get(g.enemies[id])
	ux, uy, dist := systems.Direction(tpos.X, tpos.Y, g.player.X, g.player.Y)
	if dist == 0 {
		ux, uy = 0, 1
	}
	x := systems.Clamp(tpos.X+ux*a.Standoff, 0, cfg.Arena.Width)
	y := systems.Clamp(tpos.Y+uy*a.Standoff, 0, cfg.Arena.Height)
	g.SetPointer(x, y)
}
