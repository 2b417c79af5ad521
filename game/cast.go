package game

import (
	"github.com/pthm-cable/arena/components"
)

// castFunc performs a spell's effect. It returns false, without touching any
// state, when the spell has nothing to act on.
type castFunc func(g *Game, t components.SpellTemplate) bool

// castTable dispatches spell kinds to their effects.
var castTable = map[components.SpellKind]castFunc{
	components.SpellBolt: castBolt,
	components.SpellHeal: castHeal,
}

// castBolt launches a homing projectile from the player at the current target.
func castBolt(g *Game, t components.SpellTemplate) bool {
	id, ok := g.Target()
	if !ok {
		return false
	}

	pos := components.Position{X: g.player.X, Y: g.player.Y}
	vel := components.Velocity{}
	body := components.Body{Radius: t.ProjectileSize}
	proj := components.Projectile{
		Origin:   components.OriginPlayer,
		TargetID: id,
		Speed:    t.ProjectileSpeed,
		Damage:   t.BaseDamage + g.player.DamageBonus,
		SpellID:  t.ID,
		Label:    t.Name,
		Effect:   t.Effect,
		Color:    t.Color,
	}
	g.shotMap.NewEntity(&pos, &vel, &body, &proj)
	return true
}

// castHeal applies the spell's negative damage to the caster.
func castHeal(g *Game, t components.SpellTemplate) bool {
	g.applyDamage(0, hit{Amount: t.BaseDamage, Label: t.Name})
	g.burst(g.player.X, g.player.Y, t.Color, g.cfg.Particles.Cast, g.cfg.Particles.Cast.Size)
	return true
}
