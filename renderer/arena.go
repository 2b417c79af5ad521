// Package renderer draws the arena from a read-only game.View.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

const (
	hitFlashAlpha = 0.7
	barHeight     = 5
	blinkPeriodMs = 100
)

// Arena draws everything inside the play field. Must be used after the
// raylib window exists.
type Arena struct {
	background *BackgroundRenderer
	particles  *ParticleRenderer
	outline    rl.Color
	track      rl.Color
}

// NewArena creates an arena renderer.
func NewArena(width, height, grid int32) *Arena {
	return &Arena{
		background: NewBackgroundRenderer(width, height, grid),
		particles:  NewParticleRenderer(),
		outline:    toRL(outlineTint),
		track:      toRL(barTrack),
	}
}

// Draw renders one frame of the arena. nowMs drives the invulnerability
// blink.
func (a *Arena) Draw(v *game.View, nowMs float64) {
	a.background.Draw(v.Background)
	if v.Phase == game.PhaseMenu {
		return
	}

	a.particles.Draw(v.Particles)
	a.drawProjectiles(v.Projectiles)
	a.drawEnemies(v.Enemies)
	a.drawPlayer(v, nowMs)
}

func (a *Arena) drawProjectiles(shots []game.ProjectileView) {
	for i := range shots {
		p := &shots[i]
		x, y, r := int32(p.X), int32(p.Y), float32(p.Radius)
		if !p.Enemy {
			// Glow
			rl.DrawCircle(x, y, r*2, withAlpha(p.Color, 0.15))
			rl.DrawCircle(x, y, r*1.4, withAlpha(p.Color, 0.3))
		}
		rl.DrawCircle(x, y, r, withAlpha(p.Color, 1))
	}
}

func (a *Arena) drawEnemies(enemies []game.EnemyView) {
	for i := range enemies {
		e := &enemies[i]
		x, y, r := int32(e.X), int32(e.Y), float32(e.Radius)

		alpha := 1.0
		if e.Flashing {
			alpha = hitFlashAlpha
		}
		rl.DrawCircle(x, y, r, withAlpha(enemyFill(e.Color, e.Targeted, e.Slowed), alpha))
		rl.DrawCircleLines(x, y, r, a.outline)
		rl.DrawCircleLines(x, y, r-1, a.outline)

		barW := int32(e.Radius * 2)
		barX := x - barW/2
		barY := y - int32(e.Radius) - 10
		rl.DrawRectangle(barX, barY, barW, barHeight, a.track)
		rl.DrawRectangle(barX, barY, int32(float64(barW)*e.Health), barHeight, healthColor(e.Health))
	}
}

func (a *Arena) drawPlayer(v *game.View, nowMs float64) {
	p := &v.Player
	x, y, r := int32(p.X), int32(p.Y), float32(p.Size)

	if !p.Invulnerable || int64(nowMs/blinkPeriodMs)%2 == 0 {
		rl.DrawCircle(x, y, r, withAlpha(v.PlayerColor, 1))
	}
	rl.DrawCircleLines(x, y, r, a.outline)
	rl.DrawCircleLines(x, y, r-1, a.outline)
}
