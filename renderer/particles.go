package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

// haloSize is the particle size above which a faint halo is drawn.
const haloSize = 3

// ParticleRenderer draws hit, cast and heal bursts.
type ParticleRenderer struct{}

// NewParticleRenderer returns a particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders the bursts additively, each particle faded by its remaining life.
func (r *ParticleRenderer) Draw(particles []game.ParticleView) {
	if len(particles) == 0 {
		return
	}
	rl.BeginBlendMode(rl.BlendAdditive)
	defer rl.EndBlendMode()

	for i := range particles {
		p := &particles[i]
		if p.Alpha <= 0 {
			continue
		}
		x, y := int32(p.X), int32(p.Y)
		size := max(float32(p.Size), 0.5)
		if size > haloSize {
			rl.DrawCircle(x, y, size*1.8, withAlpha(p.Color, p.Alpha*0.25))
		}
		rl.DrawCircle(x, y, size, withAlpha(p.Color, p.Alpha))
	}
}
