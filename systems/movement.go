package systems

import (
	"math"

	"github.com/pthm-cable/arena/components"
)

// SnapToGrid rounds v to the nearest multiple of cell.
func SnapToGrid(v, cell float64) float64 {
	if cell <= 0 {
		return v
	}
	return math.Round(v/cell) * cell
}

// StepAxis moves pos toward target by at most step, landing on target when
// it is within reach.
func StepAxis(pos, target, step float64) float64 {
	d := target - pos
	if math.Abs(d) <= step {
		return target
	}
	if d > 0 {
		return pos + step
	}
	return pos - step
}

// StepPlayer moves the player one tick toward the grid cell under the pointer.
// Axes move independently and the result is kept inside the arena, inset by
// the player's radius.
func StepPlayer(p *components.Player, pointerX, pointerY, grid, width, height float64) {
	tx := SnapToGrid(pointerX, grid)
	ty := SnapToGrid(pointerY, grid)

	p.X = StepAxis(p.X, tx, p.Speed)
	p.Y = StepAxis(p.Y, ty, p.Speed)

	p.X = Clamp(p.X, p.Size, width-p.Size)
	p.Y = Clamp(p.Y, p.Size, height-p.Size)
}

// EffectiveSpeed halves (or scales by slowFactor) the base speed while slowed.
func EffectiveSpeed(base float64, st components.Status, slowFactor float64) float64 {
	if st.Slowed() {
		return base * slowFactor
	}
	return base
}

// ChaseStep moves pos toward the target by speed*frames along the line between them.
func ChaseStep(pos *components.Position, tx, ty, speed, frames float64) {
	ux, uy, dist := Direction(pos.X, pos.Y, tx, ty)
	if dist == 0 {
		return
	}
	pos.X += ux * speed * frames
	pos.Y += uy * speed * frames
}

// KiteStep moves pos directly away from the target by speed*frames.
func KiteStep(pos *components.Position, tx, ty, speed, frames float64) {
	ux, uy, dist := Direction(pos.X, pos.Y, tx, ty)
	if dist == 0 {
		return
	}
	pos.X -= ux * speed * frames
	pos.Y -= uy * speed * frames
}

// TickTimer decrements a millisecond countdown, never below zero.
func TickTimer(t *float64, dt float64) {
	if *t > 0 {
		*t -= dt
		if *t < 0 {
			*t = 0
		}
	}
}
