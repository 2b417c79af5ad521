package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

// TargetPanel shows the enemy the player's bolts are aimed at.
type TargetPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewTargetPanel creates a target panel at the given position.
func NewTargetPanel(x, y, width int32) *TargetPanel {
	return &TargetPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (tp *TargetPanel) SetPosition(x, y int32) {
	tp.x = x
	tp.y = y
}

// Draw renders the panel for the targeted enemy. Nothing is drawn when no
// enemy is targeted.
func (tp *TargetPanel) Draw(enemies []game.EnemyView) {
	var target *game.EnemyView
	for i := range enemies {
		if enemies[i].Targeted {
			target = &enemies[i]
			break
		}
	}
	if target == nil {
		return
	}

	r := tp.renderer
	pad := r.Theme.Padding
	r.DrawPanel(tp.x, tp.y, tp.width, 3*r.Theme.LineHeight+2*pad+4)

	x, y := tp.x+pad, tp.y+pad
	swatch := rl.Color{R: target.Color.R, G: target.Color.G, B: target.Color.B, A: 255}
	rl.DrawRectangle(x, y+2, 10, 10, swatch)
	rl.DrawText(fmt.Sprintf("Target: %s", target.Name), x+16, y, r.Theme.FontSize, r.Theme.ValueColor)
	y += r.Theme.LineHeight

	y = r.DrawMeter(x, y, "HP", target.HP, target.MaxHP, tp.width-2*pad)

	status := "-"
	if target.Slowed {
		status = "Slowed"
	}
	r.DrawLabelValue(x, y, "Status", status)
}
