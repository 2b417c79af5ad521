package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

// HUD renders the in-run heads-up display: player stats, the spell bar and
// the battle log.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD for a running game.
func (h *HUD) Draw(v *game.View, screenW, screenH int32) {
	h.drawStats(v)
	h.drawSpells(v.Spells, screenW, screenH)
	h.drawLog(v.Log, screenW)
}

func (h *HUD) drawStats(v *game.View) {
	r := h.renderer
	p := &v.Player
	const width = 250

	x, y := int32(10), int32(10)
	r.DrawPanel(x, y, width, 104)
	x += r.Theme.Padding
	y += r.Theme.Padding

	y = r.DrawMeter(x, y, "HP", p.HP, p.MaxHP, width-2*r.Theme.Padding)

	xpRatio := float32(0)
	if p.XPToNext > 0 {
		xpRatio = float32(p.XP) / float32(p.XPToNext)
	}
	y = r.DrawBar(x, y, "XP", xpRatio, r.Theme.XPFill, fmt.Sprintf("%d/%d", p.XP, p.XPToNext), width-2*r.Theme.Padding)

	y = r.DrawLabelValue(x, y, "Level", fmt.Sprintf("%d   Skill points: %d", p.Level, p.SkillPoints))
	r.DrawLabelValue(x, y, "Wave", fmt.Sprintf("%d   %s", v.Wave, v.ZoneName))
}

// drawSpells renders the hotkey bar along the bottom edge. Cooling slots are
// shaded from the top by their remaining cooldown.
func (h *HUD) drawSpells(spells []game.SpellView, screenW, screenH int32) {
	r := h.renderer
	const slotW, slotH, gap = 110, 44, 8

	total := int32(len(spells))*(slotW+gap) - gap
	x := (screenW - total) / 2
	y := screenH - slotH - 30

	for _, s := range spells {
		c := rl.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255}
		rl.DrawRectangle(x, y, slotW, slotH, r.Theme.PanelBg)
		rl.DrawRectangleLines(x, y, slotW, slotH, c)

		rl.DrawText(fmt.Sprintf("%d", s.Slot+1), x+6, y+4, r.Theme.HeaderFontSize, c)
		rl.DrawText(s.Name, x+6, y+slotH-r.Theme.FontSize-4, r.Theme.FontSize, r.Theme.ValueColor)

		if !s.Ready {
			shade := int32(float64(slotH) * s.Cooldown)
			rl.DrawRectangle(x, y, slotW, shade, r.Theme.CooldownShade)
		}
		x += slotW + gap
	}
}

func (h *HUD) drawLog(lines []string, screenW int32) {
	if len(lines) == 0 {
		return
	}
	r := h.renderer
	const width = 300

	x := screenW - width - 10
	height := int32(len(lines))*r.Theme.LineHeight + 2*r.Theme.Padding
	r.DrawPanel(x, 10, width, height)

	y := 10 + r.Theme.Padding
	for _, line := range lines {
		y = r.DrawLabel(x+r.Theme.Padding, y, line)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenH int32, controls string) {
	rl.DrawText(controls, 10, screenH-22, 14, rl.Gray)
}
