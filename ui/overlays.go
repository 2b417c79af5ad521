package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/components"
	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/persist"
)

// Menus draws the full-screen menus and the dialogs over a running game.
// raygui is immediate mode: each method draws one frame and returns the
// action clicked during it.
type Menus struct {
	renderer      *Renderer
	width, height int32
}

// NewMenus creates menus for a screen of the given size.
func NewMenus(width, height int32) *Menus {
	return &Menus{renderer: NewRenderer(), width: width, height: height}
}

// MainMenu draws the title screen.
func (m *Menus) MainMenu(st persist.Settings, notice string) MenuAction {
	r := m.renderer
	r.DrawDim(m.width, m.height)
	r.DrawCenteredText("Grimoire Gauntlet", m.width, m.height/5, r.Theme.TitleFontSize, rl.Gold)

	row := float32(m.height)/5 + 90
	step := r.Theme.ButtonHeight + 12
	action := ActionNone

	if r.Button(m.width, row, "Fight") {
		action = ActionFight
	}
	row += step
	if r.Button(m.width, row, "Continue") {
		action = ActionContinue
	}
	row += step
	if r.Button(m.width, row, "How to play") {
		action = ActionHowTo
	}
	row += step + 8

	if r.Toggle(m.width, row, toggleText(st.SFXEnabled, "Sound effects: on", "Sound effects: off"), st.SFXEnabled) != st.SFXEnabled {
		action = ActionToggleSFX
	}
	row += step
	if r.Toggle(m.width, row, toggleText(st.MusicEnabled, "Music: on", "Music: off"), st.MusicEnabled) != st.MusicEnabled {
		action = ActionToggleMusic
	}

	if notice != "" {
		r.DrawCenteredText(notice, m.width, int32(row+step+10), r.Theme.FontSize, r.Theme.Notice)
	}
	return action
}

// Pause draws the pause dialog.
func (m *Menus) Pause() MenuAction {
	r := m.renderer
	r.DrawDim(m.width, m.height)
	r.DrawCenteredText("Paused", m.width, m.height/3, r.Theme.TitleFontSize, rl.White)

	row := float32(m.height)/3 + 70
	if r.Button(m.width, row, "Resume") {
		return ActionResume
	}
	if r.Button(m.width, row+r.Theme.ButtonHeight+12, "Main menu") {
		return ActionMainMenu
	}
	return ActionNone
}

// Banner draws the wave-complete banner with the countdown to the next wave.
func (m *Menus) Banner(v *game.View) {
	if v.Banner == "" {
		return
	}
	r := m.renderer
	y := m.height/2 - 40
	r.DrawCenteredText(v.Banner, m.width, y, r.Theme.TitleFontSize, rl.Gold)

	secs := int(v.TransitionMs/1000) + 1
	r.DrawCenteredText(fmt.Sprintf("Wave %d begins in %d...", v.Wave, secs), m.width, y+50, r.Theme.HeaderFontSize, rl.White)
}

// GameOver draws the defeat dialog. The buttons appear once the prompt
// delay has passed.
func (m *Menus) GameOver(v *game.View) MenuAction {
	r := m.renderer
	r.DrawDim(m.width, m.height)
	r.DrawCenteredText("You have been defeated!", m.width, m.height/3, r.Theme.TitleFontSize, rl.Red)
	r.DrawCenteredText(fmt.Sprintf("Reached wave %d at level %d", v.Wave, v.Player.Level),
		m.width, m.height/3+50, r.Theme.HeaderFontSize, rl.White)

	if !v.PromptReady {
		return ActionNone
	}
	row := float32(m.height)/3 + 100
	if r.Button(m.width, row, "Try again") {
		return ActionTryAgain
	}
	if r.Button(m.width, row+r.Theme.ButtonHeight+12, "Main menu") {
		return ActionMainMenu
	}
	return ActionNone
}

// HowTo draws the rules and the key bindings.
func (m *Menus) HowTo(bindings []Binding) MenuAction {
	r := m.renderer
	r.DrawDim(m.width, m.height)

	const width = 460
	x := (m.width - width) / 2
	y := m.height / 6
	height := int32(len(bindings)+5)*r.Theme.LineHeight + 3*r.Theme.Padding + int32(r.Theme.ButtonHeight)
	r.DrawPanel(x, y, width, height)

	x += r.Theme.Padding
	y = r.DrawSectionHeader(x, y+r.Theme.Padding, "How to play")
	y = r.DrawLabel(x, y, "Survive the waves. Every fifth wave brings a boss.")
	y = r.DrawLabel(x, y, "Bolts home in on your current target.")
	y = r.DrawLabel(x, y, "Level ups grant skill points for new spells.")
	y += r.Theme.LineHeight / 2

	for _, b := range bindings {
		y = r.DrawLabelValue(x, y, b.KeyLabel, b.Description)
	}

	if r.Button(m.width, float32(y+r.Theme.Padding), "Close") {
		return ActionClose
	}
	return ActionNone
}

// SkillTree draws the unlockable spells. It returns the id of the spell
// bought this frame, or -1, and ActionClose when dismissed.
func (m *Menus) SkillTree(unlocks []components.SpellTemplate, points int) (int, MenuAction) {
	r := m.renderer
	r.DrawDim(m.width, m.height)

	const width = 480
	rowH := r.Theme.ButtonHeight + 2*float32(r.Theme.LineHeight)
	x := (m.width - width) / 2
	y := m.height / 6
	height := int32(float32(max(len(unlocks), 1))*rowH) + 3*r.Theme.LineHeight + 2*int32(r.Theme.ButtonHeight)
	r.DrawPanel(x, y, width, height)

	x += r.Theme.Padding
	y = r.DrawSectionHeader(x, y+r.Theme.Padding, fmt.Sprintf("Skill tree (%d points)", points))

	chosen := -1
	if len(unlocks) == 0 {
		y = r.DrawLabel(x, y, "No new spells available yet.")
	}
	for _, t := range unlocks {
		c := rl.Color{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: 255}
		rl.DrawText(t.Name, x, y, r.Theme.HeaderFontSize, c)
		y += r.Theme.LineHeight + 2
		y = r.DrawLabel(x, y, fmt.Sprintf("%s (cooldown %.1fs)", t.Description, t.CooldownMs/1000))

		label := "Learn"
		if points < 1 {
			label = "Need a skill point"
		}
		if r.Button(m.width, float32(y), label) && points > 0 {
			chosen = t.ID
		}
		y += int32(r.Theme.ButtonHeight) + 6
	}

	if r.Button(m.width, float32(y+r.Theme.Padding), "Close") {
		return chosen, ActionClose
	}
	return chosen, ActionNone
}
