package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/arena/game"
)

// Binding describes one input and what it does in a run.
type Binding struct {
	KeyLabel    string
	Description string
}

// Bindings lists the in-run controls, in the order the help screen shows them.
var Bindings = []Binding{
	{KeyLabel: "Mouse", Description: "Walk toward the pointer (snaps to the grid)"},
	{KeyLabel: "RMB", Description: "Switch target"},
	{KeyLabel: "1-9", Description: "Cast the spell in that slot"},
	{KeyLabel: "K", Description: "Open the skill tree"},
	{KeyLabel: "H", Description: "Show this help"},
	{KeyLabel: "Esc", Description: "Pause / resume"},
}

// ControlsLegend is the one-line reminder drawn under the arena.
const ControlsLegend = "Mouse: move | RMB: target | 1-9: cast | K: skills | H: help | Esc: pause"

var castKeys = []int32{
	rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
	rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
}

// HandleInput turns this frame's mouse and keyboard state into game
// commands. Dialogs swallow gameplay input; Escape closes them.
func (s *Screen) HandleInput(g *game.Game) {
	if !g.Phase().Playing() {
		return
	}

	if s.modal != ModalNone {
		if rl.IsKeyPressed(rl.KeyEscape) {
			s.closeModal(g)
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		g.TogglePause()
		return
	}
	if g.Paused() {
		return
	}

	m := rl.GetMousePosition()
	g.SetPointer(float64(m.X), float64(m.Y))

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.CycleTarget()
	}
	for slot, key := range castKeys {
		if rl.IsKeyPressed(key) {
			g.Cast(slot)
		}
	}
	if rl.IsKeyPressed(rl.KeyK) {
		s.openModal(g, ModalSkillTree)
	}
	if rl.IsKeyPressed(rl.KeyH) {
		s.openModal(g, ModalHowTo)
	}
}

// openModal shows a dialog, pausing the run underneath it.
func (s *Screen) openModal(g *game.Game, m Modal) {
	s.modal = m
	s.pausedByModal = false
	if g.Phase().Playing() && !g.Paused() {
		g.TogglePause()
		s.pausedByModal = true
	}
}

// closeModal dismisses the dialog and resumes the run if the dialog paused it.
func (s *Screen) closeModal(g *game.Game) {
	s.modal = ModalNone
	if s.pausedByModal && g.Paused() {
		g.TogglePause()
	}
	s.pausedByModal = false
}
