package ui

import (
	"errors"
	"log/slog"

	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/persist"
)

// Screen owns the HUD, menus and dialog state for the graphical client.
type Screen struct {
	hud    *HUD
	target *TargetPanel
	menus  *Menus

	width, height int32

	modal         Modal
	pausedByModal bool
	menuHelp      bool // How-to shown from the main menu
	notice        string
}

// NewScreen creates the UI for a window of the given size.
func NewScreen(width, height int32) *Screen {
	return &Screen{
		hud:    NewHUD(),
		target: NewTargetPanel(10, 124, 250),
		menus:  NewMenus(width, height),
		width:  width,
		height: height,
	}
}

// Draw renders the UI layer for the current view and applies whatever the
// player clicked. Call after the arena has been drawn.
func (s *Screen) Draw(g *game.Game, v *game.View) {
	switch v.Phase {
	case game.PhaseMenu:
		s.drawMenu(g)
		return
	case game.PhaseGameOver:
		s.hud.Draw(v, s.width, s.height)
		switch s.menus.GameOver(v) {
		case ActionTryAgain:
			g.NewGame()
		case ActionMainMenu:
			g.ReturnToMenu()
		}
		return
	}

	s.hud.Draw(v, s.width, s.height)
	s.target.Draw(v.Enemies)
	s.hud.DrawControls(s.height, ControlsLegend)
	s.menus.Banner(v)

	switch s.modal {
	case ModalSkillTree:
		id, action := s.menus.SkillTree(g.AvailableUnlocks(), v.Player.SkillPoints)
		if id >= 0 {
			g.UnlockSpell(id)
		}
		if action == ActionClose {
			s.closeModal(g)
		}
		return
	case ModalHowTo:
		if s.menus.HowTo(Bindings) == ActionClose {
			s.closeModal(g)
		}
		return
	}

	if v.Paused {
		switch s.menus.Pause() {
		case ActionResume:
			g.TogglePause()
		case ActionMainMenu:
			g.ReturnToMenu()
		}
	}
}

func (s *Screen) drawMenu(g *game.Game) {
	if s.menuHelp {
		if s.menus.HowTo(Bindings) == ActionClose {
			s.menuHelp = false
		}
		return
	}

	st := g.Settings()
	switch s.menus.MainMenu(st, s.notice) {
	case ActionFight:
		s.notice = ""
		g.NewGame()
	case ActionContinue:
		s.notice = ""
		if err := g.Load(); err != nil {
			slog.Info("continue failed", "error", err)
			if errors.Is(err, persist.ErrNoSave) {
				s.notice = "No saved game found."
			}
		}
	case ActionHowTo:
		s.menuHelp = true
	case ActionToggleSFX:
		g.SetSFX(!st.SFXEnabled)
	case ActionToggleMusic:
		g.SetMusic(!st.MusicEnabled)
	}
}
