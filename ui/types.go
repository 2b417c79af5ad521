// Package ui draws the HUD, menus and dialogs over the arena and turns
// raylib input into game commands.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Modal identifies the dialog shown above a running game.
type Modal int

const (
	ModalNone      Modal = iota
	ModalSkillTree       // Spend skill points
	ModalHowTo           // Controls and rules
)

// MenuAction is a choice made on one of the menu screens.
type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionFight
	ActionContinue
	ActionHowTo
	ActionToggleSFX
	ActionToggleMusic
	ActionResume
	ActionMainMenu
	ActionTryAgain
	ActionClose
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	Dim           rl.Color // Backdrop behind dialogs
	BarBg         rl.Color
	BarFillLow    rl.Color
	BarFillMedium rl.Color
	BarFillHigh   rl.Color
	XPFill        rl.Color
	CooldownShade rl.Color
	Notice        rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
	ButtonWidth    float32
	ButtonHeight   float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		Dim:            rl.Color{R: 0, G: 0, B: 0, A: 160},
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFillLow:     rl.Color{R: 244, G: 67, B: 54, A: 255},
		BarFillMedium:  rl.Color{R: 255, G: 193, B: 7, A: 255},
		BarFillHigh:    rl.Color{R: 76, G: 175, B: 80, A: 255},
		XPFill:         rl.Color{R: 120, G: 110, B: 255, A: 255},
		CooldownShade:  rl.Color{R: 0, G: 0, B: 0, A: 170},
		Notice:         rl.Orange,
		Padding:        10,
		LineHeight:     18,
		LabelWidth:     50,
		BarHeight:      12,
		FontSize:       14,
		HeaderFontSize: 18,
		TitleFontSize:  40,
		ButtonWidth:    220,
		ButtonHeight:   36,
	}
}
