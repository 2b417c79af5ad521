package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 4
}

// DrawLabel draws a text label and returns the new Y position.
func (r *Renderer) DrawLabel(x, y int32, text string) int32 {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a labelled [0, 1] bar in the given color with a caption to
// its right.
func (r *Renderer) DrawBar(x, y int32, label string, value float32, fill rl.Color, caption string, width int32) int32 {
	value = min(1, max(0, value))

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 60

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*value), r.Theme.BarHeight, fill)
	rl.DrawText(caption, barX+barWidth+6, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight + 2
}

// DrawMeter draws a current/max bar with color thresholds.
func (r *Renderer) DrawMeter(x, y int32, label string, current, maxVal int, width int32) int32 {
	ratio := float32(0)
	if maxVal > 0 {
		ratio = float32(current) / float32(maxVal)
	}

	fill := r.Theme.BarFillHigh
	if ratio < 0.3 {
		fill = r.Theme.BarFillLow
	} else if ratio < 0.6 {
		fill = r.Theme.BarFillMedium
	}
	return r.DrawBar(x, y, label, ratio, fill, fmt.Sprintf("%d/%d", current, maxVal), width)
}

// DrawCenteredText draws text horizontally centered on the screen.
func (r *Renderer) DrawCenteredText(text string, screenW, y, size int32, c rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, (screenW-w)/2, y, size, c)
}

// DrawDim darkens the whole screen behind a dialog.
func (r *Renderer) DrawDim(screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.Dim)
}

// Button draws a centered raygui button at row y and reports a click.
func (r *Renderer) Button(screenW int32, y float32, text string) bool {
	bounds := rl.Rectangle{
		X:      (float32(screenW) - r.Theme.ButtonWidth) / 2,
		Y:      y,
		Width:  r.Theme.ButtonWidth,
		Height: r.Theme.ButtonHeight,
	}
	return gui.Button(bounds, text)
}

// Toggle draws a centered raygui check box and returns its new state.
func (r *Renderer) Toggle(screenW int32, y float32, text string, on bool) bool {
	const box = 20
	bounds := rl.Rectangle{
		X:      (float32(screenW) - r.Theme.ButtonWidth) / 2,
		Y:      y + (r.Theme.ButtonHeight-box)/2,
		Width:  box,
		Height: box,
	}
	return gui.CheckBox(bounds, text, on)
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
