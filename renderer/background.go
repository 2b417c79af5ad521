package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BackgroundRenderer fills the arena with the zone color and draws the
// movement grid the player snaps to.
type BackgroundRenderer struct {
	width, height int32
	cell          int32
	line          rl.Color
}

// NewBackgroundRenderer creates a background for an arena of the given size.
func NewBackgroundRenderer(width, height, cell int32) *BackgroundRenderer {
	return &BackgroundRenderer{
		width:  width,
		height: height,
		cell:   max(cell, 1),
		line:   toRL(gridLine),
	}
}

// Draw renders the zone tint and the grid.
func (b *BackgroundRenderer) Draw(zone color.RGBA) {
	rl.DrawRectangle(0, 0, b.width, b.height, backgroundTint(zone))

	for x := int32(0); x < b.width; x += b.cell {
		rl.DrawLine(x, 0, x, b.height, b.line)
	}
	for y := int32(0); y < b.height; y += b.cell {
		rl.DrawLine(0, y, b.width, y, b.line)
	}
}
