package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	gridLine    = colorful.MustParseHex("#333344")
	healthHigh  = colorful.MustParseHex("#4CAF50")
	healthMid   = colorful.MustParseHex("#FFC107")
	healthLow   = colorful.MustParseHex("#F44336")
	barTrack    = colorful.MustParseHex("#333333")
	targetFill  = colorful.MustParseHex("#ffcc00")
	frostTint   = colorful.MustParseHex("#66ccff")
	outlineTint = colorful.MustParseHex("#ffffff")
)

// toRL converts a colorful color to an opaque raylib color.
func toRL(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.Color{R: r, G: g, B: b, A: 255}
}

// fromRGBA converts a view color to colorful space.
func fromRGBA(c color.RGBA) colorful.Color {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf
}

// withAlpha returns c as a raylib color with alpha in [0,1].
func withAlpha(c color.RGBA, alpha float64) rl.Color {
	alpha = min(1, max(0, alpha))
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

// healthColor picks the bar color for a health ratio: green above 0.6,
// amber above 0.3, red otherwise.
func healthColor(ratio float64) rl.Color {
	switch {
	case ratio > 0.6:
		return toRL(healthHigh)
	case ratio > 0.3:
		return toRL(healthMid)
	}
	return toRL(healthLow)
}

// enemyFill is the body color of an enemy: gold when targeted, tinted toward
// ice while slowed.
func enemyFill(base color.RGBA, targeted, slowed bool) color.RGBA {
	c := fromRGBA(base)
	if targeted {
		c = targetFill
	}
	if slowed {
		c = c.BlendLab(frostTint, 0.4)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// backgroundTint darkens the zone color slightly so the grid stays visible.
func backgroundTint(zone color.RGBA) rl.Color {
	return toRL(fromRGBA(zone).BlendLab(colorful.Color{}, 0.15))
}
