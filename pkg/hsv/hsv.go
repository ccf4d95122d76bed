// Package hsv models a light color as hue, saturation and brightness and
// blends between two colors along the shorter way around the color wheel.
package hsv

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/saaga0h/jeeves-daylight/pkg/angle"
)

// Color is a hue/saturation/brightness triple.
// Saturation and Brightness are not clamped by the type; callers keep them in 0-100.
type Color struct {
	Hue        float32 // degrees, 0-360 (unnormalized input accepted)
	Saturation float32 // 0-100
	Brightness float32 // 0-100
}

// FromHue returns the fully saturated, fully bright color of the given hue.
func FromHue(hue float32) Color {
	return Color{
		Hue:        hue,
		Saturation: 100,
		Brightness: 100,
	}
}

// distanceTo returns the per-channel delta towards target, hue along the shortest arc.
func (c Color) distanceTo(target Color) Color {
	return Color{
		Hue:        angle.Distance(c.Hue, target.Hue),
		Saturation: target.Saturation - c.Saturation,
		Brightness: target.Brightness - c.Brightness,
	}
}

// Interpolate blends start into end at position.
// Positions at or below 0 return start and at or above 1 return end, untouched.
// The resulting hue is normalized; saturation and brightness are plain linear
// blends and extrapolate if the inputs are outside 0-100.
func Interpolate(start, end Color, position float32) Color {
	if position <= 0 {
		return start
	}
	if position >= 1 {
		return end
	}

	distances := start.distanceTo(end)
	return Color{
		Hue:        angle.NormalizeHue(distances.Hue*position + start.Hue),
		Saturation: distances.Saturation*position + start.Saturation,
		Brightness: distances.Brightness*position + start.Brightness,
	}
}

// toColorful converts to the color library's representation.
// Saturation and brightness are clamped to the unit range it expects.
func (c Color) toColorful() colorful.Color {
	return colorful.Hsv(
		float64(angle.NormalizeHue(c.Hue)),
		unit(c.Saturation),
		unit(c.Brightness),
	).Clamped()
}

// RGB converts to 8-bit red, green and blue.
func (c Color) RGB() (r, g, b uint8) {
	return c.toColorful().RGB255()
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// FromRGB converts 8-bit red, green and blue into a Color.
func FromRGB(r, g, b uint8) Color {
	rgb := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, v := rgb.Hsv()
	return Color{
		Hue:        float32(h),
		Saturation: float32(s * 100),
		Brightness: float32(v * 100),
	}
}

func unit(percent float32) float64 {
	value := float64(percent) / 100.0
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
