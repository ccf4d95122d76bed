// Package light moves a displayed light state towards a target one tick at a time.
//
// The caller owns the tick loop and calls the Approach functions once per tick.
// Each call moves at most one step and lands exactly on the target once it is
// within a step, so transitions end without overshoot or oscillation.
package light

import (
	"math"

	"github.com/saaga0h/jeeves-daylight/pkg/angle"
	"github.com/saaga0h/jeeves-daylight/pkg/hsv"
)

const (
	minLevel = 0
	maxLevel = 100
)

// ApproachLinear steps a percentage value (brightness, saturation) towards target.
//
// A NaN distance snaps to target, so an uninitialized NaN current jumps straight
// to the target. A NaN target is returned as is. The result is clamped to 0-100,
// which also pins infinite values to the nearest bound.
func ApproachLinear(current, target, stepSize float32) float32 {
	distance := target - current
	if isNaN(distance) || abs(distance) <= stepSize {
		return clampLevel(target)
	}

	if math.Signbit(float64(distance)) {
		return clampLevel(current - stepSize)
	}
	return clampLevel(current + stepSize)
}

// ApproachHue steps a hue towards target along the shortest arc.
// The stepped result is normalized into [0, 360). A snapped target is returned as given.
func ApproachHue(current, target, stepSize float32) float32 {
	distance := angle.Distance(current, target)
	if isNaN(distance) || abs(distance) <= stepSize {
		return target
	}

	var next float32
	if math.Signbit(float64(distance)) {
		next = current - stepSize
	} else {
		next = current + stepSize
	}
	return angle.NormalizeHue(next)
}

// Steps holds the per-tick step sizes for each channel.
type Steps struct {
	Hue        float32
	Saturation float32
	Brightness float32
}

// Approach advances a whole color by one tick.
func Approach(current, target hsv.Color, steps Steps) hsv.Color {
	return hsv.Color{
		Hue:        ApproachHue(current.Hue, target.Hue, steps.Hue),
		Saturation: ApproachLinear(current.Saturation, target.Saturation, steps.Saturation),
		Brightness: ApproachLinear(current.Brightness, target.Brightness, steps.Brightness),
	}
}

// Reached reports whether current has landed on target.
// Hues are compared on the circle, so 0 and 360 count as equal.
func Reached(current, target hsv.Color) bool {
	return angle.Distance(current.Hue, target.Hue) == 0 &&
		current.Saturation == clampLevel(target.Saturation) &&
		current.Brightness == clampLevel(target.Brightness)
}

func clampLevel(value float32) float32 {
	if value < minLevel {
		return minLevel
	}
	if value > maxLevel {
		return maxLevel
	}
	return value
}

func abs(n float32) float32 {
	return float32(math.Abs(float64(n)))
}

func isNaN(n float32) bool {
	return math.IsNaN(float64(n))
}
