// Package angle holds the wraparound arithmetic for cyclic values such as hue.
// Every hue computation in this module goes through Distance and NormalizeHue.
package angle

import "math"

// Distance returns the signed shortest-path delta from start to end in degrees,
// in the range [-180, 180]. A negative result means the decreasing direction.
//
// The remainder is truncated (sign of the dividend), not Euclidean.
// NaN input gives NaN. Infinite input also gives NaN; callers guard against that.
func Distance(start, end float32) float32 {
	difference := end - start
	difference = float32(math.Mod(float64(difference), 360))

	if difference < -180 {
		return difference + 360
	}
	if difference > 180 {
		return difference - 360
	}
	return difference
}

// NormalizeHue maps any finite hue into [0, 360).
// Negative zero comes back as positive zero.
func NormalizeHue(hue float32) float32 {
	hue = float32(math.Mod(float64(hue), 360))
	if math.Signbit(float64(hue)) {
		hue += 360
	}

	// -0 + 360 and tiny negative remainders round to exactly 360 in float32
	if hue >= 360 || hue == 0 {
		return 0
	}
	return hue
}
