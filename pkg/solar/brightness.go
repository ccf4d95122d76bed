// Package solar turns sun position into a relative daylight brightness.
//
// The brightness model only consumes sun event times and the sun's altitude;
// computing them is delegated to an Ephemeris (see Suncalc).
package solar

import (
	"fmt"
	"time"
)

// Position is an observer location on Earth.
type Position struct {
	Latitude  float64 // degrees
	Longitude float64 // degrees
	Height    float64 // meters above sea level, zero when unknown
}

// SunTimes are the sun events of one day as millisecond epoch timestamps.
// A zero Dawn or Dusk means the event does not happen that day (polar day or night).
type SunTimes struct {
	Dawn      int64
	SolarNoon int64
	Dusk      int64
}

// Polar reports whether the day has no dawn or no dusk.
func (s SunTimes) Polar() bool {
	return s.Dawn == 0 || s.Dusk == 0
}

// Ephemeris supplies the astronomical inputs of the brightness model.
type Ephemeris interface {
	// Times returns the sun events of the day containing timestamp.
	Times(timestamp int64, pos Position) SunTimes
	// Altitude returns the sun's altitude above the horizon at timestamp, in radians.
	Altitude(timestamp int64, pos Position) float64
}

// RelativeBrightness returns the daylight brightness factor in [0.0, 1.0] for
// timestamp (milliseconds since epoch) given that day's sun times.
//
// Above the polar circles, when dawn or dusk is missing, the result is 1 or 0
// depending only on whether the sun is currently above the horizon.
// Before dawn and after dusk it is 0. In between it falls off with the cube of
// the distance from solar noon, relative to the dawn-to-noon span.
//
// Panics when the result leaves [0, 1], which happens when the sun times are
// inconsistent (for example dusk much further from noon than dawn).
func RelativeBrightness(timestamp int64, pos Position, times SunTimes, eph Ephemeris) float32 {
	if times.Polar() {
		// Time of day is irrelevant, it is either 24h of light or none
		if eph.Altitude(timestamp, pos) > 0 {
			return 1
		}
		return 0
	}

	if timestamp < times.Dawn || timestamp > times.Dusk {
		return 0
	}

	maxDistance := float32(times.SolarNoon - times.Dawn)
	currentDistance := float32(absInt64(times.SolarNoon - timestamp))
	relativeDistance := currentDistance / maxDistance
	brightness := 1 - relativeDistance*relativeDistance*relativeDistance

	if !(brightness >= 0 && brightness <= 1) {
		panic(fmt.Sprintf("brightness factor is not between 0.0 and 1.0: %v", brightness))
	}
	return brightness
}

// RelativeBrightnessAt computes the sun times for t with eph and returns the
// relative brightness at t.
func RelativeBrightnessAt(t time.Time, pos Position, eph Ephemeris) float32 {
	timestamp := t.UnixMilli()
	return RelativeBrightness(timestamp, pos, eph.Times(timestamp, pos), eph)
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
