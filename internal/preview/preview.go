// Package preview computes what a light would show over a day and during a
// transition, without driving any device.
package preview

import (
	"log/slog"
	"time"

	"github.com/saaga0h/jeeves-daylight/pkg/hsv"
	"github.com/saaga0h/jeeves-daylight/pkg/light"
	"github.com/saaga0h/jeeves-daylight/pkg/solar"
	"github.com/saaga0h/jeeves-daylight/pkg/timeofday"
)

// Sample is one point of a day curve
type Sample struct {
	Time       time.Time
	Brightness float32   // relative daylight, 0.0-1.0
	Hue        uint16    // clock-driven hue target
	Color      hsv.Color // hue target at daylight brightness
}

// Previewer samples the brightness model and simulates transitions
type Previewer struct {
	ephemeris solar.Ephemeris
	logger    *slog.Logger
}

// NewPreviewer creates a new previewer
func NewPreviewer(ephemeris solar.Ephemeris, logger *slog.Logger) *Previewer {
	return &Previewer{
		ephemeris: ephemeris,
		logger:    logger,
	}
}

// DayCurve samples the day starting at day (local midnight) every interval
// until the next local midnight
func (p *Previewer) DayCurve(day time.Time, pos solar.Position, interval time.Duration) []Sample {
	end := day.AddDate(0, 0, 1)
	samples := make([]Sample, 0, int(end.Sub(day)/interval)+1)

	for at := day; at.Before(end); at = at.Add(interval) {
		brightness := solar.RelativeBrightnessAt(at, pos, p.ephemeris)
		hue := timeofday.Hue(at)

		samples = append(samples, Sample{
			Time:       at,
			Brightness: brightness,
			Hue:        hue,
			Color: hsv.Color{
				Hue:        float32(hue),
				Saturation: 100,
				Brightness: brightness * 100,
			},
		})
	}

	p.logger.Debug("Sampled day curve",
		"day", day.Format(time.DateOnly),
		"latitude", pos.Latitude,
		"longitude", pos.Longitude,
		"samples", len(samples))

	return samples
}

// Transition steps from towards to once per tick until it arrives or maxTicks
// is reached. The returned frames exclude the starting color.
func (p *Previewer) Transition(from, to hsv.Color, steps light.Steps, maxTicks int) []hsv.Color {
	frames := []hsv.Color{}
	current := from

	for tick := 0; tick < maxTicks && !light.Reached(current, to); tick++ {
		current = light.Approach(current, to, steps)
		frames = append(frames, current)
	}

	if !light.Reached(current, to) {
		p.logger.Warn("Transition did not reach target",
			"max_ticks", maxTicks,
			"current", current,
			"target", to)
	} else {
		p.logger.Debug("Transition complete", "ticks", len(frames))
	}

	return frames
}

// Blend returns frames evenly spaced blends from from to to, both ends included
func (p *Previewer) Blend(from, to hsv.Color, frames int) []hsv.Color {
	if frames < 2 {
		return []hsv.Color{from, to}
	}

	colors := make([]hsv.Color, frames)
	for i := range colors {
		position := float32(i) / float32(frames-1)
		colors[i] = hsv.Interpolate(from, to, position)
	}
	return colors
}
