package preview

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/saaga0h/jeeves-daylight/pkg/hsv"
	"github.com/saaga0h/jeeves-daylight/pkg/interpolate"
)

const barWidth = 40

// WriteDayCurve writes one line per sample with a brightness bar
func WriteDayCurve(w io.Writer, samples []Sample) error {
	for _, s := range samples {
		filled := int(interpolate.U8(0, barWidth, s.Brightness))
		bar := strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled)

		_, err := fmt.Fprintf(w, "%s  %5.3f  %s  hue %3d  %s\n",
			s.Time.Format(time.TimeOnly), s.Brightness, bar, s.Hue, s.Color.Hex())
		if err != nil {
			return fmt.Errorf("failed to write day curve: %w", err)
		}
	}
	return nil
}

// WriteColors writes one line per color frame
func WriteColors(w io.Writer, title string, colors []hsv.Color) error {
	if _, err := fmt.Fprintf(w, "%s (%d frames)\n", title, len(colors)); err != nil {
		return fmt.Errorf("failed to write %s: %w", title, err)
	}
	for i, c := range colors {
		_, err := fmt.Fprintf(w, "%4d  h=%6.2f s=%6.2f b=%6.2f  %s\n",
			i, c.Hue, c.Saturation, c.Brightness, c.Hex())
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", title, err)
		}
	}
	return nil
}
