package solar

import (
	"time"

	"github.com/sixdouglas/suncalc"
)

// Keys of the suncalc day time map used by the brightness model.
const (
	dawnKey      = "dawn"
	solarNoonKey = "solarNoon"
	duskKey      = "dusk"
)

// maxEventOffset bounds how far a sun event may lie from the queried instant.
// suncalc yields garbage times instead of an error when an event does not happen.
const maxEventOffset = 36 * time.Hour

// Suncalc is an Ephemeris backed by github.com/sixdouglas/suncalc.
// Dawn and dusk are civil twilight (sun 6° below the horizon).
type Suncalc struct {
	// Location is handed to suncalc for the returned times; nil means UTC.
	Location *time.Location
}

// Times implements Ephemeris.
func (s Suncalc) Times(timestamp int64, pos Position) SunTimes {
	t := time.UnixMilli(timestamp)
	times := suncalc.GetTimesWithObserver(t, suncalc.Observer{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Height:    pos.Height,
		Location:  s.location(),
	})

	return SunTimes{
		Dawn:      eventMillis(t, times[dawnKey].Value),
		SolarNoon: eventMillis(t, times[solarNoonKey].Value),
		Dusk:      eventMillis(t, times[duskKey].Value),
	}
}

// Altitude implements Ephemeris.
func (s Suncalc) Altitude(timestamp int64, pos Position) float64 {
	position := suncalc.GetPosition(time.UnixMilli(timestamp), pos.Latitude, pos.Longitude)
	return position.Altitude
}

func (s Suncalc) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// eventMillis converts a sun event to milliseconds, or 0 when the event does not happen.
func eventMillis(reference, event time.Time) int64 {
	if event.IsZero() {
		return 0
	}
	offset := event.Sub(reference)
	if offset > maxEventOffset || offset < -maxEventOffset {
		return 0
	}
	return event.UnixMilli()
}
