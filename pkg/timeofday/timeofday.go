// Package timeofday provides wall-clock helpers for driving light transitions.
// All functions read the clock fields of t in t's own location.
package timeofday

import "time"

const (
	secondsInMinute = 60
	secondsInHour   = secondsInMinute * 60
	secondsInDay    = secondsInHour * 24
)

// MinutesFromMidnight returns the whole minutes elapsed since local midnight.
func MinutesFromMidnight(t time.Time) uint16 {
	return uint16(secondsFromMidnight(t) / secondsInMinute)
}

// Hue returns a hue target that walks the color wheel once every six hours,
// one degree per minute.
func Hue(t time.Time) uint16 {
	return MinutesFromMidnight(t) % 360
}

// UntilNextFullMinute returns the time left until the next full minute.
// Exactly on a full minute this is a whole minute.
func UntilNextFullMinute(t time.Time) time.Duration {
	remainingSeconds := time.Duration(59-t.Second()) * time.Second
	remainingNanos := time.Duration(1_000_000_000 - t.Nanosecond())
	return remainingSeconds + remainingNanos
}

// UntilNextFullSecond returns the time left until the next full second.
func UntilNextFullSecond(t time.Time) time.Duration {
	return time.Duration(1_000_000_000 - t.Nanosecond())
}

// Until returns how long it takes from the clock time of now until the clock
// time of target, wrapping around midnight. Dates are ignored.
func Until(now, target time.Time) time.Duration {
	delta := clockOffset(target) - clockOffset(now)
	if delta < 0 {
		delta += secondsInDay * time.Second
	}
	return delta
}

func secondsFromMidnight(t time.Time) int {
	return t.Hour()*secondsInHour + t.Minute()*secondsInMinute + t.Second()
}

func clockOffset(t time.Time) time.Duration {
	return time.Duration(secondsFromMidnight(t))*time.Second + time.Duration(t.Nanosecond())
}
