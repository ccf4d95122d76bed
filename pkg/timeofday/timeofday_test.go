package timeofday

import (
	"testing"
	"time"
)

func clock(hour, minute, second, millis int) time.Time {
	return time.Date(2024, 5, 4, hour, minute, second, millis*int(time.Millisecond), time.UTC)
}

func TestMinutesFromMidnight(t *testing.T) {
	tests := []struct {
		t        time.Time
		expected uint16
	}{
		{clock(0, 0, 0, 0), 0},
		{clock(0, 30, 0, 0), 30},
		{clock(6, 0, 0, 0), 360},
		{clock(23, 59, 59, 999), 1439},
	}

	for _, tt := range tests {
		t.Run(tt.t.Format("15:04:05"), func(t *testing.T) {
			if result := MinutesFromMidnight(tt.t); result != tt.expected {
				t.Errorf("MinutesFromMidnight(%s) = %d, want %d", tt.t.Format("15:04:05"), result, tt.expected)
			}
		})
	}
}

func TestHue(t *testing.T) {
	tests := []struct {
		t        time.Time
		expected uint16
	}{
		{clock(0, 30, 0, 0), 30},
		{clock(6, 0, 0, 0), 0},
		{clock(7, 30, 0, 0), 90},
		{clock(23, 59, 0, 0), 359},
	}

	for _, tt := range tests {
		t.Run(tt.t.Format("15:04"), func(t *testing.T) {
			if result := Hue(tt.t); result != tt.expected {
				t.Errorf("Hue(%s) = %d, want %d", tt.t.Format("15:04"), result, tt.expected)
			}
		})
	}
}

func TestHue_UsesLocalClock(t *testing.T) {
	helsinki := time.FixedZone("EET", 2*60*60)
	at := time.Date(2024, 1, 1, 0, 30, 0, 0, helsinki)

	if result := Hue(at); result != 30 {
		t.Errorf("Hue in local zone = %d, want 30", result)
	}
	if result := Hue(at.UTC()); result != (22*60+30)%360 {
		t.Errorf("Hue in UTC = %d, want %d", result, (22*60+30)%360)
	}
}

func TestUntilNextFullMinute(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected time.Duration
	}{
		{"with millis", clock(3, 13, 57, 500), 2500 * time.Millisecond},
		{"on full minute", clock(3, 13, 0, 0), time.Minute},
		{"last millisecond", clock(3, 13, 59, 999), time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := UntilNextFullMinute(tt.t); result != tt.expected {
				t.Errorf("UntilNextFullMinute = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestUntilNextFullSecond(t *testing.T) {
	if result := UntilNextFullSecond(clock(3, 13, 57, 500)); result != 500*time.Millisecond {
		t.Errorf("UntilNextFullSecond = %v, want 500ms", result)
	}
	if result := UntilNextFullSecond(clock(3, 13, 57, 0)); result != time.Second {
		t.Errorf("UntilNextFullSecond on full second = %v, want 1s", result)
	}
}

func TestUntil(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		target   time.Time
		expected time.Duration
	}{
		{"direct", clock(10, 30, 0, 0), clock(13, 37, 0, 0), 3*time.Hour + 7*time.Minute},
		{"wraparound", clock(23, 45, 0, 0), clock(0, 15, 0, 0), 30 * time.Minute},
		{"wraparound millis", clock(20, 15, 0, 20), clock(20, 15, 0, 0), 24*time.Hour - 20*time.Millisecond},
		{"with millis", clock(13, 36, 58, 500), clock(13, 37, 0, 0), 1500 * time.Millisecond},
		{"same time", clock(8, 0, 0, 0), clock(8, 0, 0, 0), 0},
		{"dates ignored", clock(8, 0, 0, 0), clock(9, 0, 0, 0).AddDate(0, 0, 3), time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Until(tt.now, tt.target); result != tt.expected {
				t.Errorf("Until = %v, want %v", result, tt.expected)
			}
		})
	}
}
