package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		start    float32
		end      float32
		expected float32
	}{
		{"positive", 0, 10, 10},
		{"negative", 10, 0, -10},
		{"positive over zero", -10, 20, 30},
		{"negative over zero", 20, -10, -30},
		{"positive over zero with positive degree", 350, 20, 30},
		{"negative over zero with positive degree", 20, 350, -30},
		{"half turn", 0, 180, 180},
		{"half turn reversed", 180, 0, -180},
		{"full turn", 0, 360, 0},
		{"several turns", 10, 730, 0},
		{"large negative input", -725, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.start, tt.end), 0.1)
		})
	}
}

func TestDistance_Antisymmetric(t *testing.T) {
	values := []float32{-720, -359, -180.5, -90, -1, 0, 0.25, 45, 179, 181, 270, 359.9, 1000}

	for _, a := range values {
		for _, b := range values {
			forward := Distance(a, b)
			backward := Distance(b, a)
			if float32(math.Abs(float64(forward))) == 180 {
				continue
			}
			assert.InDelta(t, forward, -backward, 0.001, "Distance(%v, %v) vs Distance(%v, %v)", a, b, b, a)
		}
	}
}

func TestDistance_HalfTurnTie(t *testing.T) {
	// The raw sign of end - start wins on an exact half turn
	assert.Equal(t, float32(180), Distance(0, 180))
	assert.Equal(t, float32(-180), Distance(180, 0))
}

func TestDistance_NonFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	assert.True(t, math.IsNaN(float64(Distance(nan, 10))))
	assert.True(t, math.IsNaN(float64(Distance(10, nan))))
	assert.True(t, math.IsNaN(float64(Distance(inf, 10))))
	assert.True(t, math.IsNaN(float64(Distance(10, -inf))))
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		name     string
		hue      float32
		expected float32
	}{
		{"zero", 0, 0},
		{"in range", 123.5, 123.5},
		{"full turn", 360, 0},
		{"over full turn", 370, 10},
		{"negative", -10, 350},
		{"negative full turn", -360, 0},
		{"negative several turns", -730, 350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeHue(tt.hue), 0.001)
		})
	}
}

func TestNormalizeHue_NegativeZero(t *testing.T) {
	negativeZero := float32(math.Copysign(0, -1))

	result := NormalizeHue(negativeZero)

	assert.Equal(t, float32(0), result)
	assert.False(t, math.Signbit(float64(result)), "negative zero must normalize to positive zero, not 360")
}

func TestNormalizeHue_TinyNegativeStaysInRange(t *testing.T) {
	result := NormalizeHue(-1e-6)

	assert.GreaterOrEqual(t, result, float32(0))
	assert.Less(t, result, float32(360))
}

func TestNormalizeHue_RangeAndIdempotent(t *testing.T) {
	for hue := float32(-1080); hue <= 1080; hue += 7.25 {
		once := NormalizeHue(hue)
		if once < 0 || once >= 360 {
			t.Errorf("NormalizeHue(%v) = %v, want value in [0, 360)", hue, once)
		}
		if twice := NormalizeHue(once); twice != once {
			t.Errorf("NormalizeHue not idempotent for %v: %v then %v", hue, once, twice)
		}
	}
}

func TestNormalizeHue_NaN(t *testing.T) {
	assert.True(t, math.IsNaN(float64(NormalizeHue(float32(math.NaN())))))
}
