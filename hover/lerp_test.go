package hover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		start, end float64
	}{
		{0, 1}, {-10, 10}, {100, -3.5}, {0.25, 0.25},
	}
	for _, c := range cases {
		for _, k := range []float64{0, 0.1, 0.5, 0.9, 1} {
			assert.InDelta(t, c.start*(1-k)+c.end*k, Lerp(c.start, c.end, k), 1e-12)
			assert.InDelta(t, c.start, Lerp(c.start, c.start, k), 1e-12)
		}
		assert.Equal(t, c.start, Lerp(c.start, c.end, 0))
		assert.Equal(t, c.end, Lerp(c.start, c.end, 1))
	}
}

func TestFOV(t *testing.T) {
	assert.InDelta(t, 43.6, FOV(800, 1000), 0.01)
	// a shorter viewport needs a narrower angle
	assert.InDelta(t, 33.4, FOV(600, 1000), 0.01)
	// one pixel per world unit at the focal distance
	assert.InDelta(t, 90.0, FOV(2000, 1000), 1e-9)
}
