package hover

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSingleStep(t *testing.T) {
	s := &ManualScheduler{}
	var got []float64
	stop := Run(s, func(now float64) error {
		got = append(got, now)
		return nil
	}, nil)

	require.True(t, s.Pending())
	for i := 1; i <= 3; i++ {
		require.True(t, s.Tick(float64(i)*16))
	}
	assert.Equal(t, []float64{16, 32, 48}, got)
	assert.True(t, s.Pending())

	stop()
	assert.False(t, s.Pending())
	assert.False(t, s.Tick(64))
	assert.Len(t, got, 3)

	stop() // idempotent
}

func TestRunStopFromStep(t *testing.T) {
	s := &ManualScheduler{}
	n := 0
	var stop func()
	stop = Run(s, func(float64) error {
		n++
		if n == 2 {
			stop()
		}
		return nil
	}, nil)

	s.Tick(1)
	s.Tick(2)
	assert.False(t, s.Pending())
	assert.Equal(t, 2, n)
}

func TestRunError(t *testing.T) {
	s := &ManualScheduler{}
	boom := errors.New("boom")
	var gotErr error
	Run(s, func(float64) error { return boom }, func(err error) { gotErr = err })

	s.Tick(1)
	assert.Equal(t, boom, gotErr)
	assert.False(t, s.Pending())
}

func TestRunController(t *testing.T) {
	c, r := newTestController(t, testConfig())
	c.PointerMove(100, 100)

	s := &ManualScheduler{}
	stop := Run(s, func(float64) error { return c.Step() }, nil)
	defer stop()

	s.Tick(0)
	s.Tick(16)
	require.Len(t, r.frames, 2)
	x, _ := translation(r.frames[1].Model)
	assert.InDelta(t, 10-640, x, 1e-3)
}

func TestFrameMeter(t *testing.T) {
	m := FrameMeter{Window: 10}

	_, ok := m.Mark(1000)
	assert.False(t, ok)
	for i := 1; i < 10; i++ {
		_, ok = m.Mark(1000 + float64(i)*16)
		assert.False(t, ok)
	}
	fps, ok := m.Mark(1000 + 10*16)
	require.True(t, ok)
	assert.InDelta(t, 62.5, fps, 1e-9)

	_, ok = m.Mark(1000 + 11*16)
	assert.False(t, ok)
}
