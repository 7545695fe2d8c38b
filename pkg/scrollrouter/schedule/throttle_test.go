package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClock() *ManualClock {
	return NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestThrottleLeadingCallRunsImmediately(t *testing.T) {
	clock := newTestClock()
	runs := 0
	th := NewThrottle(60*time.Millisecond, clock, func() { runs++ })

	th.Call()
	require.Equal(t, 1, runs)
	require.False(t, th.Pending())
}

func TestThrottleCoalescesBurst(t *testing.T) {
	clock := newTestClock()
	runs := 0
	th := NewThrottle(60*time.Millisecond, clock, func() { runs++ })

	th.Call()
	for i := 0; i < 10; i++ {
		clock.Advance(5 * time.Millisecond)
		th.Call()
	}
	require.Equal(t, 1, runs)
	require.True(t, th.Pending())
	require.Equal(t, 1, clock.Pending())

	clock.Advance(10 * time.Millisecond)
	require.Equal(t, 2, runs)
	require.False(t, th.Pending())

	// Quiet period, then a fresh leading call.
	clock.Advance(time.Second)
	th.Call()
	require.Equal(t, 3, runs)
}

func TestThrottleTrailingRunSpacing(t *testing.T) {
	clock := newTestClock()
	var at []time.Time
	th := NewThrottle(60*time.Millisecond, clock, func() { at = append(at, clock.Now()) })

	th.Call()
	clock.Advance(20 * time.Millisecond)
	th.Call()
	clock.Advance(100 * time.Millisecond)

	require.Len(t, at, 2)
	require.Equal(t, 60*time.Millisecond, at[1].Sub(at[0]))
}

func TestThrottleCancel(t *testing.T) {
	clock := newTestClock()
	runs := 0
	th := NewThrottle(60*time.Millisecond, clock, func() { runs++ })

	th.Call()
	th.Call()
	th.Cancel()
	clock.Advance(time.Second)
	require.Equal(t, 1, runs)

	th.Call()
	require.Equal(t, 1, runs)
	require.Zero(t, clock.Pending())
}

func TestManualClockStop(t *testing.T) {
	clock := newTestClock()
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())
	clock.Advance(2 * time.Second)
	require.False(t, fired)
}
