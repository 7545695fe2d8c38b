package internal

import (
	"math"

	"go.uber.org/atomic"
)

// Direction represents the vertical direction of the last qualifying scroll.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return ""
	}
}

// ScrollState tracks the last recorded scroll offset, the direction of the
// last qualifying movement, and whether a navigation click is pending.
// Fields are atomics so downstream readers can query direction from any
// goroutine while the coordinator is the only writer.
type ScrollState struct {
	last     atomic.Float64
	moved    atomic.Bool
	down     atomic.Bool
	navClick atomic.Bool
}

// Advance records offset if it moved at least minDelta away from the last
// recorded offset. It returns false, leaving the state untouched, for
// smaller movements.
func (s *ScrollState) Advance(offset, minDelta float64) bool {
	last := s.last.Load()
	if math.IsNaN(offset) || math.Abs(offset-last) < minDelta {
		return false
	}

	s.down.Store(offset > last)
	s.last.Store(offset)
	s.moved.Store(true)
	return true
}

// LastOffset returns the last recorded offset.
func (s *ScrollState) LastOffset() float64 {
	return s.last.Load()
}

// IsScrollingDown reports whether the last qualifying movement went down.
func (s *ScrollState) IsScrollingDown() bool {
	return s.down.Load()
}

// Direction returns DirectionNone until the first qualifying movement.
func (s *ScrollState) Direction() Direction {
	if !s.moved.Load() {
		return DirectionNone
	}
	if s.down.Load() {
		return DirectionDown
	}
	return DirectionUp
}

// SetNavClicked sets or clears the pending navigation click.
func (s *ScrollState) SetNavClicked(clicked bool) {
	s.navClick.Store(clicked)
}

// NavClicked reports whether a navigation click is pending.
func (s *ScrollState) NavClicked() bool {
	return s.navClick.Load()
}

// PreferDownward returns the direction preference for one evaluation and
// consumes the pending navigation click, which forces a downward preference
// exactly once.
func (s *ScrollState) PreferDownward() bool {
	if s.navClick.Swap(false) {
		return true
	}
	return s.down.Load()
}

// Reset returns the state to its zero value.
func (s *ScrollState) Reset() {
	s.last.Store(0)
	s.moved.Store(false)
	s.down.Store(false)
	s.navClick.Store(false)
}
