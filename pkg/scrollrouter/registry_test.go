package scrollrouter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryTrackSortsByPosition(t *testing.T) {
	r := NewRegistry()
	a := &box{top: 0, height: 800}
	b := &box{top: 800, height: 800}
	c := &box{top: 1600, height: 800}

	r.Track(b, "/b")
	require.Equal(t, []Handle{b}, r.Tracked())
	r.Track(a, "/a")
	require.Equal(t, []Handle{a, b}, r.Tracked())
	r.Track(c, "/c")
	require.Equal(t, []Handle{a, b, c}, r.Tracked())
	require.Equal(t, []string{"/a", "/b", "/c"}, r.Routes())
}

func TestRegistryUntrack(t *testing.T) {
	r := NewRegistry()
	a := &box{top: 0, height: 100}
	b := &box{top: 100, height: 100}
	r.Track(a, "/a")
	r.Track(b, "/b")

	route, ok := r.Untrack(a)
	require.True(t, ok)
	require.Equal(t, "/a", route)

	_, ok = r.Route(a)
	require.False(t, ok)
	_, ok = r.Handle("/a")
	require.False(t, ok)
	require.Equal(t, []Handle{b}, r.Tracked())

	_, ok = r.Untrack(a)
	require.False(t, ok, "second untrack is a no-op")
	_, ok = r.Untrack(&box{})
	require.False(t, ok, "never tracked")
	require.Equal(t, 1, r.Len())
}

func TestRegistryKeepsBijection(t *testing.T) {
	r := NewRegistry()
	a := &box{top: 0, height: 100}
	a2 := &box{top: 50, height: 100}

	r.Track(a, "/a")
	r.Track(a, "/renamed")
	_, ok := r.Handle("/a")
	require.False(t, ok)
	route, _ := r.Route(a)
	require.Equal(t, "/renamed", route)
	require.Equal(t, 1, r.Len())

	// A new handle claiming the same route replaces the old one.
	r.Track(a2, "/renamed")
	_, ok = r.Route(a)
	require.False(t, ok)
	h, _ := r.Handle("/renamed")
	require.Same(t, a2, h)
	require.Equal(t, []Handle{a2}, r.Tracked())
}

func TestRegistrySortReflectsLayoutShift(t *testing.T) {
	r := NewRegistry()
	a := &box{top: 0, height: 100}
	b := &box{top: 100, height: 100}
	r.Track(a, "/a")
	r.Track(b, "/b")

	a.top = 500
	require.Equal(t, []string{"/a", "/b"}, r.Routes(), "positions are only read on mutation")
	r.Sort()
	require.Equal(t, []string{"/b", "/a"}, r.Routes())
}

func TestRegistryNilAndClear(t *testing.T) {
	r := NewRegistry()
	r.Track(nil, "/nil")
	require.Zero(t, r.Len())
	_, ok := r.Route(nil)
	require.False(t, ok)

	r.Track(&box{height: 1}, "/a")
	r.Clear()
	require.Zero(t, r.Len())
	_, ok = r.Handle("/a")
	require.False(t, ok)
}
