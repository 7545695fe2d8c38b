package page

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
)

func TestSectionBoundsFollowScroll(t *testing.T) {
	p := New(600)
	a := p.AddSection(0, 800)
	b := p.AddSection(800, 800)

	p.SetScrollY(850)
	require.Equal(t, scrollrouter.Rect{Top: -850, Height: 800}, a.Bounds())
	require.Equal(t, scrollrouter.Rect{Top: -50, Height: 800}, b.Bounds())
}

func TestSetScrollYClamps(t *testing.T) {
	p := New(600)
	p.AddSection(0, 1000)

	p.SetScrollY(-50)
	require.Equal(t, float64(0), p.ScrollY())

	p.SetScrollY(5000)
	require.Equal(t, float64(400), p.ScrollY())
	require.Equal(t, float64(400), p.MaxScroll())
	require.Equal(t, float64(1000), p.ContentHeight())
}

func TestListenersNotifiedOnChangeOnly(t *testing.T) {
	p := New(100)
	p.AddSection(0, 1000)

	calls := 0
	remove := p.Listen(func() {
		calls++
		// Listeners may read the page.
		_ = p.ScrollY()
	})

	p.ScrollBy(10)
	p.ScrollBy(0)
	require.Equal(t, 1, calls)

	p.Resize(200)
	require.Equal(t, 2, calls)

	remove()
	p.ScrollBy(10)
	require.Equal(t, 2, calls)
	require.Zero(t, p.Listeners())
}

func TestScrollToSection(t *testing.T) {
	p := New(100)
	p.AddSection(0, 500)
	b := p.AddSection(500, 500)

	p.ScrollTo(b, 0)
	require.Equal(t, float64(500), p.ScrollY())
	require.Equal(t, float64(0), b.Bounds().Top)
}

func TestResizeClampsScroll(t *testing.T) {
	p := New(100)
	p.AddSection(0, 300)
	p.SetScrollY(200)

	p.Resize(250)
	require.Equal(t, float64(50), p.ScrollY())
}

func TestRemoveSection(t *testing.T) {
	p := New(100)
	a := p.AddSection(0, 300)
	b := p.AddSection(300, 300)

	p.RemoveSection(a)
	require.Equal(t, []*Section{b}, p.Sections())

	b.SetLayout(10, 20)
	require.Equal(t, float64(10), b.Top())
	require.Equal(t, float64(20), b.Height())
}
