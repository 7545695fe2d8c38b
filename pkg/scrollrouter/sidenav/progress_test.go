package sidenav

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/schedule"
)

var testLinks = []Link{
	{Title: "Intro", Route: "/intro"},
	{Title: "Usage", Route: "/usage"},
	{Title: "FAQ", Route: "/faq"},
}

func newRouter(t *testing.T) (*scrollrouter.Router, *page.Page, *schedule.ManualClock) {
	t.Helper()

	doc := page.New(600)
	clock := schedule.NewManualClock(time.Unix(0, 0))

	opts := scrollrouter.DefaultOptions()
	opts.Viewport = doc
	opts.History = history.NewMemory("/")
	opts.Clock = clock
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	r := scrollrouter.New(opts)
	t.Cleanup(r.Close)

	for i, l := range testLinks {
		r.Track(doc.AddSection(float64(i)*800, 800), l.Route)
	}
	_, err := r.Mount(doc)
	require.NoError(t, err)
	return r, doc, clock
}

func TestProgressFollowsScroll(t *testing.T) {
	r, doc, _ := newRouter(t)

	var changes [][]Item
	p, err := New(r, testLinks, WithOnChange(func(items []Item) { changes = append(changes, items) }))
	require.NoError(t, err)
	t.Cleanup(p.Close)

	require.Equal(t, -1, p.ActiveIndex())
	require.Equal(t, float64(0), p.Fraction())
	label, err := p.Label()
	require.NoError(t, err)
	require.Equal(t, "3 sections", label)

	doc.SetScrollY(850)
	require.Equal(t, "/usage", p.ActiveRoute())
	require.Equal(t, 1, p.ActiveIndex())
	require.InDelta(t, 2.0/3.0, p.Fraction(), 1e-9)

	items := p.Items()
	require.Len(t, items, 3)
	require.False(t, items[0].Active)
	require.True(t, items[1].Active)
	require.Equal(t, "Usage", items[1].Text)
	require.Len(t, changes, 1)

	label, err = p.Label()
	require.NoError(t, err)
	require.Equal(t, "Usage (2 of 3)", label)
}

func TestProgressClick(t *testing.T) {
	r, doc, clock := newRouter(t)
	p, err := New(r, testLinks)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	clock.Advance(time.Second)
	require.NoError(t, p.Click(2))
	require.Equal(t, "/faq", p.ActiveRoute())
	require.Equal(t, float64(1), p.Fraction())
	require.Equal(t, float64(1600), doc.ScrollY())

	require.Error(t, p.Click(3))
	require.Error(t, p.Click(-1))
}

func TestProgressClickUnknownRoute(t *testing.T) {
	r, _, _ := newRouter(t)
	p, err := New(r, append(testLinks, Link{Title: "Gone", Route: "/gone"}))
	require.NoError(t, err)
	t.Cleanup(p.Close)

	err = p.Click(3)
	require.True(t, scrollrouter.IsUnknownRoute(err))
}

func TestProgressSpanish(t *testing.T) {
	r, doc, _ := newRouter(t)
	p, err := New(r, testLinks[:1], WithLanguage(language.Spanish))
	require.NoError(t, err)
	t.Cleanup(p.Close)

	label, err := p.Label()
	require.NoError(t, err)
	require.Equal(t, "1 sección", label)

	doc.SetScrollY(200)
	label, err = p.Label()
	require.NoError(t, err)
	require.Equal(t, "Intro (1 de 1)", label)
}

func TestProgressUnknownLanguageFallsBack(t *testing.T) {
	p, err := New(nil, testLinks, WithLanguage(language.Japanese))
	require.NoError(t, err)

	label, err := p.Label()
	require.NoError(t, err)
	require.Equal(t, "3 sections", label)
	require.NoError(t, p.Click(0), "nop navigator accepts every click")
}

func TestProgressSeedsFromNavigator(t *testing.T) {
	doc := page.New(600)
	opts := scrollrouter.DefaultOptions()
	opts.Viewport = doc
	opts.InitialActive = "/usage"
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	r := scrollrouter.New(opts)

	p, err := New(r, testLinks)
	require.NoError(t, err)
	require.Equal(t, 1, p.ActiveIndex())
}

func TestProgressCloseStopsFollowing(t *testing.T) {
	r, doc, _ := newRouter(t)
	p, err := New(r, testLinks)
	require.NoError(t, err)

	p.Close()
	p.Close()
	doc.SetScrollY(850)
	require.Equal(t, "", p.ActiveRoute())
}
