// Package sidenav renders navigation state for a scrollrouter page: which
// link is highlighted, how far through the page the reader is, and a
// localized progress label and ring. It follows the router through its
// subscription channel and sends clicks back as link navigation.
package sidenav

import (
	"fmt"
	"image"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
)

// Option configures a Progress.
type Option func(*Progress)

// WithLanguage selects the label language. Unsupported languages fall back
// to English.
func WithLanguage(tags ...language.Tag) Option {
	return func(p *Progress) {
		p.languages = tags
	}
}

// WithTheme sets the ring colors.
func WithTheme(theme Theme) Option {
	return func(p *Progress) {
		p.theme = theme
	}
}

// WithOnChange registers a callback that runs after every active-route
// change, with the updated items.
func WithOnChange(fn func(items []Item)) Option {
	return func(p *Progress) {
		p.onChange = fn
	}
}

// Progress tracks the active link of a side navigation.
type Progress struct {
	nav       scrollrouter.Navigator
	links     []Link
	positions map[string]int
	theme     Theme
	languages []language.Tag
	localizer *i18n.Localizer
	onChange  func([]Item)

	mu          sync.Mutex
	active      string
	unsubscribe func()
}

// New creates a Progress for links and subscribes it to nav. A nil nav is
// replaced by a NopNavigator.
func New(nav scrollrouter.Navigator, links []Link, opts ...Option) (*Progress, error) {
	if nav == nil {
		nav = scrollrouter.NopNavigator{}
	}

	p := &Progress{
		nav:       nav,
		links:     append([]Link(nil), links...),
		positions: make(map[string]int, len(links)),
		theme:     DefaultTheme(),
		languages: []language.Tag{language.English},
	}
	for i, l := range p.links {
		p.positions[l.Route] = i
	}
	for _, opt := range opts {
		opt(p)
	}

	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	langs := make([]string, 0, len(p.languages))
	for _, tag := range p.languages {
		langs = append(langs, tag.String())
	}
	p.localizer = i18n.NewLocalizer(bundle, langs...)

	_, p.active = nav.Active()
	p.unsubscribe = nav.Subscribe(p.setActive)
	return p, nil
}

func (p *Progress) setActive(route string) {
	route = history.ParseLocation(route).Path

	p.mu.Lock()
	changed := route != p.active
	p.active = route
	p.mu.Unlock()

	if changed && p.onChange != nil {
		p.onChange(p.Items())
	}
}

// ActiveRoute returns the route of the highlighted link.
func (p *Progress) ActiveRoute() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// ActiveIndex returns the position of the highlighted link, or -1.
func (p *Progress) ActiveIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i, ok := p.positions[p.active]; ok {
		return i
	}
	return -1
}

// Items returns every link with highlighting applied.
func (p *Progress) Items() []Item {
	active := p.ActiveIndex()

	items := make([]Item, len(p.links))
	for i, l := range p.links {
		items[i] = Item{
			Text:   l.Title,
			Route:  l.Route,
			Index:  i,
			Active: i == active,
		}
	}
	return items
}

// Fraction returns how far through the links the reader is, from 0 before
// any section is active to 1 on the last link.
func (p *Progress) Fraction() float64 {
	i := p.ActiveIndex()
	if i < 0 || len(p.links) == 0 {
		return 0
	}
	return float64(i+1) / float64(len(p.links))
}

// Label returns the localized progress label.
func (p *Progress) Label() (string, error) {
	i := p.ActiveIndex()
	total := len(p.links)

	if i < 0 {
		return p.localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "NoActiveSection",
			PluralCount:  total,
			TemplateData: map[string]any{"Total": total},
		})
	}

	return p.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "SectionProgress",
		TemplateData: map[string]any{
			"Title": p.links[i].Title,
			"Index": i + 1,
			"Total": total,
		},
	})
}

// Ring renders the progress ring at the current fraction.
func (p *Progress) Ring(size int) (*image.RGBA, error) {
	return RenderRing(p.Fraction(), size, p.theme)
}

// Click navigates to the link at index.
func (p *Progress) Click(index int) error {
	if index < 0 || index >= len(p.links) {
		return fmt.Errorf("sidenav: link index %d out of range [0,%d)", index, len(p.links))
	}
	return p.nav.OnLinkClick(p.links[index].Route)
}

// Close stops following the navigator.
func (p *Progress) Close() {
	p.mu.Lock()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
