package scrollrouter_test

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/schedule"
)

// Example wires a Router to a page layout and shows scroll-driven and
// click-driven navigation.
func Example() {
	doc := page.New(600)
	intro := doc.AddSection(0, 800)
	usage := doc.AddSection(800, 800)
	faq := doc.AddSection(1600, 800)

	addressBar := history.NewMemory("/?v=2")
	clock := schedule.NewManualClock(time.Unix(0, 0))

	opts := scrollrouter.DefaultOptions()
	opts.Viewport = doc
	opts.History = addressBar
	opts.Clock = clock
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	r := scrollrouter.New(opts)
	defer r.Close()

	r.Subscribe(func(route string) {
		fmt.Println("active:", route)
	})

	// Sections mount in any order.
	r.Track(usage, "/usage")
	r.Track(faq, "/faq")
	r.Track(intro, "/intro")
	fmt.Println(r.Routes())

	if _, err := r.Mount(doc); err != nil {
		fmt.Println(err)
		return
	}

	// The reader scrolls into the second section.
	doc.SetScrollY(850)
	fmt.Println("address bar:", addressBar.Location())

	// A navigation link jumps to the last one.
	clock.Advance(time.Second)
	if err := r.OnLinkClick("/faq"); err != nil {
		fmt.Println(err)
	}
	fmt.Println("address bar:", addressBar.Location(), "entries:", addressBar.Len())

	// Output:
	// [/intro /usage /faq]
	// active: /usage
	// address bar: /usage?v=2
	// active: /faq
	// address bar: /faq entries: 2
}
