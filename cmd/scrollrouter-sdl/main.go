// Command scrollrouter-sdl shows a long page of colored sections in an SDL
// window. The window title follows the active section and a progress ring
// in the corner tracks how far down the page the reader is.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/platform/sdlinput"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/sidenav"
)

const (
	windowWidth  = 800
	windowHeight = 600
	ringSize     = 64
	ringMargin   = 16
)

var palette = []sdl.Color{
	{R: 0x2e, G: 0x86, B: 0xab, A: 0xff},
	{R: 0xa2, G: 0x3b, B: 0x72, A: 0xff},
	{R: 0xf1, G: 0x8f, B: 0x01, A: 0xff},
	{R: 0xc7, G: 0x3e, B: 0x1d, A: 0xff},
	{R: 0x3b, G: 0x1f, B: 0x2b, A: 0xff},
}

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "scrollrouter.toml", "TOML config file")
	route := flag.String("route", "/", "Initial address")
	sections := flag.Int("sections", 8, "Number of sections on the page")
	flag.Parse()

	if err := run(*configPath, *route, *sections); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, initialURL string, count int) error {
	cfg, err := scrollrouter.LoadConfig(configPath)
	if err != nil {
		return err
	}
	scrollrouter.Init(cfg)
	defer scrollrouter.Close()
	logger := scrollrouter.GetLogger()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("scrollrouter", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		windowWidth, windowHeight, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	pg := page.New(windowHeight)
	opts := scrollrouter.DefaultOptions()
	cfg.Apply(&opts)
	opts.Viewport = pg
	opts.History = history.NewMemory(initialURL)
	router := scrollrouter.New(opts)
	defer router.Close()

	links := make([]sidenav.Link, 0, count)
	for i := range count {
		links = append(links, sidenav.Link{
			Title: fmt.Sprintf("Section %d", i+1),
			Route: fmt.Sprintf("/section-%d", i+1),
		})
	}

	// Subscribers may run on the throttle's timer goroutine; SDL calls stay
	// on the main thread, so the loop picks up changes from here.
	dirty := atomic.NewBool(true)
	nav, err := sidenav.New(router, links, sidenav.WithOnChange(func([]sidenav.Item) {
		dirty.Store(true)
	}))
	if err != nil {
		return err
	}
	defer nav.Close()

	var top float64
	for i, l := range links {
		height := float64(windowHeight/2 + (i%3)*windowHeight/3)
		router.Track(pg.AddSection(top, height), l.Route)
		top += height
	}

	if _, err := router.Mount(pg); err != nil {
		return err
	}

	input := sdlinput.New(pg, sdlinput.Options{OnResize: router.Reflow})

	var ring *sdl.Texture
	defer func() {
		if ring != nil {
			ring.Destroy()
		}
	}()

	for input.Pump(16) {
		if dirty.Swap(false) {
			label, err := nav.Label()
			if err != nil {
				logger.Error("localize progress label", "error", err)
			} else {
				window.SetTitle(label)
			}

			if ring != nil {
				ring.Destroy()
				ring = nil
			}
			if img, err := nav.Ring(ringSize); err != nil {
				logger.Error("render progress ring", "error", err)
			} else if ring, err = textureFromImage(renderer, img); err != nil {
				logger.Error("upload progress ring", "error", err)
			}
		}

		draw(renderer, pg, ring)
	}
	return nil
}

func draw(renderer *sdl.Renderer, pg *page.Page, ring *sdl.Texture) {
	renderer.SetDrawColor(0xf4, 0xf4, 0xf4, 0xff)
	renderer.Clear()

	w, _, err := renderer.GetOutputSize()
	if err != nil {
		w = windowWidth
	}
	for i, s := range pg.Sections() {
		b := s.Bounds()
		if b.Bottom() < 0 || b.Top > pg.ViewportHeight() {
			continue
		}
		c := palette[i%len(palette)]
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.FillRect(&sdl.Rect{X: 0, Y: int32(b.Top), W: w, H: int32(b.Height)})
	}

	if ring != nil {
		renderer.Copy(ring, nil, &sdl.Rect{X: w - ringSize - ringMargin, Y: ringMargin, W: ringSize, H: ringSize})
	}
	renderer.Present()
}

func textureFromImage(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	bounds := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(bounds.Dx()), int32(bounds.Dy()), 32, sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, err
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < bounds.Dy(); y++ {
		copy(pixels[y*pitch:], img.Pix[y*img.Stride:y*img.Stride+bounds.Dx()*4])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
