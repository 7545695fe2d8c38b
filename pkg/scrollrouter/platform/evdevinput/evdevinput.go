//go:build linux

// Package evdevinput scrolls a page.Page from the wheel of a Linux input
// device, for kiosk builds that read /dev/input directly instead of going
// through a window system.
package evdevinput

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/constants"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/internal"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
)

// hiResPerNotch is the number of REL_WHEEL_HI_RES units in one wheel notch.
const hiResPerNotch = 120

// Reader forwards wheel events from one input device to a page.
type Reader struct {
	dev    *evdev.InputDevice
	page   *page.Page
	step   float64
	logger *slog.Logger

	hiRes     bool
	closeOnce sync.Once
}

// Open opens the input device at path. A step of zero uses
// constants.DefaultScrollStep per notch.
func Open(path string, p *page.Page, step float64) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}
	if step <= 0 {
		step = constants.DefaultScrollStep
	}

	logger := internal.GetLogger()
	if name, err := dev.Name(); err == nil {
		logger.Debug("reading wheel events", "device", name, "path", path)
	}

	return &Reader{dev: dev, page: p, step: step, logger: logger}, nil
}

// Run reads events until ctx is cancelled or the device fails.
func (r *Reader) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = r.Close() })
	defer stop()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read input event: %w", err)
		}
		r.apply(ev)
	}
}

func (r *Reader) apply(ev *evdev.InputEvent) {
	if ev.Type != evdev.EV_REL {
		return
	}

	switch ev.Code {
	case evdev.REL_WHEEL_HI_RES:
		// Devices that report high resolution also report whole notches;
		// use only the finer stream once it shows up.
		r.hiRes = true
		r.page.ScrollBy(-float64(ev.Value) / hiResPerNotch * r.step)
	case evdev.REL_WHEEL:
		if !r.hiRes {
			r.page.ScrollBy(-float64(ev.Value) * r.step)
		}
	}
}

// Close releases the device. It is safe to call more than once.
func (r *Reader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.dev.Close()
	})
	return err
}
