//go:build !linux

package evdevinput

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
)

// ErrUnsupported is returned by Open on platforms without evdev.
var ErrUnsupported = errors.New("evdevinput: input devices are only readable on linux")

// Reader is unavailable on this platform.
type Reader struct{}

// Open always fails with ErrUnsupported.
func Open(string, *page.Page, float64) (*Reader, error) {
	return nil, ErrUnsupported
}

func (*Reader) Run(context.Context) error { return ErrUnsupported }

func (*Reader) Close() error { return nil }
