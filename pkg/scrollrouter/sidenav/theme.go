package sidenav

import (
	"fmt"
	"image/color"
)

// Theme defines the colors of the progress ring.
type Theme struct {
	AccentColor color.RGBA // Completed part of the ring
	TrackColor  color.RGBA // Remaining part of the ring
}

// DefaultTheme returns a teal accent on a light grey track.
func DefaultTheme() Theme {
	return Theme{
		AccentColor: HexToColor(0x008080),
		TrackColor:  HexToColor(0xD0D0D0),
	}
}

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

func svgColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
