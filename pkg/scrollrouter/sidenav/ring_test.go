package sidenav

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func opaquePixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRingSVG(t *testing.T) {
	theme := DefaultTheme()

	empty := RingSVG(0, theme)
	require.Equal(t, 1, strings.Count(empty, "<circle"))
	require.NotContains(t, empty, "<path")

	half := RingSVG(0.5, theme)
	require.Contains(t, half, "<path")
	require.Contains(t, half, "#008080")
	require.Contains(t, half, "A 40 40 0 0 1 50.000 90.000")

	most := RingSVG(0.75, theme)
	require.Contains(t, most, "A 40 40 0 1 1 10.000 50.000")

	full := RingSVG(2, theme)
	require.Equal(t, 2, strings.Count(full, "<circle"))
}

func TestRenderRing(t *testing.T) {
	theme := DefaultTheme()

	img, err := RenderRing(0.5, 100, theme)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
	require.Positive(t, opaquePixels(img))

	// Center of the ring is empty.
	require.Zero(t, img.RGBAAt(50, 50).A)

	// The right half is completed, the left half is still track.
	right := img.RGBAAt(90, 50)
	require.InDelta(t, theme.AccentColor.G, right.G, 8)
	require.InDelta(t, theme.AccentColor.R, right.R, 8)
	left := img.RGBAAt(10, 50)
	require.InDelta(t, theme.TrackColor.R, left.R, 8)

	_, err = RenderRing(0.5, 0, theme)
	require.Error(t, err)
}

func TestHexToColor(t *testing.T) {
	c := HexToColor(0x123456)
	require.Equal(t, uint8(0x12), c.R)
	require.Equal(t, uint8(0x34), c.G)
	require.Equal(t, uint8(0x56), c.B)
	require.Equal(t, uint8(0xFF), c.A)
	require.Equal(t, "#123456", svgColor(c))
}
