package sidenav

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	ringRadius = 40
	ringStroke = 10
)

// RingSVG returns an SVG document of a progress ring filled to fraction,
// starting at twelve o'clock and running clockwise.
func RingSVG(fraction float64, theme Theme) string {
	fraction = math.Min(math.Max(fraction, 0), 1)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100" width="100" height="100">`)
	fmt.Fprintf(&b, `<circle cx="50" cy="50" r="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
		ringRadius, svgColor(theme.TrackColor), ringStroke)

	switch {
	case fraction >= 1:
		fmt.Fprintf(&b, `<circle cx="50" cy="50" r="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
			ringRadius, svgColor(theme.AccentColor), ringStroke)
	case fraction > 0:
		angle := fraction * 2 * math.Pi
		x := 50 + ringRadius*math.Sin(angle)
		y := 50 - ringRadius*math.Cos(angle)
		large := 0
		if fraction > 0.5 {
			large = 1
		}
		fmt.Fprintf(&b, `<path d="M 50 %d A %d %d 0 %d 1 %.3f %.3f" fill="none" stroke="%s" stroke-width="%d"/>`,
			50-ringRadius, ringRadius, ringRadius, large, x, y, svgColor(theme.AccentColor), ringStroke)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// RenderRing rasterizes the progress ring into a size x size image.
func RenderRing(fraction float64, size int, theme Theme) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render ring: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(RingSVG(fraction, theme)))
	if err != nil {
		return nil, fmt.Errorf("render ring: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
