// Package monochrome reduces images to dark and light pixels, so module
// matrices can be read back from rendered or scanned images.
package monochrome

import (
	"image"
	"image/color"
)

const (
	lightIndex = 0
	darkIndex  = 1
)

var palette = color.Palette{lightIndex: color.White, darkIndex: color.Black}

// Image is a thresholded image: every pixel is either dark or light.
type Image struct {
	p *image.Paletted
}

func New(r image.Rectangle) *Image {
	return &Image{
		p: image.NewPaletted(r, palette),
	}
}

func (m *Image) ColorModel() color.Model {
	return m.p.ColorModel()
}

func (m *Image) Bounds() image.Rectangle {
	return m.p.Bounds()
}

func (m *Image) At(x, y int) color.Color {
	return m.p.At(x, y)
}

// DarkAt reports whether (x, y) is dark. Pixels outside the bounds are light.
func (m *Image) DarkAt(x, y int) bool {
	return m.p.ColorIndexAt(x, y) == darkIndex
}

func (m *Image) SetDark(x, y int, isDark bool) {
	if isDark {
		m.p.SetColorIndex(x, y, darkIndex)
	} else {
		m.p.SetColorIndex(x, y, lightIndex)
	}
}
