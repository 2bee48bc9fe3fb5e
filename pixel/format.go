// Package pixel holds the raster side of rendering: channel layouts, the
// mutable canvas a renderer paints on, and the finished image.
package pixel

import (
	"image/color"
	"math"
	"sort"

	"golang.org/x/exp/maps"
)

// Pixel is one pixel value. Only the first Channels() bytes of the owning
// Format are meaningful.
type Pixel [4]uint8

// Format maps intensities and colors to the bytes of one channel layout.
type Format interface {
	// Name is the short name of the layout, e.g. "rgba".
	Name() string

	// Channels is the number of bytes per pixel.
	Channels() int

	// Gray builds the pixel for intensity y, with alpha (if any) fully opaque.
	Gray(y uint8) Pixel

	// Convert converts an arbitrary color to a pixel of this layout.
	Convert(c color.Color) Pixel

	// Color converts a pixel of this layout back to a color.Color.
	Color(p Pixel) color.Color

	// Model is the color model of images using this layout.
	Model() color.Model
}

// The supported layouts.
var (
	Luma  Format = luma{}
	LumaA Format = lumaA{}
	RGB   Format = rgb{}
	RGBA  Format = rgba{}
)

var formats = map[string]Format{
	Luma.Name():  Luma,
	LumaA.Name(): LumaA,
	RGB.Name():   RGB,
	RGBA.Name():  RGBA,
}

// Lookup finds a Format by name.
func Lookup(name string) (Format, bool) {
	f, ok := formats[name]
	return f, ok
}

// Formats lists the names of the supported layouts, sorted.
func Formats() []string {
	names := maps.Keys(formats)
	sort.Strings(names)
	return names
}

const opaque = math.MaxUint8

type luma struct{}

func (luma) Name() string  { return "luma" }
func (luma) Channels() int { return 1 }

func (luma) Gray(y uint8) Pixel {
	return Pixel{y}
}

func (luma) Convert(c color.Color) Pixel {
	return Pixel{color.GrayModel.Convert(c).(color.Gray).Y}
}

func (luma) Color(p Pixel) color.Color {
	return color.Gray{Y: p[0]}
}

func (luma) Model() color.Model {
	return color.GrayModel
}

// lumaA is gray with straight (non premultiplied) alpha.
type lumaA struct{}

func (lumaA) Name() string  { return "lumaa" }
func (lumaA) Channels() int { return 2 }

func (lumaA) Gray(y uint8) Pixel {
	return Pixel{y, opaque}
}

func (lumaA) Convert(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	y := color.GrayModel.Convert(color.NRGBA{R: n.R, G: n.G, B: n.B, A: opaque}).(color.Gray).Y
	return Pixel{y, n.A}
}

func (lumaA) Color(p Pixel) color.Color {
	return color.NRGBA{R: p[0], G: p[0], B: p[0], A: p[1]}
}

func (lumaA) Model() color.Model {
	return color.NRGBAModel
}

// rgb has no alpha channel, so it always reads back opaque.
type rgb struct{}

func (rgb) Name() string  { return "rgb" }
func (rgb) Channels() int { return 3 }

func (rgb) Gray(y uint8) Pixel {
	return Pixel{y, y, y}
}

func (rgb) Convert(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B}
}

func (rgb) Color(p Pixel) color.Color {
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: opaque}
}

func (rgb) Model() color.Model {
	return color.RGBAModel
}

type rgba struct{}

func (rgba) Name() string  { return "rgba" }
func (rgba) Channels() int { return 4 }

func (rgba) Gray(y uint8) Pixel {
	return Pixel{y, y, y, opaque}
}

func (rgba) Convert(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.R, n.G, n.B, n.A}
}

func (rgba) Color(p Pixel) color.Color {
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (rgba) Model() color.Model {
	return color.NRGBAModel
}
