package pixel

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrInvalidDimensions is returned for an empty or unrepresentable raster size.
var ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

// Canvas is the surface a renderer paints dark modules on.
// It starts out filled with the light pixel, and is handed over as an Image by Finalize.
type Canvas struct {
	dark Pixel
	img  *Image
}

// NewCanvas allocates a width x height canvas filled with light.
func NewCanvas(f Format, width, height int, dark, light Pixel) (*Canvas, error) {
	if err := CheckSize(f, width, height); err != nil {
		return nil, err
	}

	img := NewImage(f, width, height)
	img.Fill(light)

	return &Canvas{
		dark: dark,
		img:  img,
	}, nil
}

// CheckSize reports whether a width x height raster of f can be allocated.
func CheckSize(f Format, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/f.Channels()/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return nil
}

// PaintDark sets the pixel at (x, y) to the dark pixel.
func (c *Canvas) PaintDark(x, y int) {
	c.Paint(x, y, c.dark)
}

// Paint sets the pixel at (x, y) to p.
// Painting outside the canvas, or after Finalize, panics.
func (c *Canvas) Paint(x, y int, p Pixel) {
	if c.img == nil {
		panic("pixel: paint on finalized canvas")
	}
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		panic(fmt.Sprintf("pixel: paint at (%d,%d) outside %v", x, y, c.img.Rect))
	}
	c.img.SetPixel(x, y, p)
}

// Finalize hands over the painted image. The canvas can't be used afterwards.
func (c *Canvas) Finalize() *Image {
	if c.img == nil {
		panic("pixel: canvas finalized twice")
	}
	img := c.img
	c.img = nil
	return img
}
