package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a raster in one of the Format layouts.
// Pix holds Format.Channels() bytes per pixel, row-major, top to bottom, left to right.
type Image struct {
	// Pix are the image pixels.
	Pix []uint8

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Rect is the image bounding box.
	Rect image.Rectangle

	// Format is the channel layout of Pix.
	Format Format
}

// Make sure we can be drawn on (font rendering) and encoded (png).
var _ draw.Image = (*Image)(nil)

// NewImage allocates a zeroed w x h image. It doesn't validate the size, use NewCanvas for that.
func NewImage(f Format, w, h int) *Image {
	stride := w * f.Channels()
	return &Image{
		Pix:    make([]uint8, stride*h),
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
		Format: f,
	}
}

func (m *Image) ColorModel() color.Model {
	return m.Format.Model()
}

func (m *Image) Bounds() image.Rectangle {
	return m.Rect
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x-m.Rect.Min.X)*m.Format.Channels()
}

func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return color.Transparent
	}
	return m.Format.Color(m.PixelAt(x, y))
}

// PixelAt returns the raw pixel at (x, y), which must be in bounds.
func (m *Image) PixelAt(x, y int) Pixel {
	var p Pixel
	i := m.PixOffset(x, y)
	copy(p[:], m.Pix[i:i+m.Format.Channels()])
	return p
}

func (m *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return
	}
	m.SetPixel(x, y, m.Format.Convert(c))
}

// SetPixel writes the raw pixel at (x, y), which must be in bounds.
func (m *Image) SetPixel(x, y int, p Pixel) {
	i := m.PixOffset(x, y)
	copy(m.Pix[i:i+m.Format.Channels()], p[:])
}

// Fill the image with a single pixel value.
func (m *Image) Fill(p Pixel) {
	n := m.Format.Channels()
	for i := 0; i+n <= len(m.Pix); i += n {
		copy(m.Pix[i:i+n], p[:n])
	}
}
