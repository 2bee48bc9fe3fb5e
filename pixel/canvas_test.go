package pixel_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"go.afab.re/quietzone/pixel"
)

func TestCanvas(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.Name(), func(t *testing.T) {
			dark, light := f.Gray(0), f.Gray(0xff)

			c, err := pixel.NewCanvas(f, 3, 2, dark, light)
			require.NoError(t, err)

			c.PaintDark(2, 1)
			c.Paint(0, 0, f.Gray(0x10))

			img := c.Finalize()
			require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
			require.Len(t, img.Pix, 3*2*f.Channels())

			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					want := light
					switch {
					case x == 2 && y == 1:
						want = dark
					case x == 0 && y == 0:
						want = f.Gray(0x10)
					}
					require.Equal(t, want, img.PixelAt(x, y), "pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestCanvasInvalidDimensions(t *testing.T) {
	for _, size := range []image.Point{{0, 1}, {1, 0}, {-1, 5}, {0, 0}} {
		t.Run(size.String(), func(t *testing.T) {
			_, err := pixel.NewCanvas(pixel.Luma, size.X, size.Y, pixel.Pixel{}, pixel.Pixel{0xff})
			require.ErrorIs(t, err, pixel.ErrInvalidDimensions)
		})
	}

	err := pixel.CheckSize(pixel.RGBA, math.MaxInt/2, 3)
	require.ErrorIs(t, err, pixel.ErrInvalidDimensions)
}

func TestCanvasOutOfBounds(t *testing.T) {
	c, err := pixel.NewCanvas(pixel.Luma, 2, 2, pixel.Pixel{}, pixel.Pixel{0xff})
	require.NoError(t, err)

	// Would be in range of Pix, but on the wrong row.
	require.Panics(t, func() { c.PaintDark(2, 0) })
	require.Panics(t, func() { c.PaintDark(-1, 1) })
	require.Panics(t, func() { c.PaintDark(0, 2) })
}

func TestCanvasFinalized(t *testing.T) {
	c, err := pixel.NewCanvas(pixel.Luma, 1, 1, pixel.Pixel{}, pixel.Pixel{0xff})
	require.NoError(t, err)

	img := c.Finalize()
	require.Equal(t, []uint8{0xff}, img.Pix)

	require.Panics(t, func() { c.PaintDark(0, 0) })
	require.Panics(t, func() { c.Finalize() })
	require.Equal(t, []uint8{0xff}, img.Pix)
}

func TestImage(t *testing.T) {
	for _, f := range allFormats {
		t.Run(f.Name(), func(t *testing.T) {
			img := pixel.NewImage(f, 4, 3)
			require.Equal(t, f.Model(), img.ColorModel())

			img.Fill(f.Gray(0xff))
			img.Set(1, 2, color.Black)
			require.Equal(t, f.Model().Convert(color.Black), img.At(1, 2))
			require.Equal(t, f.Model().Convert(color.White), img.At(3, 0))

			// Out of bounds is ignored.
			img.Set(4, 0, color.Black)
			img.Set(0, -1, color.Black)
			require.Equal(t, color.Transparent, img.At(4, 0))
			require.Equal(t, f.Gray(0xff), img.PixelAt(0, 1))
		})
	}
}
