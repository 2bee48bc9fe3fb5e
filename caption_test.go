package quietzone_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.afab.re/quietzone"
	"go.afab.re/quietzone/pixel"
)

func captionSource(t *testing.T, f pixel.Format) *pixel.Image {
	t.Helper()
	modules := make([]quietzone.Color, 10*10)
	for i := range modules {
		if i%3 == 0 {
			modules[i] = dark
		}
	}
	r := newRenderer(t, modules, 10, 10, 2, f)
	img, err := r.ModuleDimensions(10, 10).Build()
	require.NoError(t, err)
	return img
}

func TestCaption(t *testing.T) {
	for _, f := range []pixel.Format{pixel.Luma, pixel.LumaA, pixel.RGB, pixel.RGBA} {
		t.Run(f.Name(), func(t *testing.T) {
			src := captionSource(t, f)

			img, err := quietzone.Caption(src, "quiet", quietzone.CaptionOpts{Height: 20})
			require.NoError(t, err)

			require.Equal(t, src.Rect.Dx(), img.Rect.Dx())
			require.Equal(t, src.Rect.Dy()+20, img.Rect.Dy())
			require.Equal(t, src.Format, img.Format)

			// Matrix rows are untouched.
			require.Equal(t, src.Pix, img.Pix[:len(src.Pix)])

			// Some text was drawn in the caption band.
			light := quietzone.DefaultPixel(f, quietzone.Light)
			drawn := false
			for y := src.Rect.Dy(); y < img.Rect.Dy() && !drawn; y++ {
				for x := 0; x < img.Rect.Dx(); x++ {
					if img.PixelAt(x, y) != light {
						drawn = true
						break
					}
				}
			}
			require.True(t, drawn)
		})
	}
}

func TestCaptionEmpty(t *testing.T) {
	src := captionSource(t, pixel.Luma)

	img, err := quietzone.Caption(src, "", quietzone.CaptionOpts{Height: 12})
	require.NoError(t, err)
	for _, p := range img.Pix[len(src.Pix):] {
		require.Equal(t, uint8(L), p)
	}
}

func TestCaptionErrors(t *testing.T) {
	src := captionSource(t, pixel.Luma)

	_, err := quietzone.Caption(src, "x", quietzone.CaptionOpts{})
	require.ErrorIs(t, err, quietzone.ErrInvalidDimensions)

	_, err = quietzone.Caption(src, "x", quietzone.CaptionOpts{Height: 1})
	require.ErrorIs(t, err, quietzone.ErrInvalidDimensions)

	_, err = quietzone.Caption(src, strings.Repeat("wide ", 100), quietzone.CaptionOpts{Height: 30})
	require.ErrorIs(t, err, quietzone.ErrInvalidDimensions)
}
