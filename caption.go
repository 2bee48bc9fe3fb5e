package quietzone

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"go.afab.re/quietzone/pixel"
)

type CaptionOpts struct {
	// Height of the band below the image the text is drawn in, in pixels.
	Height int
	// DPI defaults to 72, making font sizes equal to pixels.
	DPI int
	// Font defaults to Go Regular.
	Font *opentype.Font
}

// Caption returns a copy of img with text drawn below it, centered, in the biggest
// font that fits opts.Height.
func Caption(img *pixel.Image, text string, opts CaptionOpts) (*pixel.Image, error) {
	if opts.Height <= 0 {
		return nil, fmt.Errorf("%w: caption height %d", ErrInvalidDimensions, opts.Height)
	}
	if opts.DPI == 0 {
		opts.DPI = 72
	}
	if opts.Font == nil {
		ft, err := opentype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
		opts.Font = ft
	}

	face, err := face(opts)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	w, h := img.Rect.Dx(), img.Rect.Dy()

	tBounds, _ := font.BoundString(face, text)
	tMin, tMax := tBounds.Min.X.Floor(), tBounds.Max.X.Ceil()
	if tMax-tMin > w {
		return nil, fmt.Errorf("%w: expected caption up to %dpx wide but got %dpx", ErrInvalidDimensions, w, tMax-tMin)
	}

	if err := pixel.CheckSize(img.Format, w, h+opts.Height); err != nil {
		return nil, err
	}
	dst := pixel.NewImage(img.Format, w, h+opts.Height)
	dst.Fill(DefaultPixel(img.Format, Light))

	// Same format, so rows can be copied as is.
	rowLen := w * img.Format.Channels()
	for y := 0; y < h; y++ {
		src := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(dst.Pix[dst.PixOffset(0, y):], img.Pix[src:src+rowLen])
	}

	// Center the font's line box, not the specific text, so captions
	// with and without descenders share a baseline.
	// If the margin isn't a multiple of two, give the extra pixel to the bottom.
	m := face.Metrics()
	yMargin := opts.Height - (m.Ascent.Ceil() + m.Descent.Ceil())
	baseline := h + yMargin/2 + m.Ascent.Ceil()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P((w-(tMax-tMin))/2-tMin, baseline),
	}
	d.DrawString(text)

	return dst, nil
}

// Find the biggest face whose lines fit in opts.Height.
func face(opts CaptionOpts) (font.Face, error) {
	var best font.Face

	for size := float64(1); ; size++ {
		face, err := opentype.NewFace(opts.Font, &opentype.FaceOptions{
			Size:    size,
			DPI:     float64(opts.DPI),
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, err
		}

		if face.Metrics().Height.Ceil() > opts.Height {
			face.Close()
			if best == nil {
				return nil, fmt.Errorf("%w: caption height %dpx is too small for any font size", ErrInvalidDimensions, opts.Height)
			}
			return best, nil
		}

		if best != nil {
			best.Close()
		}
		best = face
	}
}
