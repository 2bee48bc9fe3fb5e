// Package quietzone rasterizes a matrix of dark and light modules, such as the
// modules of a 2D barcode, into an image with a quiet zone around it.
package quietzone

import (
	"fmt"
	"log/slog"

	"go.afab.re/quietzone/pixel"
)

type sizing uint8

const (
	fixedSize sizing = iota
	minSize
	maxSize
)

func (s sizing) String() string {
	switch s {
	case minSize:
		return "min"
	case maxSize:
		return "max"
	default:
		return "module"
	}
}

// policy decides how many pixels each module takes on each axis.
type policy struct {
	kind sizing
	w, h int
}

// Renderer renders a Matrix.
//
// The sizing methods (ModuleDimensions, MinDimensions, MaxDimensions) are
// mutually exclusive: the last one called wins. Without any of them, modules
// are 1x1 pixels.
type Renderer struct {
	m      Matrix
	margin int
	format pixel.Format
	size   policy
}

// New creates a Renderer for m, surrounded by margin light modules on every side.
func New(m Matrix, margin int, f pixel.Format) (*Renderer, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNilFormat
	}
	if margin < 0 {
		return nil, fmt.Errorf("%w: negative margin %d", ErrInvalidDimensions, margin)
	}
	// The logical size, margins included, must fit in a single axis.
	if margin > (maxDimension-max(m.Width, m.Height))/2 {
		return nil, fmt.Errorf("%w: margin %d too large for %dx%d modules", ErrInvalidDimensions, margin, m.Width, m.Height)
	}

	return &Renderer{
		m:      m,
		margin: margin,
		format: f,
		size:   policy{kind: fixedSize, w: 1, h: 1},
	}, nil
}

// ModuleDimensions makes every module exactly w x h pixels.
func (r *Renderer) ModuleDimensions(w, h int) *Renderer {
	r.size = policy{kind: fixedSize, w: w, h: h}
	return r
}

// MinDimensions picks the smallest module size that makes the image at least w x h pixels.
func (r *Renderer) MinDimensions(w, h int) *Renderer {
	r.size = policy{kind: minSize, w: w, h: h}
	return r
}

// MaxDimensions picks the largest module size that keeps the image within w x h pixels.
// Modules are never smaller than one pixel, so the image can be bigger than w x h if the
// matrix itself doesn't fit.
func (r *Renderer) MaxDimensions(w, h int) *Renderer {
	r.size = policy{kind: maxSize, w: w, h: h}
	return r
}

// logical is the size of the matrix and margin, in modules.
func (r *Renderer) logical() (w, h int) {
	return r.m.Width + 2*r.margin, r.m.Height + 2*r.margin
}

// Scale resolves the number of pixels per module on each axis.
func (r *Renderer) Scale() (w, h int, err error) {
	if r.size.w <= 0 || r.size.h <= 0 {
		return 0, 0, fmt.Errorf("%w: %s dimensions %dx%d", ErrInvalidDimensions, r.size.kind, r.size.w, r.size.h)
	}

	lw, lh := r.logical()
	switch r.size.kind {
	case minSize:
		return minScale(lw, r.size.w), minScale(lh, r.size.h), nil
	case maxSize:
		return maxScale(lw, r.size.w), maxScale(lh, r.size.h), nil
	default:
		return r.size.w, r.size.h, nil
	}
}

// Smallest scale such that logical*scale >= target.
func minScale(logical, target int) int {
	return max(1, (target-1)/logical+1)
}

// Largest scale such that logical*scale <= target, but at least 1.
func maxScale(logical, target int) int {
	return max(1, target/logical)
}

// Size is the size of the rendered image, in pixels.
func (r *Renderer) Size() (w, h int, err error) {
	sw, sh, err := r.Scale()
	if err != nil {
		return 0, 0, err
	}

	lw, lh := r.logical()
	if lw > maxDimension/sw || lh > maxDimension/sh {
		return 0, 0, fmt.Errorf("%w: %dx%d modules at %dx%d pixels each", ErrInvalidDimensions, lw, lh, sw, sh)
	}
	w, h = lw*sw, lh*sh

	if err := pixel.CheckSize(r.format, w, h); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// Keeps every pixel coordinate representable as an int32.
const maxDimension = 1<<31 - 1

// at is the color of the logical cell at (col, row), margin included.
func (r *Renderer) at(col, row int) Color {
	x, y := col-r.margin, row-r.margin
	if x < 0 || y < 0 || x >= r.m.Width || y >= r.m.Height {
		return Light
	}
	return r.m.At(x, y)
}

// Build renders the matrix. Building the same Renderer again gives an identical image.
func (r *Renderer) Build() (*pixel.Image, error) {
	sw, sh, err := r.Scale()
	if err != nil {
		return nil, err
	}
	w, h, err := r.Size()
	if err != nil {
		return nil, err
	}

	canvas, err := pixel.NewCanvas(r.format, w, h, DefaultPixel(r.format, Dark), DefaultPixel(r.format, Light))
	if err != nil {
		return nil, err
	}

	lw, lh := r.logical()
	for row := 0; row < lh; row++ {
		for col := 0; col < lw; col++ {
			c := r.at(col, row)
			switch {
			case c.IsLight():
				continue
			case c.IsDark():
				block(col*sw, row*sh, sw, sh, canvas.PaintDark)
			default:
				p := DefaultPixel(r.format, c)
				block(col*sw, row*sh, sw, sh, func(x, y int) {
					canvas.Paint(x, y, p)
				})
			}
		}
	}

	Logger().Debug("rendered matrix",
		slog.String("format", r.format.Name()),
		slog.Int("modules_w", r.m.Width),
		slog.Int("modules_h", r.m.Height),
		slog.Int("margin", r.margin),
		slog.String("sizing", r.size.kind.String()),
		slog.Int("scale_w", sw),
		slog.Int("scale_h", sh),
		slog.Int("width", w),
		slog.Int("height", h),
	)

	return canvas.Finalize(), nil
}

// block calls paint for every pixel of the w x h block with its top left corner at (x0, y0).
func block(x0, y0, w, h int, paint func(x, y int)) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			paint(x, y)
		}
	}
}
