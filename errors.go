package quietzone

import (
	"errors"

	"go.afab.re/quietzone/pixel"
)

var (
	// ErrInvalidMatrix indicates the modules don't form a non-empty Width x Height grid.
	ErrInvalidMatrix = errors.New("quietzone: invalid module matrix")

	// ErrInvalidDimensions indicates a margin, scale, sizing target or output size
	// that can't be rendered.
	ErrInvalidDimensions = pixel.ErrInvalidDimensions

	// ErrNilFormat indicates a Renderer was created without a pixel format.
	ErrNilFormat = errors.New("quietzone: nil pixel format")
)
