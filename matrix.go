package quietzone

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strings"

	"go.afab.re/quietzone/monochrome"
)

// Matrix is a grid of modules, row-major.
type Matrix struct {
	Modules []Color
	Width   int
	Height  int
}

func (m Matrix) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidMatrix, m.Width, m.Height)
	}
	if m.Width > len(m.Modules)/m.Height || m.Width*m.Height != len(m.Modules) {
		return fmt.Errorf("%w: %d modules for %dx%d", ErrInvalidMatrix, len(m.Modules), m.Width, m.Height)
	}
	return nil
}

// At is the module at column x, row y.
func (m Matrix) At(x, y int) Color {
	return m.Modules[y*m.Width+x]
}

// ParseMatrix reads a matrix drawn as text, one row per line.
// '#', 'X', 'x' and '1' are dark modules, '.', '0' and ' ' are light ones.
// Empty lines are skipped. Spaces are modules, so trailing spaces are significant.
func ParseMatrix(r io.Reader) (Matrix, error) {
	var m Matrix

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		row := []rune(text)
		switch {
		case m.Height == 0:
			m.Width = len(row)
		case len(row) != m.Width:
			return Matrix{}, fmt.Errorf("%w: line %d is %d modules wide, expected %d", ErrInvalidMatrix, line, len(row), m.Width)
		}

		for col, c := range row {
			switch c {
			case '#', 'X', 'x', '1':
				m.Modules = append(m.Modules, Dark)
			case '.', '0', ' ':
				m.Modules = append(m.Modules, Light)
			default:
				return Matrix{}, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrInvalidMatrix, line, col+1, c)
			}
		}
		m.Height++
	}
	if err := scanner.Err(); err != nil {
		return Matrix{}, err
	}

	if err := m.validate(); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

// MatrixFromImage reads a matrix back from an image where every module is a
// moduleSize x moduleSize block of pixels. The image is thresholded first, so
// anti-aliased or photographed images work as long as they're aligned.
// Any partial block at the right or bottom edge is ignored.
func MatrixFromImage(img image.Image, moduleSize int) (Matrix, error) {
	if moduleSize <= 0 {
		return Matrix{}, fmt.Errorf("%w: module size %d", ErrInvalidDimensions, moduleSize)
	}

	mono := monochrome.From(img)
	b := mono.Bounds()

	m := Matrix{
		Width:  b.Dx() / moduleSize,
		Height: b.Dy() / moduleSize,
	}
	if m.Width == 0 || m.Height == 0 {
		return Matrix{}, fmt.Errorf("%w: %v image is smaller than one %dpx module", ErrInvalidMatrix, b.Size(), moduleSize)
	}
	m.Modules = make([]Color, 0, m.Width*m.Height)

	// Sample the middle of every module, edges are the most likely to be blurred.
	half := moduleSize / 2
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if mono.DarkAt(b.Min.X+col*moduleSize+half, b.Min.Y+row*moduleSize+half) {
				m.Modules = append(m.Modules, Dark)
			} else {
				m.Modules = append(m.Modules, Light)
			}
		}
	}

	return m, nil
}
