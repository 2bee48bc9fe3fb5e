package quietzone

import (
	"fmt"
	"math"

	"go.afab.re/quietzone/pixel"
)

type colorKind uint8

const (
	light colorKind = iota
	dark
	custom
)

// Color is the state of a single module.
// The zero value is Light.
type Color struct {
	kind colorKind
	y    uint8
}

var (
	Light = Color{kind: light}
	Dark  = Color{kind: dark}
)

// Custom is a module with an explicit intensity, 0 being darkest.
func Custom(y uint8) Color {
	return Color{kind: custom, y: y}
}

func (c Color) IsDark() bool {
	return c.kind == dark
}

func (c Color) IsLight() bool {
	return c.kind == light
}

// Intensity returns the intensity of a Custom module.
func (c Color) Intensity() (uint8, bool) {
	return c.y, c.kind == custom
}

// Select picks darkValue or lightValue for Dark and Light modules.
// Custom modules pass their own intensity through unchanged.
func (c Color) Select(darkValue, lightValue uint8) uint8 {
	switch c.kind {
	case dark:
		return darkValue
	case custom:
		return c.y
	default:
		return lightValue
	}
}

func (c Color) String() string {
	switch c.kind {
	case dark:
		return "dark"
	case custom:
		return fmt.Sprintf("custom(%d)", c.y)
	default:
		return "light"
	}
}

// DefaultPixel is the pixel a module of color c is drawn with in format f:
// black for Dark, white for Light.
func DefaultPixel(f pixel.Format, c Color) pixel.Pixel {
	return f.Gray(c.Select(0, math.MaxUint8))
}
