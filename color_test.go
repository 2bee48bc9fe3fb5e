package quietzone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.afab.re/quietzone"
	"go.afab.re/quietzone/pixel"
)

func TestColorSelect(t *testing.T) {
	require.Equal(t, uint8(10), quietzone.Dark.Select(10, 20))
	require.Equal(t, uint8(20), quietzone.Light.Select(10, 20))
	require.Equal(t, uint8(42), quietzone.Custom(42).Select(10, 20))

	var zero quietzone.Color
	require.True(t, zero.IsLight())
	require.Equal(t, quietzone.Light, zero)
}

func TestColorIntensity(t *testing.T) {
	y, ok := quietzone.Custom(7).Intensity()
	require.True(t, ok)
	require.Equal(t, uint8(7), y)

	_, ok = quietzone.Dark.Intensity()
	require.False(t, ok)
}

func TestDefaultPixel(t *testing.T) {
	require.Equal(t, pixel.Pixel{0, 255}, quietzone.DefaultPixel(pixel.LumaA, quietzone.Dark))
	require.Equal(t, pixel.Pixel{255, 255, 255}, quietzone.DefaultPixel(pixel.RGB, quietzone.Light))
	require.Equal(t, pixel.Pixel{9, 9, 9, 255}, quietzone.DefaultPixel(pixel.RGBA, quietzone.Custom(9)))
}
