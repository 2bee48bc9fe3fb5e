package monochrome

import (
	"image"
	"image/draw"
)

// From thresholds an image into dark and light pixels with Otsu's method.
// https://en.wikipedia.org/wiki/Otsu%27s_method
func From(img image.Image) *Image {
	var gray *image.Gray
	switch i := img.(type) {
	case *Image:
		return i
	case *image.Gray:
		gray = i
	default:
		gray = image.NewGray(img.Bounds())
		draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	threshold := Threshold(gray)

	mono := New(gray.Bounds())
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mono.SetDark(x, y, gray.GrayAt(x, y).Y <= threshold)
		}
	}

	return mono
}

// Threshold is the intensity maximizing the variance between the pixels at
// or below it (dark) and those above it (light).
// A uniform image has threshold 0.
func Threshold(i *image.Gray) uint8 {
	histo := histogram(i)

	var total, totalSum int
	for y, n := range histo {
		total += n
		totalSum += y * n
	}

	var (
		best         uint8
		bestVariance float64

		darkPixels, darkSum int
	)
	for y, n := range histo {
		darkPixels += n
		darkSum += y * n

		lightPixels := total - darkPixels
		if darkPixels == 0 || lightPixels == 0 {
			continue
		}

		darkMean := float64(darkSum) / float64(darkPixels)
		lightMean := float64(totalSum-darkSum) / float64(lightPixels)

		d := darkMean - lightMean
		variance := float64(darkPixels) * float64(lightPixels) * d * d
		if variance > bestVariance {
			bestVariance = variance
			best = uint8(y)
		}
	}

	return best
}

func histogram(i *image.Gray) [256]int {
	var histo [256]int

	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			histo[i.GrayAt(x, y).Y]++
		}
	}

	return histo
}
