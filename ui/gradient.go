package ui

import "github.com/veandco/go-sdl2/sdl"

// DrawGradientRect draws a vertical gradient rectangle
func DrawGradientRect(renderer *sdl.Renderer, x, y, width, height int32, startColor, endColor [3]uint8) error {
	for i := int32(0); i < height; i++ {
		r, g, b := Lerp(startColor, endColor, i, height)
		if err := renderer.SetDrawColor(r, g, b, 255); err != nil {
			return err
		}
		if err := renderer.DrawLine(x, y+i, x+width-1, y+i); err != nil {
			return err
		}
	}
	return nil
}

// DrawHorizontalGradientRect draws a left-to-right gradient rectangle
func DrawHorizontalGradientRect(renderer *sdl.Renderer, x, y, width, height int32, startColor, endColor [3]uint8) error {
	for i := int32(0); i < width; i++ {
		r, g, b := Lerp(startColor, endColor, i, width)
		if err := renderer.SetDrawColor(r, g, b, 255); err != nil {
			return err
		}
		if err := renderer.DrawLine(x+i, y, x+i, y+height-1); err != nil {
			return err
		}
	}
	return nil
}

// Lerp returns the color at step i of n between start and end, inclusive at both ends
func Lerp(start, end [3]uint8, i, n int32) (uint8, uint8, uint8) {
	if n <= 1 {
		return start[0], start[1], start[2]
	}
	t := float64(i) / float64(n-1)

	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
	}
	return mix(start[0], end[0]), mix(start[1], end[1]), mix(start[2], end[2])
}

// Contrast returns black or white, whichever reads better on top of c
func Contrast(c [3]uint8) sdl.Color {
	luma := 0.299*float64(c[0]) + 0.587*float64(c[1]) + 0.114*float64(c[2])
	if luma > 140 {
		return sdl.Color{R: 0, G: 0, B: 0, A: 255}
	}
	return sdl.Color{R: 255, G: 255, B: 255, A: 255}
}
