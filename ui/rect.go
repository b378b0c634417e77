package ui

import "github.com/veandco/go-sdl2/sdl"

// FillRect fills rect with a solid color
func FillRect(renderer *sdl.Renderer, rect sdl.Rect, r, g, b, a uint8) error {
	if err := renderer.SetDrawColor(r, g, b, a); err != nil {
		return err
	}
	return renderer.FillRect(&rect)
}
