package channels

import (
	"fmt"
	"log"

	"sdl-colors/pkg/palette"
	"sdl-colors/ui"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var labels = [3]string{"R", "G", "B"}

// Widget draws one tab per channel with a gradient meter showing its value
type Widget struct {
	layout Layout
}

// NewWidget creates a channel strip with the given layout
func NewWidget(layout Layout) *Widget {
	return &Widget{layout: layout}
}

// SetLayout updates the strip geometry, e.g. after a resize
func (w *Widget) SetLayout(layout Layout) {
	w.layout = layout
}

// TabRect returns the rectangle of the tab for channel c
func (w *Widget) TabRect(c palette.Channel) sdl.Rect {
	tabWidth := w.layout.Width / 3
	return sdl.Rect{
		X: w.layout.X + int32(c)*tabWidth,
		Y: w.layout.Y,
		W: tabWidth,
		H: w.layout.TabHeight,
	}
}

// MeterRect returns the gradient meter inside the tab for channel c
func (w *Widget) MeterRect(c palette.Channel) sdl.Rect {
	rect := w.TabRect(c)
	pad := w.layout.Padding / 2
	return sdl.Rect{
		X: rect.X + pad,
		Y: rect.Y + rect.H - 4 - pad - w.layout.MeterHeight,
		W: rect.W - 2*pad,
		H: w.layout.MeterHeight,
	}
}

// MarkerX returns the x offset of the value marker inside a meter of the given width
func MarkerX(value uint8, width int32) int32 {
	if width <= 1 {
		return 0
	}
	return int32(value) * (width - 1) / 255
}

// Draw renders the strip for the given state
func (w *Widget) Draw(renderer *sdl.Renderer, state palette.State, font *ttf.Font) error {
	pad := w.layout.Padding / 2

	for i := range labels {
		c := palette.Channel(i)
		rect := w.TabRect(c)
		isActive := c == state.Active
		rgb := c.RGB()

		// Tab background
		if isActive {
			if err := ui.DrawGradientRect(renderer, rect.X, rect.Y, rect.W, rect.H, [3]uint8{71, 85, 105}, [3]uint8{30, 41, 59}); err != nil {
				return fmt.Errorf("draw %v tab: %w", c, err)
			}
			indicator := sdl.Rect{X: rect.X + 20, Y: rect.Y + rect.H - 4, W: rect.W - 40, H: 4}
			if err := ui.FillRect(renderer, indicator, rgb[0], rgb[1], rgb[2], 255); err != nil {
				return fmt.Errorf("draw %v tab indicator: %w", c, err)
			}
		} else if err := ui.FillRect(renderer, rect, 30, 41, 59, 200); err != nil {
			return fmt.Errorf("draw %v tab: %w", c, err)
		}

		// Meter from black to the channel's full color
		meter := w.MeterRect(c)
		if err := ui.DrawHorizontalGradientRect(renderer, meter.X, meter.Y, meter.W, meter.H, [3]uint8{}, rgb); err != nil {
			return fmt.Errorf("draw %v meter: %w", c, err)
		}

		mx := meter.X + MarkerX(state.Color[c], meter.W)
		marker := sdl.Rect{X: mx - 1, Y: meter.Y - 3, W: 3, H: meter.H + 6}
		if err := ui.FillRect(renderer, marker, 255, 255, 255, 255); err != nil {
			return fmt.Errorf("draw %v marker: %w", c, err)
		}

		if font != nil {
			color := sdl.Color{R: 148, G: 163, B: 184, A: 255}
			if isActive {
				color = sdl.Color{R: 255, G: 255, B: 255, A: 255}
			}
			text := fmt.Sprintf("%s %3d", labels[i], state.Color[c])
			if err := ui.RenderText(renderer, text, rect.X+pad, rect.Y+pad, color, font); err != nil {
				log.Printf("Warning: failed to draw %v label: %v", c, err)
			}
		}
	}

	return nil
}
