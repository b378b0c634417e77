package picker

import (
	"fmt"
	"log"

	"sdl-colors/pkg/input"
	"sdl-colors/pkg/palette"
	"sdl-colors/ui"
	"sdl-colors/widgets/channels"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// NewPickerScreen creates the screen with a black background and red active
func NewPickerScreen(opts Options) *PickerScreen {
	step := opts.Step
	if step == 0 {
		step = palette.DefaultStep
	}

	return &PickerScreen{
		state:          palette.NewState(),
		step:           step,
		baseTitle:      opts.Title,
		bindings:       input.DefaultBindings(),
		fonts:          opts.Fonts,
		channelsWidget: channels.NewWidget(channels.DefaultLayout(opts.Width, opts.Height)),
		dirty:          true,
	}
}

// State returns a copy of the current color and active channel
func (ps *PickerScreen) State() palette.State {
	return ps.state
}

// Dirty reports whether the screen needs to be redrawn
func (ps *PickerScreen) Dirty() bool {
	return ps.dirty
}

// Title returns the window title for the current color
func (ps *PickerScreen) Title() string {
	if ps.baseTitle == "" {
		return ps.state.Hex()
	}
	return fmt.Sprintf("%s - %s", ps.baseTitle, ps.state.Hex())
}

// HandleEvent applies a polled event to the state.
// It returns false once the loop should stop.
func (ps *PickerScreen) HandleEvent(event sdl.Event) bool {
	if we, ok := event.(*sdl.WindowEvent); ok {
		ps.handleWindowEvent(we)
		return true
	}

	action := ps.bindings.Translate(event)
	return ps.Apply(action)
}

// Apply performs a single action. It returns false for Quit.
func (ps *PickerScreen) Apply(action input.Action) bool {
	switch action {
	case input.None:
		return true
	case input.Quit:
		log.Printf("Quit requested with color %s", ps.state.Hex())
		return false
	case input.PrevChannel:
		ps.state.PrevChannel()
	case input.NextChannel:
		ps.state.NextChannel()
	case input.Increase:
		ps.state.Increase(ps.step)
	case input.Decrease:
		ps.state.Decrease(ps.step)
	case input.Reset:
		log.Printf("Color reset from %s", ps.state.Hex())
		ps.state.Reset()
	}

	ps.dirty = true
	return true
}

func (ps *PickerScreen) handleWindowEvent(we *sdl.WindowEvent) {
	switch we.Event {
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		ps.channelsWidget.SetLayout(channels.DefaultLayout(we.Data1, we.Data2))
		ps.dirty = true
	case sdl.WINDOWEVENT_EXPOSED, sdl.WINDOWEVENT_RESTORED:
		ps.dirty = true
	}
}

// Draw renders the complete frame and presents it
func (ps *PickerScreen) Draw(renderer *sdl.Renderer, w, h int32) error {
	c := ps.state.Color

	// Background
	if err := renderer.SetDrawColor(c[0], c[1], c[2], 255); err != nil {
		return fmt.Errorf("set background color: %w", err)
	}
	if err := renderer.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	if err := ps.drawIndicator(renderer); err != nil {
		return err
	}

	var small *ttf.Font
	if ps.fonts != nil {
		small = ps.fonts.Small
	}
	if err := ps.channelsWidget.Draw(renderer, ps.state, small); err != nil {
		return err
	}

	if ps.fonts != nil && ps.fonts.Label != nil {
		hex := ps.state.Hex()
		x := w - swatchMargin - ui.TextWidth(hex, ps.fonts.Label)
		if err := ui.RenderText(renderer, hex, x, swatchMargin, ui.Contrast(c), ps.fonts.Label); err != nil {
			log.Printf("Warning: failed to draw label: %v", err)
		}
	}

	renderer.Present()
	ps.dirty = false
	return nil
}

// drawIndicator draws the swatch for the active channel in the top-left corner
func (ps *PickerScreen) drawIndicator(renderer *sdl.Renderer) error {
	outer := sdl.Rect{X: swatchMargin, Y: swatchMargin, W: swatchSize, H: swatchSize}
	inner := sdl.Rect{
		X: outer.X + swatchBorder,
		Y: outer.Y + swatchBorder,
		W: outer.W - 2*swatchBorder,
		H: outer.H - 2*swatchBorder,
	}

	if err := ui.FillRect(renderer, outer, 255, 255, 255, 255); err != nil {
		return fmt.Errorf("draw indicator border: %w", err)
	}

	rgb := ps.state.Active.RGB()
	if err := ui.FillRect(renderer, inner, rgb[0], rgb[1], rgb[2], 255); err != nil {
		return fmt.Errorf("draw indicator: %w", err)
	}
	return nil
}

// Close cleans up resources
func (ps *PickerScreen) Close() {
	if ps.fonts != nil {
		ps.fonts.Close()
		ps.fonts = nil
	}
}
