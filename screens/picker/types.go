package picker

import (
	"sdl-colors/pkg/input"
	"sdl-colors/pkg/palette"
	"sdl-colors/ui"
	"sdl-colors/widgets/channels"
)

const (
	swatchSize   int32 = 48
	swatchMargin int32 = 16
	swatchBorder int32 = 2
)

// Options configures a new PickerScreen
type Options struct {
	Title  string
	Step   uint8
	Fonts  *ui.Fonts
	Width  int32
	Height int32
}

// PickerScreen edits the background color one channel at a time
type PickerScreen struct {
	state palette.State
	step  uint8

	baseTitle string

	// Input mapping and held-key filtering
	bindings *input.Bindings

	// UI components
	fonts          *ui.Fonts
	channelsWidget *channels.Widget

	// Set whenever the state changes or the window needs repainting
	dirty bool
}
