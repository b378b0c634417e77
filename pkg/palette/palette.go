package palette

import "fmt"

// DefaultStep is how much a single Up/Down press moves the active channel
const DefaultStep uint8 = 5

// Channel identifies one byte of the RGB triple
type Channel int

const (
	Red   Channel = 0
	Green Channel = 1
	Blue  Channel = 2

	channelCount = 3
)

// String returns the lowercase channel name
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// RGB returns the pure color of the channel at full intensity
func (c Channel) RGB() [3]uint8 {
	var rgb [3]uint8
	if c >= Red && c <= Blue {
		rgb[c] = 255
	}
	return rgb
}

// State is the editable background color plus the channel currently being edited
type State struct {
	Color  [3]uint8
	Active Channel
}

// NewState returns black with the red channel active
func NewState() State {
	return State{Active: Red}
}

// NextChannel moves the active channel right, wrapping blue back to red
func (s *State) NextChannel() {
	s.Active = Channel((int(s.Active) + 1) % channelCount)
}

// PrevChannel moves the active channel left, wrapping red around to blue
func (s *State) PrevChannel() {
	s.Active = Channel((int(s.Active) + channelCount - 1) % channelCount)
}

// Increase raises the active channel by step, saturating at 255
func (s *State) Increase(step uint8) {
	v := s.Color[s.Active]
	if v > 255-step {
		s.Color[s.Active] = 255
		return
	}
	s.Color[s.Active] = v + step
}

// Decrease lowers the active channel by step, saturating at 0
func (s *State) Decrease(step uint8) {
	v := s.Color[s.Active]
	if v < step {
		s.Color[s.Active] = 0
		return
	}
	s.Color[s.Active] = v - step
}

// Reset sets the color back to black. The active channel is left alone.
func (s *State) Reset() {
	s.Color = [3]uint8{}
}

// Value returns the byte of the active channel
func (s State) Value() uint8 {
	return s.Color[s.Active]
}

// Hex formats the color as #RRGGBB
func (s State) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", s.Color[0], s.Color[1], s.Color[2])
}
