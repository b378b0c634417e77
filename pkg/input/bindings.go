package input

import "github.com/veandco/go-sdl2/sdl"

// Action is what a key press asks the screen to do
type Action int

const (
	None Action = iota
	PrevChannel
	NextChannel
	Increase
	Decrease
	Reset
	Quit
)

func (a Action) String() string {
	switch a {
	case PrevChannel:
		return "prev-channel"
	case NextChannel:
		return "next-channel"
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	case Reset:
		return "reset"
	case Quit:
		return "quit"
	}
	return "none"
}

// Repeatable reports whether holding the key should keep firing the action
func (a Action) Repeatable() bool {
	return a == Increase || a == Decrease
}

// Bindings maps keycodes to actions and filters held keys
type Bindings struct {
	keys    map[sdl.Keycode]Action
	tracker KeyPressTracker
}

// DefaultBindings returns the arrow/space/escape/Q layout
func DefaultBindings() *Bindings {
	return NewBindings(map[sdl.Keycode]Action{
		sdl.K_LEFT:   PrevChannel,
		sdl.K_RIGHT:  NextChannel,
		sdl.K_UP:     Increase,
		sdl.K_DOWN:   Decrease,
		sdl.K_SPACE:  Reset,
		sdl.K_ESCAPE: Quit,
		sdl.K_q:      Quit,
	})
}

// NewBindings creates bindings from an explicit key map
func NewBindings(keys map[sdl.Keycode]Action) *Bindings {
	copied := make(map[sdl.Keycode]Action, len(keys))
	for k, a := range keys {
		copied[k] = a
	}

	return &Bindings{
		keys:    copied,
		tracker: NewKeyPressTracker(),
	}
}

// Lookup returns the action bound to a key, or None
func (b *Bindings) Lookup(key sdl.Keycode) Action {
	return b.keys[key]
}

// Translate converts a polled SDL event into an action.
// Held keys only repeat for Increase and Decrease.
func (b *Bindings) Translate(event sdl.Event) Action {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Quit
	case *sdl.KeyboardEvent:
		key := e.Keysym.Sym
		if e.Type == sdl.KEYUP {
			b.tracker.Release(key)
			return None
		}
		if e.Type != sdl.KEYDOWN {
			return None
		}

		fresh := b.tracker.Press(key)
		action := b.Lookup(key)
		if action.Repeatable() {
			return action
		}
		if !fresh || e.Repeat != 0 {
			return None
		}
		return action
	}

	return None
}
