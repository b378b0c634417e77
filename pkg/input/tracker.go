package input

import "github.com/veandco/go-sdl2/sdl"

// KeyPressTracker remembers which keys are held so a press is reported once
type KeyPressTracker struct {
	pressed map[sdl.Keycode]bool
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{
		pressed: make(map[sdl.Keycode]bool),
	}
}

// Press marks the key as down and reports whether it was up before
func (kpt *KeyPressTracker) Press(key sdl.Keycode) bool {
	wasPressed := kpt.pressed[key]
	kpt.pressed[key] = true

	return !wasPressed
}

// Release marks the key as up
func (kpt *KeyPressTracker) Release(key sdl.Keycode) {
	delete(kpt.pressed, key)
}

// IsHeld reports whether the key is currently down
func (kpt *KeyPressTracker) IsHeld(key sdl.Keycode) bool {
	return kpt.pressed[key]
}
