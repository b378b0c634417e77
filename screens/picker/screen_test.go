package picker

import (
	"testing"

	"sdl-colors/pkg/input"
	"sdl-colors/pkg/palette"

	"github.com/veandco/go-sdl2/sdl"
)

func newTestScreen() *PickerScreen {
	return NewPickerScreen(Options{Title: "SDL Tutorial", Width: 800, Height: 600})
}

func press(ps *PickerScreen, key sdl.Keycode) bool {
	keep := ps.HandleEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		State:  sdl.PRESSED,
		Keysym: sdl.Keysym{Sym: key},
	})
	ps.HandleEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		State:  sdl.RELEASED,
		Keysym: sdl.Keysym{Sym: key},
	})
	return keep
}

func TestQuitTerminates(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
	}{
		{"Window close", &sdl.QuitEvent{}},
		{"Escape", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}},
		{"Q", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_q}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestScreen()
			if ps.HandleEvent(tt.event) {
				t.Errorf("Expected %s to stop the loop", tt.name)
			}
		})
	}
}

func TestArrowKeysEditActiveChannel(t *testing.T) {
	ps := newTestScreen()

	press(ps, sdl.K_UP)
	press(ps, sdl.K_UP)
	press(ps, sdl.K_RIGHT)
	press(ps, sdl.K_UP)

	want := [3]uint8{2 * palette.DefaultStep, palette.DefaultStep, 0}
	if got := ps.State().Color; got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if ps.State().Active != palette.Green {
		t.Errorf("Expected green active, got %v", ps.State().Active)
	}

	press(ps, sdl.K_LEFT)
	press(ps, sdl.K_LEFT)
	if ps.State().Active != palette.Blue {
		t.Errorf("Expected left from red to wrap to blue, got %v", ps.State().Active)
	}
	press(ps, sdl.K_DOWN)
	if ps.State().Color[palette.Blue] != 0 {
		t.Errorf("Blue should stay clamped at zero, got %d", ps.State().Color[palette.Blue])
	}
}

func TestHeldUpSaturates(t *testing.T) {
	ps := newTestScreen()

	for i := 0; i < 100; i++ {
		ps.HandleEvent(&sdl.KeyboardEvent{
			Type:   sdl.KEYDOWN,
			Repeat: 1,
			Keysym: sdl.Keysym{Sym: sdl.K_UP},
		})
	}

	if got := ps.State().Color[palette.Red]; got != 255 {
		t.Errorf("Expected red saturated at 255, got %d", got)
	}
}

func TestSpaceResets(t *testing.T) {
	ps := newTestScreen()
	press(ps, sdl.K_UP)
	press(ps, sdl.K_RIGHT)
	press(ps, sdl.K_UP)

	if !press(ps, sdl.K_SPACE) {
		t.Fatal("Reset should not stop the loop")
	}
	if got := ps.State().Color; got != [3]uint8{} {
		t.Errorf("Expected black after reset, got %v", got)
	}
}

func TestCustomStep(t *testing.T) {
	ps := NewPickerScreen(Options{Step: 100, Width: 800, Height: 600})
	ps.Apply(input.Increase)
	ps.Apply(input.Increase)
	ps.Apply(input.Increase)

	if got := ps.State().Color[palette.Red]; got != 255 {
		t.Errorf("Expected 255, got %d", got)
	}
}

func TestDirtyTracking(t *testing.T) {
	ps := newTestScreen()
	if !ps.Dirty() {
		t.Fatal("New screen should need a first draw")
	}

	ps.dirty = false
	ps.HandleEvent(&sdl.MouseMotionEvent{})
	if ps.Dirty() {
		t.Error("Unbound events should not request a redraw")
	}

	ps.HandleEvent(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_EXPOSED})
	if !ps.Dirty() {
		t.Error("Expose should request a redraw")
	}

	ps.dirty = false
	ps.Apply(input.NextChannel)
	if !ps.Dirty() {
		t.Error("State change should request a redraw")
	}
}

func TestTitle(t *testing.T) {
	ps := newTestScreen()
	ps.Apply(input.Increase)

	if got := ps.Title(); got != "SDL Tutorial - #050000" {
		t.Errorf("Unexpected title %q", got)
	}

	untitled := NewPickerScreen(Options{Width: 800, Height: 600})
	if got := untitled.Title(); got != "#000000" {
		t.Errorf("Unexpected title %q", got)
	}
}

func TestDrawPaintsBackgroundAndIndicator(t *testing.T) {
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, 800, 600, 32, sdl.PIXELFORMAT_RGBA32)
	if err != nil {
		t.Fatalf("Failed to create surface: %v", err)
	}
	defer surface.Free()
	renderer, err := sdl.CreateSoftwareRenderer(surface)
	if err != nil {
		t.Fatalf("Failed to create software renderer: %v", err)
	}
	defer renderer.Destroy()

	ps := newTestScreen()
	ps.state.Color = [3]uint8{10, 20, 30}
	ps.Apply(input.NextChannel)

	if err := ps.Draw(renderer, 800, 600); err != nil {
		t.Fatalf("Unexpected draw error: %v", err)
	}
	if ps.Dirty() {
		t.Error("Draw should clear the dirty flag")
	}

	pixel := func(x, y int32) [3]uint8 {
		pixels := surface.Pixels()
		i := y*surface.Pitch + x*4
		return [3]uint8{pixels[i], pixels[i+1], pixels[i+2]}
	}

	if got := pixel(400, 250); got != [3]uint8{10, 20, 30} {
		t.Errorf("Expected background color, got %v", got)
	}
	center := swatchMargin + swatchSize/2
	if got := pixel(center, center); got != [3]uint8{0, 255, 0} {
		t.Errorf("Expected green indicator, got %v", got)
	}
	if got := pixel(swatchMargin, swatchMargin); got != [3]uint8{255, 255, 255} {
		t.Errorf("Expected white indicator border, got %v", got)
	}
}
