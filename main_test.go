package main

import (
	"os"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestVideoDrivers(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		goos      string
		want      []string
	}{
		{"Linux", "", "linux", []string{"wayland", "x11", "kmsdrm", ""}},
		{"Darwin", "", "darwin", []string{"cocoa", ""}},
		{"Windows", "", "windows", []string{"windows", ""}},
		{"Preferred first", "x11", "linux", []string{"x11", "wayland", "x11", "kmsdrm", ""}},
		{"Dummy on request", "dummy", "linux", []string{"dummy", "wayland", "x11", "kmsdrm", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := videoDrivers(tt.preferred, tt.goos)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %q, got %q", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Driver %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestVideoDriversNeverFallBackToDummy(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "windows", "freebsd"} {
		for _, driver := range videoDrivers("", goos) {
			if driver == "dummy" {
				t.Errorf("%s: headless driver must not be an automatic fallback", goos)
			}
		}
	}
}

func TestSelectVideoDriverClearsPreviousAttempt(t *testing.T) {
	t.Setenv("SDL_VIDEODRIVER", "")
	defer sdl.SetHint(sdl.HINT_VIDEODRIVER, "")

	selectVideoDriver("kmsdrm")
	if got := sdl.GetHint(sdl.HINT_VIDEODRIVER); got != "kmsdrm" {
		t.Fatalf("Expected kmsdrm hint, got %q", got)
	}
	if got := os.Getenv("SDL_VIDEODRIVER"); got != "kmsdrm" {
		t.Fatalf("Expected kmsdrm in environment, got %q", got)
	}

	selectVideoDriver("")
	if got := sdl.GetHint(sdl.HINT_VIDEODRIVER); got != "" {
		t.Errorf("Expected hint cleared, got %q", got)
	}
	if _, ok := os.LookupEnv("SDL_VIDEODRIVER"); ok {
		t.Errorf("Expected SDL_VIDEODRIVER unset")
	}
}
