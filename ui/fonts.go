package ui

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/ttf"
)

const (
	labelSize = 28
	smallSize = 16
)

var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Menlo.ttc",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	`C:\Windows\Fonts\consola.ttf`,
}

// Fonts holds the two sizes the picker draws with
type Fonts struct {
	Label *ttf.Font // hex readout
	Small *ttf.Font // channel values
}

// LoadFonts initializes TTF and opens the first font that loads.
// preferred is tried before the system list when non-empty.
func LoadFonts(preferred string) (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %w", err)
	}

	paths := systemFontPaths
	if preferred != "" {
		paths = append([]string{preferred}, systemFontPaths...)
	}

	for _, path := range paths {
		label, err := ttf.OpenFont(path, labelSize)
		if err != nil {
			continue
		}
		small, err := ttf.OpenFont(path, smallSize)
		if err != nil {
			label.Close()
			continue
		}

		log.Printf("Loaded font %s", path)
		return &Fonts{Label: label, Small: small}, nil
	}

	ttf.Quit()
	return nil, fmt.Errorf("no usable font in %d candidates", len(paths))
}

// Close cleans up font resources
func (f *Fonts) Close() {
	if f == nil {
		return
	}
	if f.Label != nil {
		f.Label.Close()
	}
	if f.Small != nil {
		f.Small.Close()
	}
	ttf.Quit()
}
