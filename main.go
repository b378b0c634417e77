package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/veandco/go-sdl2/sdl"

	"sdl-colors/config"
	"sdl-colors/pkg/pacing"
	"sdl-colors/screens/picker"
	"sdl-colors/ui"
)

const statsWindow = 120

func main() {
	// SDL must stay on the thread that initialized it
	runtime.LockOSThread()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.New(context.Background())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := initializeSDL2(cfg.VideoDriver); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	window, err := createWindow(cfg.Window)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	fonts, err := ui.LoadFonts(cfg.FontPath)
	if err != nil {
		// Labels are optional, the swatch and meters still draw
		log.Printf("Warning: Failed to load fonts: %v", err)
	}

	screen := picker.NewPickerScreen(picker.Options{
		Title:  cfg.Window.Title,
		Step:   cfg.ColorStep,
		Fonts:  fonts,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	defer screen.Close()

	log.Printf("Starting %s | %dx%d | step %d", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.ColorStep)

	if err := runLoop(window, renderer, screen, cfg.Loop); err != nil {
		log.Printf("Loop stopped: %v", err)
	}

	log.Println("Exiting...")
}

// initializeSDL2 tries the preferred driver and then the platform fallbacks
func initializeSDL2(preferred string) error {
	if preferred != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", preferred)
	}

	var lastErr error
	for _, driver := range videoDrivers(preferred, runtime.GOOS) {
		if err := trySDLInitialization(driver); err != nil {
			log.Printf("SDL2 initialization failed with driver %q: %v", driver, err)
			lastErr = err
			continue
		}

		name, _ := sdl.GetCurrentVideoDriver()
		log.Printf("SDL2 initialized with %s driver", name)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed: %w", lastErr)
}

// videoDrivers returns the drivers to try in order. The headless dummy
// driver is only used when asked for explicitly.
func videoDrivers(preferred, goos string) []string {
	var drivers []string
	if preferred != "" {
		drivers = append(drivers, preferred)
	}

	switch goos {
	case "darwin":
		drivers = append(drivers, "cocoa")
	case "windows":
		drivers = append(drivers, "windows")
	default:
		drivers = append(drivers, "wayland", "x11", "kmsdrm")
	}

	// Empty means SDL picks on its own
	return append(drivers, "")
}

// trySDLInitialization initializes the video subsystem with a single driver
func trySDLInitialization(driver string) error {
	sdl.Quit()

	selectVideoDriver(driver)
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %w", err)
	}
	return nil
}

// selectVideoDriver points both the environment and the SDL hint at driver.
// An empty driver clears both so a previous attempt does not leak through.
func selectVideoDriver(driver string) {
	if driver != "" {
		os.Setenv("SDL_VIDEODRIVER", driver)
	} else {
		os.Unsetenv("SDL_VIDEODRIVER")
	}
	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
}

// createWindow creates a centered window of the configured size
func createWindow(cfg *config.Window) (*sdl.Window, error) {
	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		cfg.Width,
		cfg.Height,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}
	return window, nil
}

// createRenderer prefers an accelerated vsync renderer and falls back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	// Blending for the translucent channel tabs
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}

// runLoop polls events, redraws when needed and sleeps out the rest of each interval
func runLoop(window *sdl.Window, renderer *sdl.Renderer, screen *picker.PickerScreen, cfg *config.Loop) error {
	limiter := pacing.NewLimiter(cfg.PollInterval, statsWindow)
	lastStats := time.Now()
	title := ""

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if !screen.HandleEvent(event) {
				return nil
			}
		}

		if screen.Dirty() {
			if t := screen.Title(); t != title {
				window.SetTitle(t)
				title = t
			}

			w, h := window.GetSize()
			if err := screen.Draw(renderer, w, h); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
		}

		limiter.Wait()

		if cfg.StatsInterval > 0 && time.Since(lastStats) >= cfg.StatsInterval {
			avg, worst := limiter.Stats()
			log.Printf("Loop: avg %v, worst %v per iteration (interval %v)", avg, worst, limiter.Interval())
			limiter.ResetStats()
			lastStats = time.Now()
		}
	}
}
