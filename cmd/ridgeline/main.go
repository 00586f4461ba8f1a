// Package main is the entry point for the ridgeline explorer.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/engine/camera"
	"github.com/Faultbox/ridgeline/internal/engine/debug"
	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/internal/engine/renderer"
	"github.com/Faultbox/ridgeline/internal/engine/window"
	"github.com/Faultbox/ridgeline/internal/game"
	"github.com/Faultbox/ridgeline/internal/logger"
)

const appName = "Ridgeline"

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitWithOptions(logger.Options{
		Level:   cfg.Logging.Level,
		File:    fileConfig(cfg.Logging),
		Console: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Ridgeline ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("explorer stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
}

func fileConfig(lc config.LoggingConfig) logger.FileConfig {
	if lc.LogFile == "" {
		return logger.FileConfig{}
	}
	return logger.FileConfig{
		Path:       lc.LogFile,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
		Compress:   lc.Compress,
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      appName,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("window"))
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	// The renderer needs the GL context the window just created.
	dw, dh := win.DrawableSize()
	r, err := renderer.New(renderer.Config{Width: dw, Height: dh}, logger.Named("renderer"))
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Close()

	session, err := game.NewSession(cfg, r, logger.Named("game"))
	if err != nil {
		return err
	}

	width, height := dw, dh
	state := input.NewState(nil)
	shots := debug.NewScreenshotCapture("screenshots", "ridgeline")

	var minFrame time.Duration
	if cfg.Graphics.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(cfg.Graphics.FPSLimit)
	}

	last := time.Now()
	titleTimer := last
	frames := 0
	for {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		for _, ev := range win.PollEvents(state) {
			switch ev.Type {
			case input.EventQuit:
				return nil

			case input.EventWindowResize:
				width, height = ev.Width, ev.Height
				r.Resize(width, height)

			case input.EventMouseDown:
				if ev.Button == sdl.BUTTON_RIGHT && session.Mode == camera.ModeOrbit && height > 0 {
					x, y := state.MousePosition()
					if p, ok := session.PickGround(x, y, float32(width)/float32(height)); ok {
						session.Teleport(p.X, p.Z)
					}
					continue
				}
				// Chase looks with raw motion; the other rigs grab the pointer.
				if !win.Captured() && session.Mode != camera.ModeChase {
					win.SetCaptured(true)
				}

			case input.EventEscape:
				if win.Captured() {
					win.SetCaptured(false)
					continue
				}
				return nil

			case input.EventFocusLost:
				win.SetCaptured(false)

			case input.EventKeyDown:
				if ev.Key == input.KeyF12 {
					saveScreenshot(r, shots)
					continue
				}
				if _, err := session.HandleKey(ev.Key); err != nil {
					logger.Warn("key handling failed", zap.String("key", string(ev.Key)), zap.Error(err))
				}
			}
		}
		state.SetCaptured(win.Captured())

		session.Step(dt, state.Snapshot())
		if err := session.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		win.SwapBuffers()

		frames++
		if cfg.Graphics.ShowHUD && time.Since(titleTimer) >= 250*time.Millisecond {
			win.SetTitle(session.HUD().Title(appName))
			titleTimer = time.Now()
		}
		if frames%600 == 0 {
			logger.Debug("frame", zap.Int("count", frames), zap.Float32("dt_ms", dt*1000))
		}

		if minFrame > 0 {
			if spare := minFrame - time.Since(now); spare > 0 {
				time.Sleep(spare)
			}
		}
	}
}

func saveScreenshot(r *renderer.Renderer, shots *debug.ScreenshotCapture) {
	pixels, w, h := r.ReadPixels()
	if err := os.MkdirAll("screenshots", 0o755); err != nil {
		logger.Warn("screenshot directory", zap.Error(err))
		return
	}
	path, err := shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
