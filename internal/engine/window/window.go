// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ridgeline/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps SDL2 window and OpenGL context.
type Window struct {
	config    Config
	log       *zap.Logger
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	captured  bool
}

// New creates a new window with OpenGL context.
func New(cfg Config, log *zap.Logger) (*Window, error) {
	w := &Window{
		config: cfg,
		log:    log,
	}

	// Initialize SDL2
	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// We want OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	if cfg.VSync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			log.Warn("failed to enable VSync", zap.Error(err))
		}
	} else {
		sdl.GLSetSwapInterval(0)
	}

	dw, dh := w.DrawableSize()
	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	sdl.SetRelativeMouseMode(false)
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// GetSize returns the current window size in points.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// DrawableSize returns the framebuffer size in pixels, larger than GetSize on HiDPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// SetCaptured locks or releases the pointer. While captured the cursor is
// hidden and only relative motion is reported.
func (w *Window) SetCaptured(captured bool) {
	if w.captured == captured {
		return
	}
	sdl.SetRelativeMouseMode(captured)
	w.captured = captured
	w.log.Debug("pointer capture", zap.Bool("captured", captured))
}

// Captured reports whether the pointer is locked.
func (w *Window) Captured() bool {
	return w.captured
}

// PollEvents drains the SDL queue into state and returns the events the
// frame loop needs to act on.
func (w *Window) PollEvents(state *input.State) []input.Event {
	var events []input.Event

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				dw, dh := w.DrawableSize()
				events = append(events, input.Event{Type: input.EventWindowResize, Width: dw, Height: dh})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				state.ReleaseAll()
				events = append(events, input.Event{Type: input.EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			key, ok := keyForScancode(e.Keysym.Scancode)
			if !ok {
				continue
			}
			pressed := e.State == sdl.PRESSED
			state.SetKey(key, pressed)
			if pressed && e.Repeat == 0 {
				events = append(events, input.Event{Type: input.EventKeyDown, Key: key})
				if key == input.KeyEscape {
					events = append(events, input.Event{Type: input.EventEscape})
				}
			}

		case *sdl.MouseMotionEvent:
			state.AddMouseMotion(float32(e.XRel), float32(e.YRel))
			ww, wh := w.GetSize()
			if ww > 0 && wh > 0 {
				state.SetMousePosition(
					2*float32(e.X)/float32(ww)-1,
					1-2*float32(e.Y)/float32(wh),
				)
			}

		case *sdl.MouseButtonEvent:
			if e.State == sdl.PRESSED {
				events = append(events, input.Event{Type: input.EventMouseDown, Button: e.Button})
			}

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
				dy = -dy
			}
			state.AddWheel(dy)
		}
	}

	state.SetCaptured(w.captured)
	return events
}

// keyForScancode maps physical key positions to input key codes.
func keyForScancode(sc sdl.Scancode) (input.Key, bool) {
	switch sc {
	case sdl.SCANCODE_W:
		return input.KeyW, true
	case sdl.SCANCODE_A:
		return input.KeyA, true
	case sdl.SCANCODE_S:
		return input.KeyS, true
	case sdl.SCANCODE_D:
		return input.KeyD, true
	case sdl.SCANCODE_Z:
		return input.KeyZ, true
	case sdl.SCANCODE_Q:
		return input.KeyQ, true
	case sdl.SCANCODE_C:
		return input.KeyC, true
	case sdl.SCANCODE_R:
		return input.KeyR, true
	case sdl.SCANCODE_UP:
		return input.KeyArrowUp, true
	case sdl.SCANCODE_DOWN:
		return input.KeyArrowDown, true
	case sdl.SCANCODE_LEFT:
		return input.KeyArrowLeft, true
	case sdl.SCANCODE_RIGHT:
		return input.KeyArrowRight, true
	case sdl.SCANCODE_SPACE:
		return input.KeySpace, true
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape, true
	case sdl.SCANCODE_F12:
		return input.KeyF12, true
	}
	return "", false
}
