// Package window handles the SDL2 window, the OpenGL 4.3 context and
// translation of SDL events into input events.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/engine/input"
	"github.com/chen-qingyu/black-hole/internal/logger"
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
	sdlWindow *sdl.Window
	glContext sdl.GLContext
}

// New creates a new window with OpenGL context.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Compute shaders need 4.3 core. Set before the window is created.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
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

	swap := 0
	if cfg.VSync {
		swap = 1
	}
	if err := sdl.GLSetSwapInterval(swap); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", swap), zap.Error(err))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

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

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// PollEvents moves every pending SDL event into q.
func (w *Window) PollEvents(q *input.Queue) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			q.Push(e)
		}
	}
}

func translate(event sdl.Event) (input.Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return input.Event{Type: input.EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return input.Event{
				Type:   input.EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return input.Event{}, false
		}
		t := input.EventKeyUp
		if e.Type == sdl.KEYDOWN {
			t = input.EventKeyDown
		}
		return input.Event{Type: t, Key: translateKey(e.Keysym.Sym)}, true

	case *sdl.MouseMotionEvent:
		return input.Event{
			Type: input.EventMouseMove,
			X:    float64(e.X),
			Y:    float64(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		button, ok := translateButton(e.Button)
		if !ok {
			return input.Event{}, false
		}
		action := input.ActionRelease
		if e.State == sdl.PRESSED {
			action = input.ActionPress
		}
		return input.Event{
			Type:   input.EventMouseButton,
			Button: button,
			Action: action,
			X:      float64(e.X),
			Y:      float64(e.Y),
		}, true

	case *sdl.MouseWheelEvent:
		sx, sy := float64(e.X), float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			sx, sy = -sx, -sy
		}
		return input.Event{Type: input.EventScroll, ScrollX: sx, ScrollY: sy}, true
	}
	return input.Event{}, false
}

func translateKey(k sdl.Keycode) input.Key {
	switch k {
	case sdl.K_ESCAPE:
		return input.KeyEscape
	case sdl.K_g:
		return input.KeyG
	case sdl.K_p:
		return input.KeyP
	default:
		return input.KeyUnknown
	}
}

func translateButton(b uint8) (input.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight, true
	default:
		return 0, false
	}
}
