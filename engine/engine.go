package engine

import (
	"errors"
	"sync"

	"github.com/eyengine/eyengine-go/common"
	"github.com/eyengine/eyengine-go/engine/profiler"
	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/window"
)

// engine implements the Engine interface.
// Drives the frame handler from the window message loop on a single thread.
type engine struct {
	window  window.Window
	handler FrameHandler

	profiler         *profiler.Profiler
	profilingEnabled bool

	quitOnce sync.Once
}

// Engine is the main entry point for the engine. It wires window events into
// a FrameHandler and runs the frame loop until the window closes. Everything
// runs on the window's OS thread: input callbacks, per-frame updates, and
// render submission.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics output.
	DisableProfiler()

	// SetFrameHandler registers the handler driven by the frame loop.
	// Input and resize callbacks are rewired to the new handler.
	//
	// Parameters:
	//   - handler: the frame handler
	SetFrameHandler(handler FrameHandler)

	// Run starts the main frame loop (blocks until the window closes).
	Run()

	// Quit closes the window, ending the frame loop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// When both a window and a frame handler are supplied, window events are wired
// to the handler immediately.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil && e.handler != nil {
		e.wireCallbacks()
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameHandler(handler FrameHandler) {
	e.handler = handler
	if e.window != nil && e.handler != nil {
		e.wireCallbacks()
	}
}

func (e *engine) Run() {
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				common.LogError("failed to close window: %v", err)
			}
		}
	})
}

// wireCallbacks routes window events into the frame handler and installs the
// per-iteration frame callback.
func (e *engine) wireCallbacks() {
	e.window.SetResizeCallback(func(width, height int) {
		e.handler.Resize(width, height)
	})
	e.window.SetKeyDownCallback(func(keyCode uint32) {
		e.handler.HandleKey(keyCode, true)
	})
	e.window.SetKeyUpCallback(func(keyCode uint32) {
		e.handler.HandleKey(keyCode, false)
	})
	e.window.SetMouseMoveCallback(func(x, y float64) {
		e.handler.HandleCursorMove(x, y)
	})
	e.window.SetUpdateCallback(e.frame)
}

// frame runs one loop iteration: advance the handler and route any frame
// acquisition failure. A lost surface is reconfigured at the current window
// size and the frame skipped; outdated or timed-out frames are skipped; only
// out-of-memory ends the loop.
func (e *engine) frame() {
	err := e.handler.OnFrame()
	switch {
	case err == nil:
	case errors.Is(err, renderer.ErrOutOfMemory):
		common.LogError("GPU out of memory, shutting down: %v", err)
		e.Quit()
		return
	case errors.Is(err, renderer.ErrSurfaceLost):
		common.LogWarn("surface lost, reconfiguring: %v", err)
		e.handler.Resize(e.window.Width(), e.window.Height())
	case errors.Is(err, renderer.ErrSurfaceOutdated), errors.Is(err, renderer.ErrSurfaceTimeout):
		common.LogWarn("skipping frame: %v", err)
	default:
		common.LogError("frame error: %v", err)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}
