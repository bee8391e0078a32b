package renderer

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for surface frame acquisition failures. BeginFrame wraps the
// underlying wgpu error with exactly one of these so callers can route on
// errors.Is: a lost surface wants a reconfigure, out of memory is fatal, and
// outdated/timeout frames are safe to skip.
var (
	// ErrSurfaceLost indicates the surface has been lost and must be
	// reconfigured before the next frame.
	ErrSurfaceLost = errors.New("renderer: surface lost")

	// ErrSurfaceOutdated indicates the surface no longer matches the window
	// (usually mid-resize); the frame should be skipped.
	ErrSurfaceOutdated = errors.New("renderer: surface outdated")

	// ErrSurfaceTimeout indicates the next frame could not be acquired in
	// time; the frame should be skipped.
	ErrSurfaceTimeout = errors.New("renderer: surface acquire timeout")

	// ErrOutOfMemory indicates the GPU is out of memory. Not recoverable.
	ErrOutOfMemory = errors.New("renderer: out of GPU memory")
)

// classifySurfaceError maps a raw surface acquisition error onto one of the
// package sentinel errors, preserving the original message. Unrecognized
// errors are treated as outdated so a transient glitch never kills the loop.
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "memory"):
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %v", ErrSurfaceTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	}
}
