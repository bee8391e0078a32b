package engine

import (
	"fmt"
	"math"
	"os"

	"github.com/eyengine/eyengine-go/common"
	"github.com/eyengine/eyengine-go/engine/camera"
	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/window"
	"github.com/pelletier/go-toml/v2"
)

// Config holds TOML-driven startup settings for the engine. Each section maps
// onto the builder options of the package it configures; unset fields keep the
// defaults from DefaultConfig.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Renderer RendererConfig `toml:"renderer"`
	Camera   CameraConfig   `toml:"camera"`
	Log      LogConfig      `toml:"log"`
}

// WindowConfig configures the application window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RendererConfig configures surface presentation and adapter selection.
type RendererConfig struct {
	// PresentMode is "vsync" or "uncapped".
	PresentMode string `toml:"present_mode"`
	// DepthBuffer enables the Depth32Float depth attachment.
	DepthBuffer bool `toml:"depth_buffer"`
	// ForceSoftware forces the CPU fallback adapter.
	ForceSoftware bool `toml:"force_software"`
}

// CameraConfig configures the perspective camera and its movement controller.
type CameraConfig struct {
	Speed      float32 `toml:"speed"`
	FovDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
}

// LogConfig configures the shared logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used when no config file is present:
// a 1280x720 vsync window with a 45 degree camera moving at 0.2 units per
// update and info-level logging.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "eyengine",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			PresentMode: "vsync",
		},
		Camera: CameraConfig{
			Speed:      0.2,
			FovDegrees: 45,
			Near:       0.1,
			Far:        100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads and parses a TOML config file, layering it over the
// defaults from DefaultConfig.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the parsed configuration
//   - error: an error if the file cannot be read or parsed
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyLogging applies the configured log level to the shared logger.
func (c Config) ApplyLogging() {
	common.SetLogLevel(c.Log.Level)
}

// WindowOptions converts the window section into window builder options.
//
// Returns:
//   - []window.WindowBuilderOption: options for window.NewWindow
func (c Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Window.Title),
		window.WithWidth(c.Window.Width),
		window.WithHeight(c.Window.Height),
	}
}

// RendererOptions converts the renderer section into renderer builder options.
// An unknown present mode falls back to vsync.
//
// Returns:
//   - []renderer.RendererBuilderOption: options for renderer.NewRenderer
func (c Config) RendererOptions() []renderer.RendererBuilderOption {
	mode := renderer.PresentModeVSync
	if c.Renderer.PresentMode == "uncapped" {
		mode = renderer.PresentModeUncapped
	}
	return []renderer.RendererBuilderOption{
		renderer.WithPresentMode(mode),
		renderer.WithDepthBuffer(c.Renderer.DepthBuffer),
		renderer.WithForceSoftwareRenderer(c.Renderer.ForceSoftware),
	}
}

// CameraOptions converts the camera section into camera builder options.
// The aspect ratio comes from the caller since it depends on the window size
// at startup and stays fixed afterwards.
//
// Parameters:
//   - aspect: the aspect ratio (width / height) to fix for the camera
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c Config) CameraOptions(aspect float32) []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(c.Camera.FovDegrees * (math.Pi / 180.0)),
		camera.WithAspect(aspect),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
	}
}

// ControllerOptions converts the camera section into controller builder options.
//
// Returns:
//   - []camera.ControllerBuilderOption: options for camera.NewController
func (c Config) ControllerOptions() []camera.ControllerBuilderOption {
	return []camera.ControllerBuilderOption{
		camera.WithSpeed(c.Camera.Speed),
	}
}
