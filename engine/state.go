package engine

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/eyengine/eyengine-go/common"
	"github.com/eyengine/eyengine-go/engine/camera"
	"github.com/eyengine/eyengine-go/engine/mesh"
	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/renderer/bind_group_provider"
	"github.com/eyengine/eyengine-go/engine/renderer/pipeline"
	"github.com/eyengine/eyengine-go/engine/texture"
)

// FrameHandler is driven by the engine loop: input and resize events are
// routed in as they arrive, and OnFrame runs once per loop iteration to
// advance and draw a frame.
type FrameHandler interface {
	// OnFrame advances per-frame state and renders a single frame.
	//
	// Returns:
	//   - error: a classified surface error if the frame could not be acquired
	OnFrame() error

	// Resize reacts to a window framebuffer size change.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// HandleKey routes a key event and reports whether it was consumed.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//   - pressed: true for a key press, false for a release
	//
	// Returns:
	//   - bool: true if the event was consumed
	HandleKey(keyCode uint32, pressed bool) bool

	// HandleCursorMove routes a cursor movement event.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	HandleCursorMove(x, y float64)
}

// renderState is the implementation of the RenderState interface.
type renderState struct {
	mu *sync.Mutex

	rdr renderer.Renderer
	cam camera.Camera

	msh mesh.Mesh

	pipelineKey    string
	altPipelineKey string

	tex    texture.Texture
	altTex texture.Texture

	clearColor wgpu.Color

	useAltPipeline bool
	useAltTexture  bool
}

// RenderState owns the per-frame state of the rendering loop: the active clear
// color, the pipeline and texture toggles, and the camera. It routes input
// events to the state they affect and encodes one indexed draw per frame.
//
// Key routing: Space sets the alternate pipeline and texture toggles to the
// key state (held = alternate); movement keys go to the camera controller.
// Cursor movement remaps the clear color from the cursor's position relative
// to the surface.
type RenderState interface {
	FrameHandler

	// ClearColor returns the color the next frame will be cleared to.
	//
	// Returns:
	//   - wgpu.Color: the current clear color
	ClearColor() wgpu.Color

	// ActivePipelineKey returns the key of the pipeline the next draw will use,
	// honoring the alternate-pipeline toggle.
	//
	// Returns:
	//   - string: the active pipeline key
	ActivePipelineKey() string

	// ActiveTexture returns the texture the next draw will bind at group 0,
	// honoring the alternate-texture toggle. Returns nil when the state has no
	// textures.
	//
	// Returns:
	//   - texture.Texture: the active texture or nil
	ActiveTexture() texture.Texture

	// Camera returns the attached camera, or nil if none is set.
	//
	// Returns:
	//   - camera.Camera: the camera or nil
	Camera() camera.Camera

	// Update integrates the camera from its controller and overwrites the
	// camera uniform buffer in place. The uniform buffer is the only device
	// resource mutated per frame.
	Update()

	// Render acquires the next frame, encodes a single render pass with one
	// indexed draw, submits it and presents. Acquisition failures come back as
	// the renderer package's classified sentinel errors.
	//
	// Returns:
	//   - error: a classified error if the frame could not be acquired
	Render() error

	// Release frees the GPU resources owned by the state's components.
	Release()
}

var _ RenderState = &renderState{}

// NewRenderState creates a new RenderState with the specified options applied.
// A renderer is required for Render to function; camera, mesh, and textures
// are optional and skipped when absent.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - RenderState: the newly created render state
func NewRenderState(options ...RenderStateBuilderOption) RenderState {
	s := &renderState{
		mu:         &sync.Mutex{},
		clearColor: wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *renderState) ClearColor() wgpu.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearColor
}

func (s *renderState) ActivePipelineKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePipelineKeyLocked()
}

func (s *renderState) ActiveTexture() texture.Texture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTextureLocked()
}

func (s *renderState) Camera() camera.Camera {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cam
}

func (s *renderState) HandleCursorMove(x, y float64) {
	cfg := s.rdr.SurfaceConfig()
	if cfg.Width == 0 || cfg.Height == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearColor = wgpu.Color{
		R: x / float64(cfg.Width),
		G: y / float64(cfg.Height),
		B: 1.0,
		A: 1.0,
	}
}

func (s *renderState) HandleKey(keyCode uint32, pressed bool) bool {
	if keyCode == common.KeySpace {
		s.mu.Lock()
		s.useAltPipeline = pressed
		s.useAltTexture = pressed
		s.mu.Unlock()
		return true
	}

	s.mu.Lock()
	cam := s.cam
	s.mu.Unlock()
	if cam != nil && cam.Controller() != nil {
		return cam.Controller().ProcessKey(keyCode, pressed)
	}
	return false
}

func (s *renderState) Resize(width, height int) {
	// The camera aspect ratio is fixed at construction; only the surface
	// reconfigures. Zero dimensions are dropped by the renderer.
	s.rdr.Resize(width, height)
}

func (s *renderState) Update() {
	s.mu.Lock()
	cam := s.cam
	s.mu.Unlock()
	if cam == nil {
		return
	}
	cam.Update()
	s.rdr.WriteBuffers([]bind_group_provider.BufferWrite{cam.UniformWrite()})
}

func (s *renderState) Render() error {
	s.mu.Lock()
	clearColor := s.clearColor
	pipelineKey := s.activePipelineKeyLocked()
	tex := s.activeTextureLocked()
	cam := s.cam
	msh := s.msh
	s.mu.Unlock()

	if err := s.rdr.BeginFrame(clearColor); err != nil {
		return err
	}

	var drawErr error
	if msh != nil {
		bindGroups, err := drawBindGroups(s.rdr.Pipeline(pipelineKey), tex, cam)
		if err != nil {
			drawErr = err
		} else {
			drawErr = s.rdr.DrawCall(pipelineKey, msh.BindGroupProvider(), 1, bindGroups)
		}
	}

	s.rdr.EndFrame()
	s.rdr.Present()
	return drawErr
}

// drawBindGroups assembles the bind group list in the group-index order the
// pipeline's render mode declares: texture at group 0, camera at group 1.
// An unregistered pipeline falls back to presence order; the renderer reports
// the missing pipeline on the draw itself.
func drawBindGroups(p pipeline.Pipeline, tex texture.Texture, cam camera.Camera) ([]bind_group_provider.BindGroupProvider, error) {
	if p == nil {
		var groups []bind_group_provider.BindGroupProvider
		if tex != nil {
			groups = append(groups, tex.BindGroupProvider())
		}
		if cam != nil {
			groups = append(groups, cam.BindGroupProvider())
		}
		return groups, nil
	}

	switch p.Mode() {
	case pipeline.RenderModeColor:
		return nil, nil
	case pipeline.RenderModeTextured:
		if tex == nil {
			return nil, fmt.Errorf("pipeline %q requires a texture at group 0", p.PipelineKey())
		}
		return []bind_group_provider.BindGroupProvider{tex.BindGroupProvider()}, nil
	case pipeline.RenderModeTexturedCamera:
		if tex == nil {
			return nil, fmt.Errorf("pipeline %q requires a texture at group 0", p.PipelineKey())
		}
		if cam == nil {
			return nil, fmt.Errorf("pipeline %q requires a camera at group 1", p.PipelineKey())
		}
		return []bind_group_provider.BindGroupProvider{tex.BindGroupProvider(), cam.BindGroupProvider()}, nil
	}
	return nil, fmt.Errorf("pipeline %q has an unsupported render mode %d", p.PipelineKey(), p.Mode())
}

func (s *renderState) OnFrame() error {
	s.Update()
	return s.Render()
}

func (s *renderState) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.msh != nil {
		s.msh.Release()
	}
	if s.tex != nil {
		s.tex.Release()
	}
	if s.altTex != nil {
		s.altTex.Release()
	}
	if s.cam != nil {
		s.cam.Release()
	}
}

// activePipelineKeyLocked resolves the pipeline toggle. Caller must hold the mutex.
func (s *renderState) activePipelineKeyLocked() string {
	if s.useAltPipeline && s.altPipelineKey != "" {
		return s.altPipelineKey
	}
	return s.pipelineKey
}

// activeTextureLocked resolves the texture toggle. Caller must hold the mutex.
func (s *renderState) activeTextureLocked() texture.Texture {
	if s.useAltTexture && s.altTex != nil {
		return s.altTex
	}
	return s.tex
}
