package engine

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/eyengine/eyengine-go/engine/camera"
	"github.com/eyengine/eyengine-go/engine/mesh"
	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/texture"
)

// RenderStateBuilderOption is a function that configures a render state during construction.
type RenderStateBuilderOption func(*renderState)

// WithRenderer attaches the renderer the state draws through.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - RenderStateBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) RenderStateBuilderOption {
	return func(s *renderState) {
		s.rdr = r
	}
}

// WithCamera attaches a camera whose uniform is updated and bound each frame.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - RenderStateBuilderOption: option function to apply
func WithCamera(c camera.Camera) RenderStateBuilderOption {
	return func(s *renderState) {
		s.cam = c
	}
}

// WithMesh attaches the mesh drawn each frame.
//
// Parameters:
//   - m: the mesh
//
// Returns:
//   - RenderStateBuilderOption: option function to apply
func WithMesh(m mesh.Mesh) RenderStateBuilderOption {
	return func(s *renderState) {
		s.msh = m
	}
}

// WithPipelineKeys sets the default pipeline and the alternate pipeline
// selected while the toggle key is held. Pass an empty alternate key to
// disable the pipeline toggle.
//
// Parameters:
//   - pipelineKey: the default pipeline key
//   - altPipelineKey: the alternate pipeline key, or empty
//
// Returns:
//   - RenderStateBuilderOption: option function to apply
func WithPipelineKeys(pipelineKey, altPipelineKey string) RenderStateBuilderOption {
	return func(s *renderState) {
		s.pipelineKey = pipelineKey
		s.altPipelineKey = altPipelineKey
	}
}

// WithTextures sets the default texture and the alternate texture selected
// while the toggle key is held. Pass nil for the alternate to disable the
// texture toggle, or nil for both when drawing untextured geometry.
//
// Parameters:
//   - tex: the default texture, or nil
//   - altTex: the alternate texture, or nil
//
// Returns:
//   - RenderStateBuilderOption: option function to apply
func WithTextures(tex, altTex texture.Texture) RenderStateBuilderOption {
	return func(s *renderState) {
		s.tex = tex
		s.altTex = altTex
	}
}

// WithClearColor overrides the default clear color (0.1, 0.2, 0.3, 1.0).
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - RenderStateBuilderOption: option function to apply
func WithClearColor(color wgpu.Color) RenderStateBuilderOption {
	return func(s *renderState) {
		s.clearColor = color
	}
}
