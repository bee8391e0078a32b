package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderMode selects the vertex layout and bind group interface a pipeline is
// built against. Pipelines sharing a mode are interchangeable mid-frame: they
// accept the same mesh buffers and the same bind groups, so the active
// pipeline can be swapped per draw without touching any GPU resources.
type RenderMode int

const (
	// RenderModeColor draws position+color vertices with no bind groups.
	RenderModeColor RenderMode = iota

	// RenderModeTextured draws position+uv vertices with a texture/sampler
	// pair at group 0.
	RenderModeTextured

	// RenderModeTexturedCamera extends RenderModeTextured with a camera
	// view-projection uniform at group 1.
	RenderModeTexturedCamera
)

const (
	colorVertexStride    = 24 // vec3 position + vec3 color
	texturedVertexStride = 20 // vec3 position + vec2 uv

	// CameraUniformSize is the byte size of the camera uniform buffer
	// (a single mat4x4<f32>).
	CameraUniformSize = 64
)

// VertexLayouts returns the vertex buffer layouts for this mode.
// Slot 0 is the only populated slot; all modes draw from a single
// interleaved vertex buffer.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the vertex buffer layouts for slot 0
func (m RenderMode) VertexLayouts() []wgpu.VertexBufferLayout {
	switch m {
	case RenderModeColor:
		return []wgpu.VertexBufferLayout{
			{
				ArrayStride: colorVertexStride,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
				},
			},
		}
	case RenderModeTextured, RenderModeTexturedCamera:
		return []wgpu.VertexBufferLayout{
			{
				ArrayStride: texturedVertexStride,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
				},
			},
		}
	default:
		return nil
	}
}

// BindGroupLayoutDescriptors returns the bind group layout descriptors for
// this mode, ordered by group index.
//
// Returns:
//   - []wgpu.BindGroupLayoutDescriptor: descriptors indexed by group
func (m RenderMode) BindGroupLayoutDescriptors() []wgpu.BindGroupLayoutDescriptor {
	switch m {
	case RenderModeColor:
		return nil
	case RenderModeTextured:
		return []wgpu.BindGroupLayoutDescriptor{textureGroupLayout()}
	case RenderModeTexturedCamera:
		return []wgpu.BindGroupLayoutDescriptor{textureGroupLayout(), cameraGroupLayout()}
	default:
		return nil
	}
}

func textureGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "texture-bind-group-layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

func cameraGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "camera-bind-group-layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: CameraUniformSize,
				},
			},
		},
	}
}
