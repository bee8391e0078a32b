package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderModeVertexLayouts(t *testing.T) {
	colorLayouts := RenderModeColor.VertexLayouts()
	require.Len(t, colorLayouts, 1)
	assert.Equal(t, uint64(24), colorLayouts[0].ArrayStride)
	require.Len(t, colorLayouts[0].Attributes, 2)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, colorLayouts[0].Attributes[0].Format)
	assert.Equal(t, uint64(0), colorLayouts[0].Attributes[0].Offset)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, colorLayouts[0].Attributes[1].Format)
	assert.Equal(t, uint64(12), colorLayouts[0].Attributes[1].Offset)

	for _, mode := range []RenderMode{RenderModeTextured, RenderModeTexturedCamera} {
		layouts := mode.VertexLayouts()
		require.Len(t, layouts, 1)
		assert.Equal(t, uint64(20), layouts[0].ArrayStride)
		require.Len(t, layouts[0].Attributes, 2)
		assert.Equal(t, wgpu.VertexFormatFloat32x2, layouts[0].Attributes[1].Format)
		assert.Equal(t, uint64(12), layouts[0].Attributes[1].Offset)
	}
}

func TestRenderModeBindGroupLayouts(t *testing.T) {
	assert.Empty(t, RenderModeColor.BindGroupLayoutDescriptors())

	textured := RenderModeTextured.BindGroupLayoutDescriptors()
	require.Len(t, textured, 1)

	texturedCamera := RenderModeTexturedCamera.BindGroupLayoutDescriptors()
	require.Len(t, texturedCamera, 2)

	// Group 0 must match across textured modes so pipelines stay swappable
	// against the same texture bind group.
	assert.Equal(t, textured[0], texturedCamera[0])

	texGroup := texturedCamera[0]
	require.Len(t, texGroup.Entries, 2)
	assert.Equal(t, wgpu.ShaderStageFragment, texGroup.Entries[0].Visibility)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, texGroup.Entries[0].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, texGroup.Entries[1].Sampler.Type)

	camGroup := texturedCamera[1]
	require.Len(t, camGroup.Entries, 1)
	assert.Equal(t, wgpu.ShaderStageVertex, camGroup.Entries[0].Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, camGroup.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(CameraUniformSize), camGroup.Entries[0].Buffer.MinBindingSize)
}

func TestRenderModeUnknown(t *testing.T) {
	unknown := RenderMode(99)
	assert.Nil(t, unknown.VertexLayouts())
	assert.Nil(t, unknown.BindGroupLayoutDescriptors())
}
