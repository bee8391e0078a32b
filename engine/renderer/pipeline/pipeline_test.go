package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/eyengine/eyengine-go/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	s := shader.NewShader("color", shader.ColorSource)
	p := NewPipeline("test", RenderModeColor, s)

	assert.Equal(t, "test", p.PipelineKey())
	assert.Equal(t, RenderModeColor, p.Mode())
	assert.Equal(t, s, p.Shader())
	assert.Nil(t, p.RenderPipeline())
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	require.NotNil(t, p.BlendState())
}

func TestNewPipelineOptions(t *testing.T) {
	s := shader.NewShader("textured", shader.TexturedSource)
	p := NewPipeline("depth-test", RenderModeTexturedCamera, s,
		WithDepthTestEnabled(true),
		WithDepthWriteEnabled(true),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
	)

	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.True(t, p.BlendEnabled())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
}
