package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	assert.NotEmpty(t, TexturedSource)
	assert.NotEmpty(t, TexturedAltSource)
	assert.NotEmpty(t, ColorSource)

	// Both textured shaders share the same bind group interface.
	for _, src := range []string{TexturedSource, TexturedAltSource} {
		assert.Contains(t, src, "@group(0) @binding(0)")
		assert.Contains(t, src, "@group(1) @binding(0)")
	}
	assert.NotContains(t, ColorSource, "@group")
}

func TestNewShaderDefaults(t *testing.T) {
	s := NewShader("color", ColorSource)
	assert.Equal(t, "color", s.Key())
	assert.Equal(t, ColorSource, s.Source())
	assert.Equal(t, "vs_main", s.VertexEntryPoint())
	assert.Equal(t, "fs_main", s.FragmentEntryPoint())

	m := s.Module()
	require.NotNil(t, m)
	assert.Equal(t, "color", m.Label)
	require.NotNil(t, m.WGSLDescriptor)
	assert.Equal(t, ColorSource, m.WGSLDescriptor.Code)
}

func TestNewShaderEntryPointOverrides(t *testing.T) {
	s := NewShader("custom", ColorSource,
		WithVertexEntryPoint("vertex_main"),
		WithFragmentEntryPoint("fragment_main"),
	)
	assert.Equal(t, "vertex_main", s.VertexEntryPoint())
	assert.Equal(t, "fragment_main", s.FragmentEntryPoint())
}

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("empty", "")
	})
}
