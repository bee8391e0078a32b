package renderer

import (
	"sync"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestConfigureSurfaceZeroDimensionKeepsConfig(t *testing.T) {
	active := SurfaceConfig{
		Width:  800,
		Height: 600,
		Format: wgpu.TextureFormatBGRA8Unorm,
	}
	b := &wgpuRendererBackendImpl{
		mu:            &sync.Mutex{},
		surfaceConfig: active,
	}

	// A minimized window reports zero dimensions; the guard must bail before
	// touching the surface, leaving the previous configuration in place.
	b.ConfigureSurface(0, 600)
	assert.Equal(t, active, b.SurfaceConfig())

	b.ConfigureSurface(800, 0)
	assert.Equal(t, active, b.SurfaceConfig())

	b.ConfigureSurface(0, 0)
	assert.Equal(t, active, b.SurfaceConfig())
}
