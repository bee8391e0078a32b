package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const matrixTol = 1e-5

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	ex, ey, ez := c.Eye()
	assert.Equal(t, [3]float32{0, 1, 2}, [3]float32{ex, ey, ez})
	tx, ty, tz := c.Target()
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{tx, ty, tz})
	assert.InDelta(t, math.Pi/4, c.Fov(), matrixTol)
	assert.Equal(t, float32(1.0), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100.0), c.Far())
	assert.NotNil(t, c.BindGroupProvider())
}

func TestCameraViewProjection(t *testing.T) {
	c := NewCamera(
		WithEye(0, 0, 2),
		WithTarget(0, 0, 0),
		WithUp(0, 1, 0),
		WithFov(float32(math.Pi/4)),
		WithAspect(1.0),
		WithNear(0.1),
		WithFar(100.0),
	)

	vp := c.ViewProjectionMatrix()

	// Hand-derived clip-corrected view-projection for this setup.
	expected := [16]float32{
		2.4142135, 0, 0, 0,
		0, 2.4142135, 0, 0,
		0, 0, -1.001001, -1,
		0, 0, 1.9019019, 2,
	}
	for i := range expected {
		assert.InDelta(t, expected[i], vp[i], matrixTol, "element %d", i)
	}
}

func TestCameraSetEyeRecomputes(t *testing.T) {
	c := NewCamera(WithEye(0, 0, 2), WithTarget(0, 0, 0))
	before := c.ViewProjectionMatrix()
	c.SetEye(0, 0, 4)
	after := c.ViewProjectionMatrix()
	assert.NotEqual(t, before, after)
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := GPUCameraUniform{}
	u.ViewProj[0] = 1.5
	u.ViewProj[15] = -2.0
	assert.Equal(t, 64, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 64)
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(-2.0), math.Float32frombits(binary.LittleEndian.Uint32(buf[60:64])))
}

func TestCameraUniformWrite(t *testing.T) {
	c := NewCamera(WithEye(0, 0, 2))
	write := c.UniformWrite()
	assert.Equal(t, c.BindGroupProvider(), write.Provider)
	assert.Equal(t, 0, write.Binding)
	assert.Equal(t, uint64(0), write.Offset)
	require.Len(t, write.Data, 64)

	vp := c.ViewProjectionMatrix()
	assert.Equal(t, vp[0], math.Float32frombits(binary.LittleEndian.Uint32(write.Data[0:4])))
}
