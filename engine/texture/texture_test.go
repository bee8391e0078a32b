package texture

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/eyengine/eyengine-go/common"
	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/renderer/bind_group_provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer implements only the renderer methods texture init uses.
type fakeRenderer struct {
	renderer.Renderer

	textureStaging *common.TextureStagingData
	samplerStaging *common.SamplerStagingData
	bindGroupInits int
}

func (f *fakeRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	f.textureStaging = &stagingData
	return nil
}

func (f *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	f.samplerStaging = &samplerStagingData
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferSizeOverrides map[int]uint64) error {
	f.bindGroupInits++
	return nil
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestTextureInit(t *testing.T) {
	f := &fakeRenderer{}
	tex := NewTexture("checker", WithData(tinyPNG(t)))

	require.NoError(t, tex.Init(f))
	require.NotNil(t, f.textureStaging)
	assert.Equal(t, uint32(2), f.textureStaging.Width)
	assert.Equal(t, uint32(2), f.textureStaging.Height)
	assert.Len(t, f.textureStaging.Pixels, 2*2*4)

	require.NotNil(t, f.samplerStaging)
	assert.Equal(t, wgpu.AddressModeClampToEdge, f.samplerStaging.AddressModeU)
	assert.Equal(t, wgpu.FilterModeLinear, f.samplerStaging.MagFilter)
	assert.Equal(t, wgpu.FilterModeNearest, f.samplerStaging.MinFilter)

	assert.Equal(t, 1, f.bindGroupInits)

	// Second Init is a no-op.
	require.NoError(t, tex.Init(f))
	assert.Equal(t, 1, f.bindGroupInits)
}

func TestTextureInitDecodeError(t *testing.T) {
	f := &fakeRenderer{}
	tex := NewTexture("bad", WithData([]byte("not an image")))

	err := tex.Init(f)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Zero(t, f.bindGroupInits)
}

func TestTextureInitWithoutSource(t *testing.T) {
	tex := NewTexture("empty")
	assert.Error(t, tex.Init(&fakeRenderer{}))
}

func TestDepthSamplerStagingData(t *testing.T) {
	data := DepthSamplerStagingData()
	assert.Equal(t, wgpu.CompareFunctionLessEqual, data.Compare)
	assert.Equal(t, wgpu.FilterModeLinear, data.MagFilter)
	assert.Equal(t, wgpu.FilterModeLinear, data.MinFilter)
	assert.Equal(t, float32(-100), data.LodMinClamp)
	assert.Equal(t, float32(100), data.LodMaxClamp)
}
