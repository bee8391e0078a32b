package engine

import (
	"fmt"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/eyengine/eyengine-go/common"
	"github.com/eyengine/eyengine-go/engine/camera"
	"github.com/eyengine/eyengine-go/engine/mesh"
	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/renderer/bind_group_provider"
	"github.com/eyengine/eyengine-go/engine/renderer/pipeline"
	"github.com/eyengine/eyengine-go/engine/renderer/shader"
	"github.com/eyengine/eyengine-go/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records renderer calls for orchestration tests.
type fakeRenderer struct {
	surfaceConfig renderer.SurfaceConfig
	pipelines     map[string]pipeline.Pipeline

	beginFrameErr  error
	drawCallErr    error
	resizeCalls    [][2]int
	beginClear     []wgpu.Color
	drawPipelines  []string
	drawInstances  []uint32
	drawBindGroups [][]bind_group_provider.BindGroupProvider
	bufferWrites   [][]bind_group_provider.BufferWrite
	endFrameCount  int
	presentCount   int
}

var _ renderer.Renderer = &fakeRenderer{}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline { return f.pipelines[key] }
func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline {
	return nil
}
func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error { return nil }
func (f *fakeRenderer) Resize(width, height int) {
	f.resizeCalls = append(f.resizeCalls, [2]int{width, height})
}
func (f *fakeRenderer) SurfaceConfig() renderer.SurfaceConfig { return f.surfaceConfig }
func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	provider.SetIndexCount(indexCount)
	return nil
}
func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferSizeOverrides map[int]uint64) error {
	return nil
}
func (f *fakeRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}
func (f *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}
func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.bufferWrites = append(f.bufferWrites, writes)
}
func (f *fakeRenderer) BeginFrame(clearColor wgpu.Color) error {
	if f.beginFrameErr != nil {
		return f.beginFrameErr
	}
	f.beginClear = append(f.beginClear, clearColor)
	return nil
}
func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	if f.drawCallErr != nil {
		return f.drawCallErr
	}
	f.drawPipelines = append(f.drawPipelines, pipelineKey)
	f.drawInstances = append(f.drawInstances, instanceCount)
	f.drawBindGroups = append(f.drawBindGroups, bindGroups)
	return nil
}
func (f *fakeRenderer) EndFrame()                               { f.endFrameCount++ }
func (f *fakeRenderer) Present()                                { f.presentCount++ }
func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}
func (f *fakeRenderer) Release()                                {}

func newTestMesh() mesh.Mesh {
	return mesh.NewMesh("test",
		mesh.WithColorVertices([]mesh.GPUColorVertex{{}, {}, {}}, []uint16{0, 1, 2}),
	)
}

func TestRenderStateDefaultClearColor(t *testing.T) {
	s := NewRenderState(WithRenderer(&fakeRenderer{}))
	assert.Equal(t, wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}, s.ClearColor())
}

func TestRenderStateCursorMapsClearColor(t *testing.T) {
	f := &fakeRenderer{surfaceConfig: renderer.SurfaceConfig{Width: 800, Height: 600}}
	s := NewRenderState(WithRenderer(f))

	s.HandleCursorMove(400, 300)
	assert.Equal(t, wgpu.Color{R: 0.5, G: 0.5, B: 1.0, A: 1.0}, s.ClearColor())

	s.HandleCursorMove(200, 450)
	assert.Equal(t, wgpu.Color{R: 0.25, G: 0.75, B: 1.0, A: 1.0}, s.ClearColor())
}

func TestRenderStateCursorIgnoredWithoutSurface(t *testing.T) {
	f := &fakeRenderer{}
	s := NewRenderState(WithRenderer(f))

	s.HandleCursorMove(400, 300)
	assert.Equal(t, wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}, s.ClearColor())
}

func TestRenderStateToggle(t *testing.T) {
	s := NewRenderState(
		WithRenderer(&fakeRenderer{}),
		WithPipelineKeys("base", "alt"),
	)

	assert.Equal(t, "base", s.ActivePipelineKey())
	assert.True(t, s.HandleKey(common.KeySpace, true))
	assert.Equal(t, "alt", s.ActivePipelineKey())
	assert.True(t, s.HandleKey(common.KeySpace, false))
	assert.Equal(t, "base", s.ActivePipelineKey())
}

func TestRenderStateToggleWithoutAlternate(t *testing.T) {
	s := NewRenderState(
		WithRenderer(&fakeRenderer{}),
		WithPipelineKeys("base", ""),
	)

	s.HandleKey(common.KeySpace, true)
	assert.Equal(t, "base", s.ActivePipelineKey())
	assert.Nil(t, s.ActiveTexture())
}

func TestRenderStateKeyRouting(t *testing.T) {
	cam := camera.NewCamera(camera.WithController(camera.NewController()))
	s := NewRenderState(WithRenderer(&fakeRenderer{}), WithCamera(cam))

	assert.True(t, s.HandleKey(common.KeyW, true))
	assert.False(t, s.HandleKey(common.KeyEsc, true))
}

func TestRenderStateKeyRoutingWithoutCamera(t *testing.T) {
	s := NewRenderState(WithRenderer(&fakeRenderer{}))
	assert.False(t, s.HandleKey(common.KeyW, true))
}

func TestRenderStateResizeForwards(t *testing.T) {
	f := &fakeRenderer{}
	s := NewRenderState(WithRenderer(f))

	s.Resize(800, 600)
	s.Resize(0, 0)
	require.Len(t, f.resizeCalls, 2)
	assert.Equal(t, [2]int{800, 600}, f.resizeCalls[0])
	assert.Equal(t, [2]int{0, 0}, f.resizeCalls[1])
}

func TestRenderStateUpdateWritesCameraUniform(t *testing.T) {
	f := &fakeRenderer{}
	cam := camera.NewCamera(camera.WithController(camera.NewController()))
	s := NewRenderState(WithRenderer(f), WithCamera(cam))

	s.Update()
	require.Len(t, f.bufferWrites, 1)
	require.Len(t, f.bufferWrites[0], 1)
	write := f.bufferWrites[0][0]
	assert.Equal(t, cam.BindGroupProvider(), write.Provider)
	assert.Equal(t, 0, write.Binding)
	assert.Equal(t, uint64(0), write.Offset)
	assert.Len(t, write.Data, 64)
}

func TestRenderStateUpdateWithoutCamera(t *testing.T) {
	f := &fakeRenderer{}
	s := NewRenderState(WithRenderer(f))

	s.Update()
	assert.Empty(t, f.bufferWrites)
}

func TestRenderStateRenderEncodesSingleDraw(t *testing.T) {
	f := &fakeRenderer{surfaceConfig: renderer.SurfaceConfig{Width: 800, Height: 600}}
	cam := camera.NewCamera()
	s := NewRenderState(
		WithRenderer(f),
		WithCamera(cam),
		WithMesh(newTestMesh()),
		WithPipelineKeys("base", "alt"),
	)

	require.NoError(t, s.Render())
	require.Len(t, f.drawPipelines, 1)
	assert.Equal(t, "base", f.drawPipelines[0])
	assert.Equal(t, uint32(1), f.drawInstances[0])
	assert.Equal(t, 1, f.endFrameCount)
	assert.Equal(t, 1, f.presentCount)
	// The fake has no registered pipeline, so groups follow presence order.
	require.Len(t, f.drawBindGroups[0], 1)
	assert.Equal(t, cam.BindGroupProvider(), f.drawBindGroups[0][0])
}

func TestRenderStateRenderOrdersBindGroupsByMode(t *testing.T) {
	f := &fakeRenderer{pipelines: map[string]pipeline.Pipeline{
		"base": pipeline.NewPipeline("base", pipeline.RenderModeTexturedCamera,
			shader.NewShader("textured", shader.TexturedSource)),
	}}
	cam := camera.NewCamera()
	tex := texture.NewTexture("checker")
	s := NewRenderState(
		WithRenderer(f),
		WithCamera(cam),
		WithMesh(newTestMesh()),
		WithPipelineKeys("base", ""),
		WithTextures(tex, nil),
	)

	require.NoError(t, s.Render())
	require.Len(t, f.drawBindGroups, 1)
	// Texture at group 0, camera at group 1, as the render mode declares.
	require.Len(t, f.drawBindGroups[0], 2)
	assert.Equal(t, tex.BindGroupProvider(), f.drawBindGroups[0][0])
	assert.Equal(t, cam.BindGroupProvider(), f.drawBindGroups[0][1])
}

func TestRenderStateRenderRejectsMissingTexture(t *testing.T) {
	f := &fakeRenderer{pipelines: map[string]pipeline.Pipeline{
		"base": pipeline.NewPipeline("base", pipeline.RenderModeTexturedCamera,
			shader.NewShader("textured", shader.TexturedSource)),
	}}
	cam := camera.NewCamera()
	s := NewRenderState(
		WithRenderer(f),
		WithCamera(cam),
		WithMesh(newTestMesh()),
		WithPipelineKeys("base", ""),
	)

	err := s.Render()
	assert.Error(t, err)
	// The camera must not slide into the texture's group slot.
	assert.Empty(t, f.drawPipelines)
	assert.Equal(t, 1, f.endFrameCount)
	assert.Equal(t, 1, f.presentCount)
}

func TestRenderStateRenderUsesToggledPipeline(t *testing.T) {
	f := &fakeRenderer{}
	s := NewRenderState(
		WithRenderer(f),
		WithMesh(newTestMesh()),
		WithPipelineKeys("base", "alt"),
	)

	s.HandleKey(common.KeySpace, true)
	require.NoError(t, s.Render())
	require.Len(t, f.drawPipelines, 1)
	assert.Equal(t, "alt", f.drawPipelines[0])
}

func TestRenderStateRenderPropagatesAcquireError(t *testing.T) {
	f := &fakeRenderer{
		beginFrameErr: fmt.Errorf("%w: gone", renderer.ErrSurfaceLost),
	}
	s := NewRenderState(WithRenderer(f), WithMesh(newTestMesh()), WithPipelineKeys("base", ""))

	err := s.Render()
	assert.ErrorIs(t, err, renderer.ErrSurfaceLost)
	assert.Zero(t, f.endFrameCount)
	assert.Zero(t, f.presentCount)
}

func TestRenderStateOnFrame(t *testing.T) {
	f := &fakeRenderer{}
	cam := camera.NewCamera(camera.WithController(camera.NewController()))
	s := NewRenderState(
		WithRenderer(f),
		WithCamera(cam),
		WithMesh(newTestMesh()),
		WithPipelineKeys("base", ""),
	)

	require.NoError(t, s.OnFrame())
	assert.Len(t, f.bufferWrites, 1)
	assert.Len(t, f.drawPipelines, 1)
	assert.Equal(t, 1, f.presentCount)
}
