package texture

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/eyengine/eyengine-go/common"
	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/renderer/bind_group_provider"
	"github.com/eyengine/eyengine-go/engine/renderer/pipeline"
)

// ErrDecode indicates that the encoded image bytes for a texture could not be
// decoded into RGBA pixel data.
var ErrDecode = errors.New("texture: image decode failed")

// texture is the implementation of the Texture interface.
type texture struct {
	name              string
	source            *common.ImageSource
	samplerData       common.SamplerStagingData
	bindGroupProvider bind_group_provider.BindGroupProvider
	initialized       bool
}

// Texture wraps an encoded image and the GPU resources created from it: a
// texture view at binding 0 and a sampler at binding 1, collected into a single
// bind group matching the textured pipeline's group 0 layout.
//
// The encoded image (name, source, sampler config) is set at construction and
// is read-only through this interface. GPU resources are created by Init and
// exposed through BindGroupProvider for draw calls.
type Texture interface {
	// Name retrieves the texture identifier.
	//
	// Returns:
	//   - string: the name of the texture
	Name() string

	// Source retrieves the encoded image source for this texture.
	//
	// Returns:
	//   - *common.ImageSource: the image source
	Source() *common.ImageSource

	// BindGroupProvider retrieves the provider holding GPU-side resources for this texture.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Init decodes the image source and creates the GPU texture view, sampler,
	// and bind group through the given renderer. Calling Init more than once is
	// a no-op.
	//
	// Parameters:
	//   - r: the renderer used to create GPU resources
	//
	// Returns:
	//   - error: ErrDecode-wrapped error if the image cannot be decoded, or an error if GPU resource creation fails
	Init(r renderer.Renderer) error

	// Release frees the GPU resources held by this texture.
	Release()
}

var _ Texture = &texture{}

// NewTexture creates a new Texture configured with the provided options.
// The texture holds no GPU resources until Init is called.
//
// Parameters:
//   - name: an identifier for this texture, used for labels and error messages
//   - options: variadic list of TextureBuilderOption functions to configure the texture
//
// Returns:
//   - Texture: a new Texture instance
func NewTexture(name string, options ...TextureBuilderOption) Texture {
	t := &texture{
		name:              name,
		samplerData:       DefaultSamplerStagingData(),
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(name),
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// DefaultSamplerStagingData returns the sampler configuration used when no
// override is supplied: clamp-to-edge addressing with linear magnification and
// nearest minification/mipmap filtering.
//
// Returns:
//   - common.SamplerStagingData: the default sampler configuration
func DefaultSamplerStagingData() common.SamplerStagingData {
	return common.SamplerStagingData{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	}
}

// DepthSamplerStagingData returns a comparison sampler configuration suitable
// for sampling depth textures: linear filtering with a less-equal compare
// function and a wide LOD clamp range.
//
// Returns:
//   - common.SamplerStagingData: the depth comparison sampler configuration
func DepthSamplerStagingData() common.SamplerStagingData {
	return common.SamplerStagingData{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   -100,
		LodMaxClamp:   100,
		Compare:       wgpu.CompareFunctionLessEqual,
		MaxAnisotropy: 1,
	}
}

func (t *texture) Name() string {
	return t.name
}

func (t *texture) Source() *common.ImageSource {
	return t.source
}

func (t *texture) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return t.bindGroupProvider
}

func (t *texture) Init(r renderer.Renderer) error {
	if t.initialized {
		return nil
	}
	if t.source == nil {
		return fmt.Errorf("texture %s has no image source", t.name)
	}

	pixels, width, height, err := t.source.Decode()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, t.name, err)
	}

	if err := r.InitTextureView(t.bindGroupProvider, 0, common.TextureStagingData{
		Pixels: pixels,
		Width:  width,
		Height: height,
	}); err != nil {
		return fmt.Errorf("failed to create texture view for %s: %w", t.name, err)
	}

	if err := r.InitSampler(t.bindGroupProvider, 1, t.samplerData); err != nil {
		return fmt.Errorf("failed to create sampler for %s: %w", t.name, err)
	}

	layout := pipeline.RenderModeTextured.BindGroupLayoutDescriptors()[0]
	if err := r.InitBindGroup(t.bindGroupProvider, layout, nil); err != nil {
		return fmt.Errorf("failed to create bind group for %s: %w", t.name, err)
	}

	t.initialized = true
	return nil
}

func (t *texture) Release() {
	if t.bindGroupProvider != nil {
		t.bindGroupProvider.Release()
	}
	t.initialized = false
}
