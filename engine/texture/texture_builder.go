package texture

import (
	"github.com/eyengine/eyengine-go/common"
)

// TextureBuilderOption is a function that configures a texture instance during construction.
type TextureBuilderOption func(*texture)

// WithData is an option builder that sets raw encoded image bytes (PNG/JPEG/BMP)
// as the texture's image source.
//
// Parameters:
//   - data: the encoded image bytes
//
// Returns:
//   - TextureBuilderOption: a function that applies the data option to a texture
func WithData(data []byte) TextureBuilderOption {
	return func(t *texture) {
		t.source = &common.ImageSource{Name: t.name, Data: data}
	}
}

// WithPath is an option builder that sets an on-disk image file as the
// texture's image source.
//
// Parameters:
//   - path: the image file path
//
// Returns:
//   - TextureBuilderOption: a function that applies the path option to a texture
func WithPath(path string) TextureBuilderOption {
	return func(t *texture) {
		t.source = &common.ImageSource{Name: t.name, Path: path}
	}
}

// WithSampler is an option builder that overrides the default sampler
// configuration for the texture.
//
// Parameters:
//   - data: the sampler configuration
//
// Returns:
//   - TextureBuilderOption: a function that applies the sampler option to a texture
func WithSampler(data common.SamplerStagingData) TextureBuilderOption {
	return func(t *texture) {
		t.samplerData = data
	}
}
