package shader

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// TexturedSource is the WGSL source for the standard textured pipeline:
// camera view-projection at group 1, diffuse texture + sampler at group 0.
//
//go:embed assets/textured.wgsl
var TexturedSource string

// TexturedAltSource is the WGSL source for the alternate textured pipeline.
// Same bindings and vertex input as TexturedSource with a desaturated
// fragment stage, so the two pipelines are hot-swappable mid-loop.
//
//go:embed assets/textured_alt.wgsl
var TexturedAltSource string

// ColorSource is the WGSL source for the flat vertex-color pipeline.
// No bind groups; position and color are interpolated straight through.
//
//go:embed assets/color.wgsl
var ColorSource string

// shader is the implementation of the Shader interface.
// It holds a single WGSL module with both a vertex and a fragment entry point.
type shader struct {
	key                string
	source             string
	vertexEntryPoint   string
	fragmentEntryPoint string
	module             *wgpu.ShaderModuleDescriptor
}

// Shader defines the interface for a WGSL shader module. It exposes the shader's
// unique key, source code and entry point names needed for pipeline creation.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// VertexEntryPoint returns the name of the @vertex entry point.
	//
	// Returns:
	//   - string: the vertex entry point name (default "vs_main")
	VertexEntryPoint() string

	// FragmentEntryPoint returns the name of the @fragment entry point.
	//
	// Returns:
	//   - string: the fragment entry point name (default "fs_main")
	FragmentEntryPoint() string

	// Module returns the wgpu.ShaderModuleDescriptor for this shader.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader creates a new Shader instance with all specified options applied.
// Entry points default to "vs_main" and "fs_main".
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - source: the WGSL source code for the module
//   - opts: a variadic list of ShaderBuilderOption functions to configure the shader
//
// Returns:
//   - Shader: a new Shader instance with the provided configuration
func NewShader(key, source string, opts ...ShaderBuilderOption) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s must have non-empty WGSL source", key))
	}
	s := &shader{
		key:                key,
		source:             source,
		vertexEntryPoint:   "vs_main",
		fragmentEntryPoint: "fs_main",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexEntryPoint() string {
	return s.vertexEntryPoint
}

func (s *shader) FragmentEntryPoint() string {
	return s.fragmentEntryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}
