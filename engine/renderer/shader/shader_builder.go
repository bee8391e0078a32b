package shader

// ShaderBuilderOption is a functional option for configuring a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithVertexEntryPoint overrides the default "vs_main" vertex entry point name.
//
// Parameters:
//   - name: the @vertex function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithVertexEntryPoint(name string) ShaderBuilderOption {
	return func(s *shader) {
		if name != "" {
			s.vertexEntryPoint = name
		}
	}
}

// WithFragmentEntryPoint overrides the default "fs_main" fragment entry point name.
//
// Parameters:
//   - name: the @fragment function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithFragmentEntryPoint(name string) ShaderBuilderOption {
	return func(s *shader) {
		if name != "" {
			s.fragmentEntryPoint = name
		}
	}
}
