package mesh

// MeshBuilderOption is a function that configures a mesh instance during construction.
type MeshBuilderOption func(*mesh)

// WithColorVertices is an option builder that stages position+color vertex
// geometry and its 16-bit indices for upload.
//
// Parameters:
//   - vertices: the color vertices
//   - indices: the 16-bit indices
//
// Returns:
//   - MeshBuilderOption: a function that applies the geometry option to a mesh
func WithColorVertices(vertices []GPUColorVertex, indices []uint16) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = MarshalColorVertices(vertices)
		m.indexData, m.indexCount = MarshalIndices(indices)
	}
}

// WithTexturedVertices is an option builder that stages position+uv vertex
// geometry and its 16-bit indices for upload.
//
// Parameters:
//   - vertices: the textured vertices
//   - indices: the 16-bit indices
//
// Returns:
//   - MeshBuilderOption: a function that applies the geometry option to a mesh
func WithTexturedVertices(vertices []GPUTexturedVertex, indices []uint16) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = MarshalTexturedVertices(vertices)
		m.indexData, m.indexCount = MarshalIndices(indices)
	}
}

// WithRawGeometry is an option builder that stages pre-serialized vertex and
// index bytes directly. The index data must already be padded to a 4-byte
// boundary.
//
// Parameters:
//   - vertexData: the serialized vertex data
//   - indexData: the serialized 16-bit index data
//   - indexCount: the number of indices for draw calls
//
// Returns:
//   - MeshBuilderOption: a function that applies the geometry option to a mesh
func WithRawGeometry(vertexData, indexData []byte, indexCount int) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = vertexData
		m.indexData = indexData
		m.indexCount = indexCount
	}
}
