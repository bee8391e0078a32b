package mesh

import (
	"fmt"

	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/renderer/bind_group_provider"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name              string
	vertexData        []byte
	indexData         []byte
	indexCount        int
	bindGroupProvider bind_group_provider.BindGroupProvider
	uploaded          bool
}

// Mesh is a GPU-ready container for indexed geometry. It holds serialized
// vertex and 16-bit index data staged for upload, and after Upload exposes the
// created GPU buffers through its BindGroupProvider for draw calls.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// VertexData returns the staged vertex data for this mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the staged index data for this mesh, padded to a 4-byte boundary.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices used for draw calls, excluding any padding.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BindGroupProvider retrieves the provider holding GPU mesh buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// Upload creates the GPU vertex and index buffers through the given renderer.
	// Calling Upload more than once is a no-op.
	//
	// Parameters:
	//   - r: the renderer used to create GPU buffers
	//
	// Returns:
	//   - error: an error if the mesh has no staged geometry or buffer creation fails
	Upload(r renderer.Renderer) error

	// Release frees the GPU buffers held by this mesh.
	Release()
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh with the specified options applied.
// The mesh holds no GPU resources until Upload is called.
//
// Parameters:
//   - name: an identifier for this mesh, used for labels and error messages
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(name string, options ...MeshBuilderOption) Mesh {
	m := &mesh{
		name:              name,
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(name),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) VertexData() []byte {
	return m.vertexData
}

func (m *mesh) IndexData() []byte {
	return m.indexData
}

func (m *mesh) IndexCount() int {
	return m.indexCount
}

func (m *mesh) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *mesh) Upload(r renderer.Renderer) error {
	if m.uploaded {
		return nil
	}
	if len(m.vertexData) == 0 || len(m.indexData) == 0 {
		return fmt.Errorf("mesh %s has no staged geometry", m.name)
	}
	if err := r.InitMeshBuffers(m.bindGroupProvider, m.vertexData, m.indexData, m.indexCount); err != nil {
		return fmt.Errorf("failed to upload mesh %s: %w", m.name, err)
	}
	m.uploaded = true
	return nil
}

func (m *mesh) Release() {
	if m.bindGroupProvider != nil {
		m.bindGroupProvider.Release()
	}
	m.uploaded = false
}
