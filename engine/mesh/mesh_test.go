package mesh

import (
	"testing"

	"github.com/eyengine/eyengine-go/engine/renderer"
	"github.com/eyengine/eyengine-go/engine/renderer/bind_group_provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer implements only the renderer method mesh upload uses.
type fakeRenderer struct {
	renderer.Renderer

	vertexData []byte
	indexData  []byte
	indexCount int
	uploads    int
}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	f.vertexData = vertexData
	f.indexData = indexData
	f.indexCount = indexCount
	f.uploads++
	provider.SetIndexCount(indexCount)
	return nil
}

func TestMeshUpload(t *testing.T) {
	f := &fakeRenderer{}
	m := NewMesh("pentagon",
		WithColorVertices(
			[]GPUColorVertex{{}, {}, {}, {}, {}},
			[]uint16{0, 1, 4, 1, 2, 4, 2, 3, 4},
		),
	)

	require.NoError(t, m.Upload(f))
	assert.Len(t, f.vertexData, 5*24)
	assert.Len(t, f.indexData, 20) // 9 indices padded to a 4-byte boundary
	assert.Equal(t, 9, f.indexCount)
	assert.Equal(t, 9, m.BindGroupProvider().IndexCount())

	// Second Upload is a no-op.
	require.NoError(t, m.Upload(f))
	assert.Equal(t, 1, f.uploads)
}

func TestMeshUploadWithoutGeometry(t *testing.T) {
	m := NewMesh("empty")
	assert.Error(t, m.Upload(&fakeRenderer{}))
}

func TestMeshRawGeometry(t *testing.T) {
	vertexData := make([]byte, 40)
	indexData := make([]byte, 4)
	m := NewMesh("raw", WithRawGeometry(vertexData, indexData, 2))

	assert.Equal(t, vertexData, m.VertexData())
	assert.Equal(t, indexData, m.IndexData())
	assert.Equal(t, 2, m.IndexCount())
}
