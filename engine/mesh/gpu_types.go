package mesh

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUColorVertex is the GPU-aligned representation of a single vertex for
// flat-colored pipelines. Matches the WGSL VertexInput struct for the color
// shader exactly.
// Size: 24 bytes (std430 aligned, no padding required).
type GPUColorVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Color    [3]float32 // offset 12: per-vertex RGB color (12 bytes)
}

// Size returns the size of the GPUColorVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUColorVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUColorVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload.
func (g *GPUColorVertex) Marshal() []byte {
	buf := make([]byte, 24)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[2]))
	return buf
}

// GPUTexturedVertex is the GPU-aligned representation of a single vertex for
// textured pipelines. Matches the WGSL VertexInput struct for the textured
// shaders exactly.
// Size: 20 bytes (std430 aligned, no padding required).
type GPUTexturedVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	TexCoord [2]float32 // offset 12: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUTexturedVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUTexturedVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUTexturedVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 20-byte buffer ready for GPU upload.
func (g *GPUTexturedVertex) Marshal() []byte {
	buf := make([]byte, 20)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.TexCoord[1]))
	return buf
}

// MarshalColorVertices serializes a slice of GPUColorVertex into a single
// contiguous byte buffer for vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: the concatenated vertex data
func MarshalColorVertices(vertices []GPUColorVertex) []byte {
	buf := make([]byte, 0, len(vertices)*24)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// MarshalTexturedVertices serializes a slice of GPUTexturedVertex into a single
// contiguous byte buffer for vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: the concatenated vertex data
func MarshalTexturedVertices(vertices []GPUTexturedVertex) []byte {
	buf := make([]byte, 0, len(vertices)*20)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// MarshalIndices serializes 16-bit indices into a byte buffer padded to a
// 4-byte boundary. WebGPU requires buffer copy sizes to be multiples of 4, so
// an odd index count gets two zero bytes of trailing padding. The returned
// count is the real index count, not the padded one; use it for draw calls.
//
// Parameters:
//   - indices: the 16-bit indices to serialize
//
// Returns:
//   - []byte: the index data padded to a 4-byte boundary
//   - int: the number of indices (excluding padding)
func MarshalIndices(indices []uint16) ([]byte, int) {
	size := len(indices) * 2
	padded := (size + 3) &^ 3
	buf := make([]byte, padded)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(buf[i*2:(i+1)*2], idx)
	}
	return buf, len(indices)
}
