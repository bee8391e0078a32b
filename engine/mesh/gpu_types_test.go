package mesh

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUColorVertexMarshal(t *testing.T) {
	v := GPUColorVertex{
		Position: [3]float32{1, 2, 3},
		Color:    [3]float32{0.5, 0.25, 0.125},
	}
	assert.Equal(t, 24, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 24)
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])))
	assert.Equal(t, float32(0.125), math.Float32frombits(binary.LittleEndian.Uint32(buf[20:24])))
}

func TestGPUTexturedVertexMarshal(t *testing.T) {
	v := GPUTexturedVertex{
		Position: [3]float32{-0.5, 0.5, 0},
		TexCoord: [2]float32{0, 1},
	}
	assert.Equal(t, 20, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 20)
	assert.Equal(t, float32(-0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
}

func TestMarshalVertexSlices(t *testing.T) {
	colorData := MarshalColorVertices([]GPUColorVertex{{}, {}, {}})
	assert.Len(t, colorData, 3*24)

	texturedData := MarshalTexturedVertices([]GPUTexturedVertex{{}, {}})
	assert.Len(t, texturedData, 2*20)
}

func TestMarshalIndicesPadsToFourBytes(t *testing.T) {
	// 9 indices = 18 bytes, padded to 20; the count stays 9.
	data, count := MarshalIndices([]uint16{0, 1, 4, 1, 2, 4, 2, 3, 4})
	assert.Len(t, data, 20)
	assert.Equal(t, 9, count)
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(data[16:18]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[18:20]))

	// Even counts need no padding.
	data, count = MarshalIndices([]uint16{0, 1, 2, 0, 2, 3})
	assert.Len(t, data, 12)
	assert.Equal(t, 6, count)
}
