package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const matrixTol = 1e-5

func TestIdentity(t *testing.T) {
	m := [16]float32{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	Identity(m[:])
	assert.Equal(t, [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, m)
}

func TestMul4Identity(t *testing.T) {
	var id [16]float32
	Identity(id[:])
	a := [16]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	var out [16]float32
	Mul4(out[:], a[:], id[:])
	assert.Equal(t, a, out)

	Mul4(out[:], id[:], a[:])
	assert.Equal(t, a, out)
}

func TestMul4InPlace(t *testing.T) {
	// out aliasing an operand must not corrupt the result.
	m := [16]float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1}
	Mul4(m[:], m[:], m[:])
	assert.Equal(t, [16]float32{4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 4, 0, 0, 0, 0, 1}, m)
}

func TestPerspective(t *testing.T) {
	var p [16]float32
	Perspective(p[:], float32(math.Pi/4), 1.0, 0.1, 100.0)

	f := float32(1.0 / math.Tan(math.Pi/8))
	assert.InDelta(t, f, p[0], matrixTol)
	assert.InDelta(t, f, p[5], matrixTol)
	assert.InDelta(t, (100.0+0.1)/(0.1-100.0), p[10], matrixTol)
	assert.InDelta(t, -1.0, p[11], matrixTol)
	assert.InDelta(t, (2*100.0*0.1)/(0.1-100.0), p[14], matrixTol)
	assert.InDelta(t, 0.0, p[15], matrixTol)
}

func TestLookAtAlongNegativeZ(t *testing.T) {
	var v [16]float32
	LookAt(v[:], 0, 0, 2, 0, 0, 0, 0, 1, 0)

	// Axes stay world-aligned; only the eye translation along z remains.
	expected := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -2, 1,
	}
	for i := range expected {
		assert.InDelta(t, expected[i], v[i], matrixTol, "element %d", i)
	}
}

func TestClipCorrectedViewProjection(t *testing.T) {
	var view, proj, vp, out [16]float32
	LookAt(view[:], 0, 0, 2, 0, 0, 0, 0, 1, 0)
	Perspective(proj[:], float32(math.Pi/4), 1.0, 0.1, 100.0)
	Mul4(vp[:], proj[:], view[:])
	Mul4(out[:], ClipCorrection[:], vp[:])

	// Hand-derived for eye (0,0,2) looking at the origin, fov 45deg, aspect 1,
	// near 0.1, far 100.
	expected := [16]float32{
		2.4142135, 0, 0, 0,
		0, 2.4142135, 0, 0,
		0, 0, -1.001001, -1,
		0, 0, 1.9019019, 2,
	}
	for i := range expected {
		assert.InDelta(t, expected[i], out[i], matrixTol, "element %d", i)
	}
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32(nil)))

	data := []float32{1, 2}
	b := SliceToBytes(data)
	assert.Len(t, b, 8)
	// 1.0f little-endian
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, b[:4])
}

func TestStructToBytes(t *testing.T) {
	v := struct{ A, B float32 }{1, 2}
	b := StructToBytes(&v)
	assert.Len(t, b, 8)
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, b[:4])
}
