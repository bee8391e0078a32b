package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNonZero(t *testing.T) {
	assert.Equal(t, 3, FirstNonZero(0, 3, 7))
	assert.Equal(t, "fallback", FirstNonZero("", "fallback"))
	assert.Equal(t, float32(0), FirstNonZero[float32]())
	assert.Equal(t, 0, FirstNonZero(0, 0))
}
