package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfilerReportsOncePerWindow(t *testing.T) {
	p := NewProfiler()

	p.window = time.Hour
	assert.False(t, p.Tick())

	p.window = 0
	assert.True(t, p.Tick())
	assert.Zero(t, p.frames)
}

func TestToMB(t *testing.T) {
	assert.Equal(t, 1.0, toMB(1024*1024))
	assert.Equal(t, 0.5, toMB(512*1024))
}
