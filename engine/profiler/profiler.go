package profiler

import (
	"runtime"
	"time"

	"github.com/eyengine/eyengine-go/common"
)

// Profiler aggregates frame timing and Go runtime memory statistics over a
// reporting window and emits one log line per elapsed window.
type Profiler struct {
	frames      int
	windowStart time.Time
	window      time.Duration
	memStats    runtime.MemStats

	// Values captured at the previous report, used to compute deltas.
	prevGCCount    uint32
	prevTotalAlloc uint64
}

// NewProfiler creates a Profiler reporting once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		windowStart: time.Now(),
		window:      time.Second,
	}
}

// Tick counts one frame. When a full reporting window has elapsed it logs
// FPS, heap size, allocation rate, GC pause figures, and process footprint,
// then starts the next window.
//
// Returns:
//   - bool: true if a report was emitted on this call
func (p *Profiler) Tick() bool {
	p.frames++
	now := time.Now()
	elapsed := now.Sub(p.windowStart)
	if elapsed < p.window {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	fps := float64(p.frames) / elapsed.Seconds()
	heapMB := toMB(p.memStats.Alloc)
	sysMB := toMB(p.memStats.Sys)
	// TotalAlloc only grows, so the delta over the window is the churn rate.
	allocRateMB := toMB(p.memStats.TotalAlloc-p.prevTotalAlloc) / elapsed.Seconds()
	gcCount := p.memStats.NumGC
	lastPauseUs, maxPauseUs := p.gcPauses(gcCount)

	common.LogInfo("FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, heapMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frames = 0
	p.windowStart = now
	p.prevGCCount = gcCount
	p.prevTotalAlloc = p.memStats.TotalAlloc
	return true
}

// gcPauses returns the most recent GC pause and the longest pause since the
// previous report, both in microseconds. PauseNs is a 256-entry ring buffer,
// so cycles older than that are out of reach.
func (p *Profiler) gcPauses(gcCount uint32) (lastUs, maxUs uint64) {
	if gcCount == 0 {
		return 0, 0
	}
	lastUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

	start := p.prevGCCount
	if gcCount-start > 256 {
		start = gcCount - 256
	}
	for i := start; i < gcCount; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxUs {
			maxUs = pause
		}
	}
	return lastUs, maxUs
}

func toMB(bytes uint64) float64 {
	return float64(bytes) / (1024 * 1024)
}
