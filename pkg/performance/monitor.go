package performance

import (
	"sync"
	"time"
)

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples    []time.Duration
	maxSamples int
	sum        time.Duration
	index      int
	filled     bool
	mu         sync.RWMutex
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	return &RollingAverage{
		samples:    make([]time.Duration, windowSize),
		maxSamples: windowSize,
	}
}

// Add records a new sample and updates the rolling average
func (r *RollingAverage) Add(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Subtract old value if we're overwriting
	if r.filled {
		r.sum -= r.samples[r.index]
	}

	// Add new value
	r.samples[r.index] = d
	r.sum += d

	// Advance index
	r.index++
	if r.index >= r.maxSamples {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average
func (r *RollingAverage) Average() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := r.index
	if r.filled {
		count = r.maxSamples
	}

	if count == 0 {
		return 0 // No samples yet
	}

	return r.sum / time.Duration(count)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.filled {
		return r.maxSamples
	}
	return r.index
}

// Reset clears all samples
func (r *RollingAverage) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sum = 0
	r.index = 0
	r.filled = false
	r.samples = make([]time.Duration, r.maxSamples)
}

// FrameMonitor tracks map rendering performance metrics
type FrameMonitor struct {
	updateTimes    *RollingAverage
	drawTimes      *RollingAverage
	totalFrameTime *RollingAverage
	totalFrames    int
	startTime      time.Time
	mu             sync.RWMutex
}

// FrameReport contains aggregated rendering metrics
type FrameReport struct {
	AvgUpdateMs   float64 // Average world update time in milliseconds
	AvgDrawMs     float64 // Average draw time in milliseconds
	AvgTotalMs    float64 // Average total frame time in milliseconds
	EffectiveFPS  float64 // Frames per second implied by the average total
	TotalFrames   int     // Total frames processed
	IsHealthy     bool    // True if the frame budget is being met
	UptimeSeconds int64   // Seconds since monitor started
}

// NewFrameMonitor creates a new frame monitor
// windowSize determines how many frames to average (120 = 2 seconds at 60fps)
func NewFrameMonitor(windowSize int) *FrameMonitor {
	return &FrameMonitor{
		updateTimes:    NewRollingAverage(windowSize),
		drawTimes:      NewRollingAverage(windowSize),
		totalFrameTime: NewRollingAverage(windowSize),
		startTime:      time.Now(),
	}
}

// RecordUpdate records the time taken to update the world
func (m *FrameMonitor) RecordUpdate(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updateTimes.Add(duration)
}

// RecordDraw records the time taken to draw a frame
func (m *FrameMonitor) RecordDraw(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.drawTimes.Add(duration)
}

// RecordTotalFrameTime records the total update + draw time for one frame
func (m *FrameMonitor) RecordTotalFrameTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalFrameTime.Add(duration)
	m.totalFrames++
}

// GetReport generates a report with current metrics
func (m *FrameMonitor) GetReport() FrameReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	avgUpdate := m.updateTimes.Average()
	avgDraw := m.drawTimes.Average()
	avgTotal := m.totalFrameTime.Average()

	fps := 0.0
	if avgTotal > 0 {
		fps = float64(time.Second) / float64(avgTotal)
	}

	// The base map rebuild happens on zoom/pan, so the steady-state frame
	// should comfortably fit a 30fps budget even on a Pi
	isHealthy := avgTotal.Milliseconds() < 33

	return FrameReport{
		AvgUpdateMs:   float64(avgUpdate.Microseconds()) / 1000.0,
		AvgDrawMs:     float64(avgDraw.Microseconds()) / 1000.0,
		AvgTotalMs:    float64(avgTotal.Microseconds()) / 1000.0,
		EffectiveFPS:  fps,
		TotalFrames:   m.totalFrames,
		IsHealthy:     isHealthy,
		UptimeSeconds: int64(time.Since(m.startTime).Seconds()),
	}
}

// Reset clears all metrics
func (m *FrameMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.updateTimes.Reset()
	m.drawTimes.Reset()
	m.totalFrameTime.Reset()
	m.totalFrames = 0
	m.startTime = time.Now()
}
