//go:build darwin
// +build darwin

package performance

import (
	"runtime"
	"time"
)

// GetSystemMemory approximates the snapshot from the Go heap. The viewer
// mainly runs on Linux; macOS is for development, where sysinfo(2) does not
// exist, and a rough number still catches a leaking process.
func GetSystemMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	sysMB := m.Sys / (1024 * 1024)

	// Treat the process as the whole machine with a nominal 2GB budget
	totalMB := uint64(2048)
	usedMB := sysMB
	if usedMB > totalMB {
		usedMB = totalMB
	}
	freeMB := totalMB - usedMB

	return MemorySnapshot{
		Timestamp:   time.Now(),
		TotalMB:     totalMB,
		AvailableMB: freeMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
	}
}
