//go:build linux
// +build linux

package performance

import (
	"log"
	"syscall"
	"time"
)

// GetSystemMemory reads system-wide memory stats via sysinfo(2).
func GetSystemMemory() MemorySnapshot {
	var info syscall.Sysinfo_t
	if err := syscall.Sysinfo(&info); err != nil {
		log.Printf("Warning: sysinfo failed: %v", err)
		return MemorySnapshot{Timestamp: time.Now()}
	}

	// Sysinfo reports in multiples of info.Unit
	unit := uint64(info.Unit)

	totalMB := (info.Totalram * unit) / (1024 * 1024)
	freeMB := (info.Freeram * unit) / (1024 * 1024)
	bufferMB := (info.Bufferram * unit) / (1024 * 1024)

	// Buffer memory is reclaimable, so count it as available
	availableMB := freeMB + bufferMB

	return MemorySnapshot{
		Timestamp:   time.Now(),
		TotalMB:     totalMB,
		AvailableMB: availableMB,
		UsedMB:      totalMB - availableMB,
		FreeMB:      freeMB,
	}
}
