package performance

import (
	"log"
	"runtime"
	"time"
)

// MemorySnapshot is the system-wide memory state at one point in time. The
// pixel buffer and textures are fixed-size allocations, so steady growth
// here usually means effects are not being released.
type MemorySnapshot struct {
	Timestamp   time.Time
	TotalMB     uint64
	AvailableMB uint64
	UsedMB      uint64
	FreeMB      uint64 // not counting buffers/cache
}

// GoMemoryStats is the Go-heap side of the picture.
type GoMemoryStats struct {
	AllocMB      uint64 // live heap
	TotalAllocMB uint64 // cumulative
	SysMB        uint64 // obtained from the OS
	NumGC        uint32
}

// GetGoMemory reads the runtime's memory statistics.
func GetGoMemory() GoMemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return GoMemoryStats{
		AllocMB:      m.Alloc / (1024 * 1024),
		TotalAllocMB: m.TotalAlloc / (1024 * 1024),
		SysMB:        m.Sys / (1024 * 1024),
		NumGC:        m.NumGC,
	}
}

// MemoryPressureLevel buckets available memory into coarse severity levels
// for the periodic log line.
type MemoryPressureLevel int

const (
	MemoryPressureNone     MemoryPressureLevel = iota // >800MB available
	MemoryPressureLow                                 // 400-800MB
	MemoryPressureMedium                              // 200-400MB
	MemoryPressureHigh                                // 100-200MB
	MemoryPressureCritical                            // <100MB
)

func pressureFor(availableMB uint64) MemoryPressureLevel {
	switch {
	case availableMB < 100:
		return MemoryPressureCritical
	case availableMB < 200:
		return MemoryPressureHigh
	case availableMB < 400:
		return MemoryPressureMedium
	case availableMB < 800:
		return MemoryPressureLow
	default:
		return MemoryPressureNone
	}
}

func (m MemoryPressureLevel) String() string {
	switch m {
	case MemoryPressureNone:
		return "None"
	case MemoryPressureLow:
		return "Low"
	case MemoryPressureMedium:
		return "Medium"
	case MemoryPressureHigh:
		return "High"
	case MemoryPressureCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// LogMemorySnapshot writes one line combining the system and Go heap view.
// The map screen calls this every ten seconds.
func LogMemorySnapshot() {
	sys := GetSystemMemory()
	goMem := GetGoMemory()
	pressure := pressureFor(sys.AvailableMB)

	log.Printf("Memory: System[Total=%dMB, Avail=%dMB, Used=%dMB, Free=%dMB] Go[Alloc=%dMB, Sys=%dMB, GC=%d] Pressure=%s",
		sys.TotalMB, sys.AvailableMB, sys.UsedMB, sys.FreeMB,
		goMem.AllocMB, goMem.SysMB, goMem.NumGC,
		pressure)
}
