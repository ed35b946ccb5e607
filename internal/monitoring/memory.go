// Package monitoring exposes runtime memory statistics for the memory
// health endpoint.
package monitoring

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"
)

const bytesPerMB = 1024 * 1024

// MemoryHealth reports current process memory metrics.
type MemoryHealth struct {
	Timestamp     time.Time `json:"timestamp"`
	HeapAllocMB   float64   `json:"heap_alloc_mb"`
	HeapInuseMB   float64   `json:"heap_inuse_mb"`
	HeapIdleMB    float64   `json:"heap_idle_mb"`
	StackInuseMB  float64   `json:"stack_inuse_mb"`
	NumGC         uint32    `json:"num_gc"`
	NumGoroutine  int       `json:"num_goroutine"`
	GOMaxProcs    int       `json:"gomaxprocs"`
	LastGCPauseMs float64   `json:"last_gc_pause_ms,omitempty"`
}

// MemoryHealthHandler writes current memory statistics as JSON. Plain
// http.HandlerFunc so it can sit behind any router.
func MemoryHealthHandler(w http.ResponseWriter, r *http.Request) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	health := MemoryHealth{
		Timestamp:    time.Now().UTC(),
		HeapAllocMB:  float64(stats.Alloc) / bytesPerMB,
		HeapInuseMB:  float64(stats.HeapInuse) / bytesPerMB,
		HeapIdleMB:   float64(stats.HeapIdle) / bytesPerMB,
		StackInuseMB: float64(stats.StackInuse) / bytesPerMB,
		NumGC:        stats.NumGC,
		NumGoroutine: runtime.NumGoroutine(),
		GOMaxProcs:   runtime.GOMAXPROCS(0),
	}
	if stats.NumGC > 0 {
		health.LastGCPauseMs = float64(stats.PauseNs[(stats.NumGC+255)%256]) / 1e6
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(health); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
