package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string               `json:"uptime"`
	UptimeSeconds int64                `json:"uptime_seconds"`
	StartTime     time.Time            `json:"start_time"`
	GoRoutines    int                  `json:"goroutines"`
	MemoryAllocMB float64              `json:"memory_alloc_mb"`
	NumCPU        int                  `json:"num_cpu"`
	Process       ProcessStatsResponse `json:"process"`
	IndexedNames  int                  `json:"indexed_names"`
}

// ProcessStatsResponse contains operating system level process metrics.
type ProcessStatsResponse struct {
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	NumThreads int32   `json:"num_threads"`
}
