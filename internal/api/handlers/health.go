package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dnsname/internal/api/models"
	"github.com/shirou/gopsutil/v3/process"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status, including database connectivity
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database unavailable: " + err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, process metrics and index size
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Process:       h.processStats(),
	}

	if h.db != nil {
		n, err := h.db.CountNames(c.Request.Context())
		if err != nil {
			h.logger.Warn("failed to count indexed names", "error", err)
		}
		resp.IndexedNames = n
	}

	c.JSON(http.StatusOK, resp)
}

// processStats reads OS level metrics of the current process. Metrics the
// platform does not provide are left at zero.
func (h *Handler) processStats() models.ProcessStatsResponse {
	var out models.ProcessStatsResponse

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		h.logger.Debug("process metrics unavailable", "error", err)
		return out
	}
	if mem, err := p.MemoryInfo(); err == nil {
		out.RSSBytes = mem.RSS
	}
	if cpu, err := p.CPUPercent(); err == nil {
		out.CPUPercent = cpu
	}
	if threads, err := p.NumThreads(); err == nil {
		out.NumThreads = threads
	}
	return out
}
