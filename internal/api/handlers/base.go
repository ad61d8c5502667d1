// Package handlers implements the REST API endpoint handlers for dnamectl.
//
// REST API Endpoints:
//
// System Health:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, process, index size)
//
// Names (stateless):
//   - POST /api/v1/names/check - Validate a name in hex wire or text form
//   - POST /api/v1/names/sort - Sort names in RFC 4034 canonical order
//   - GET /api/v1/names/:name/labels - Label boundaries of a name
//
// Name Index:
//   - GET /api/v1/index - List indexed names in canonical order
//   - POST /api/v1/index - Add or update a name
//   - GET /api/v1/index/:name - Get one indexed name
//   - DELETE /api/v1/index/:name - Remove a name
//   - GET /api/v1/index/:name/next - Canonical successor, NSEC style
//
// Authentication:
//
// All endpoints support optional API key authentication via the X-API-Key
// header.
//
// @title dnamectl Management API
// @version 1.0
// @description REST API for validating, ordering and indexing domain names.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8053
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/dnsname/internal/config"
	"github.com/jroosing/dnsname/internal/database"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler. db may be nil, in which case the index
// endpoints answer 503.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		cfg:       cfg,
		db:        db,
		logger:    logger,
		startTime: time.Now(),
	}
}

// DB returns the database connection for handlers that need it.
func (h *Handler) DB() *database.DB {
	return h.db
}
