package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dnsname/internal/api/models"
	"github.com/jroosing/dnsname/internal/database"
	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/logging"
)

func toIndexEntry(e database.NameEntry) models.IndexEntry {
	return models.IndexEntry{
		ID:         e.ID,
		Name:       e.Name.String(),
		LabelCount: e.LabelCount,
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// requireDB answers 503 and returns false when no index is configured.
func (h *Handler) requireDB(c *gin.Context) bool {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "Name index is not configured"})
		return false
	}
	return true
}

// pathName parses the :name path parameter as an absolute name.
func pathName(c *gin.Context) (dname.Dname, bool) {
	n, err := dname.FromString(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid name: " + err.Error()})
		return dname.Dname{}, false
	}
	return n, true
}

// indexError maps database errors to responses.
func (h *Handler) indexError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
		return
	}
	h.logger.Error("name index failure", "error", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal error"})
}

// ListIndex returns indexed names in canonical order.
// @Summary List indexed names
// @Description Returns indexed names in RFC 4034 canonical order, optionally restricted to a zone
// @Tags index
// @Produce json
// @Param under query string false "Only names at or below this zone"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} models.IndexListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /index [get]
func (h *Handler) ListIndex(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var opts database.ListOptions
	if under := c.Query("under"); under != "" {
		n, err := dname.FromString(under)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid zone: " + err.Error()})
			return
		}
		opts.Under = n
	}
	if limit := c.Query("limit"); limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit: " + limit})
			return
		}
		opts.Limit = v
	}

	ctx := c.Request.Context()
	entries, err := h.db.ListNames(ctx, opts)
	if err != nil {
		h.indexError(c, err)
		return
	}
	total, err := h.db.CountNames(ctx)
	if err != nil {
		h.indexError(c, err)
		return
	}

	resp := models.IndexListResponse{
		Entries: make([]models.IndexEntry, 0, len(entries)),
		Count:   len(entries),
		Total:   total,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toIndexEntry(e))
	}
	c.JSON(http.StatusOK, resp)
}

// AddIndex adds or updates a name.
// @Summary Add a name
// @Description Adds a name to the index. A name equal to an indexed one, ignoring case, replaces it.
// @Tags index
// @Accept json
// @Produce json
// @Param request body models.AddIndexRequest true "Name to add"
// @Success 201 {object} models.IndexEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /index [post]
func (h *Handler) AddIndex(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}

	var req models.AddIndexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	n, err := dname.FromString(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid name: " + err.Error()})
		return
	}

	e, err := h.db.AddName(c.Request.Context(), n, req.Note)
	if err != nil {
		h.indexError(c, err)
		return
	}
	h.logger.Info("name indexed", logging.Name("name", n))
	c.JSON(http.StatusCreated, toIndexEntry(e))
}

// GetIndex returns one indexed name.
// @Summary Get an indexed name
// @Tags index
// @Produce json
// @Param name path string true "Domain name"
// @Success 200 {object} models.IndexEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /index/{name} [get]
func (h *Handler) GetIndex(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	n, ok := pathName(c)
	if !ok {
		return
	}

	e, err := h.db.GetName(c.Request.Context(), n)
	if err != nil {
		h.indexError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIndexEntry(e))
}

// DeleteIndex removes a name.
// @Summary Remove an indexed name
// @Tags index
// @Produce json
// @Param name path string true "Domain name"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /index/{name} [delete]
func (h *Handler) DeleteIndex(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	n, ok := pathName(c)
	if !ok {
		return
	}

	if err := h.db.DeleteName(c.Request.Context(), n); err != nil {
		h.indexError(c, err)
		return
	}
	h.logger.Info("name removed", logging.Name("name", n))
	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}

// NextIndex returns the canonical successor of a name.
// @Summary Canonical successor
// @Description Returns the indexed name following the given one in canonical order, wrapping around after the last name as an NSEC chain does. The given name need not be indexed.
// @Tags index
// @Produce json
// @Param name path string true "Domain name"
// @Success 200 {object} models.IndexEntry
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Index is empty"
// @Security ApiKeyAuth
// @Router /index/{name}/next [get]
func (h *Handler) NextIndex(c *gin.Context) {
	if !h.requireDB(c) {
		return
	}
	n, ok := pathName(c)
	if !ok {
		return
	}

	e, err := h.db.Successor(c.Request.Context(), n)
	if err != nil {
		h.indexError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIndexEntry(e))
}
