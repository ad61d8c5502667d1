package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dnsname/internal/api/models"
	"github.com/jroosing/dnsname/internal/config"
	"github.com/jroosing/dnsname/internal/dname"
	"github.com/jroosing/dnsname/internal/helpers"
	"github.com/jroosing/dnsname/internal/logging"
	"github.com/jroosing/dnsname/internal/namelist"
)

// inputFormat resolves a request format, falling back to the configured one.
func (h *Handler) inputFormat(format string) (namelist.Format, error) {
	switch config.InputFormat(format) {
	case "":
		if h.cfg == nil {
			return namelist.FormatAuto, nil
		}
		return namelist.FormatOf(h.cfg.Input.Format), nil
	case config.InputHex, config.InputText:
		return namelist.FormatOf(config.InputFormat(format)), nil
	default:
		return namelist.FormatAuto, fmt.Errorf("unknown format %q (want hex or text)", format)
	}
}

// CheckName validates a name.
// @Summary Validate a domain name
// @Description Parses a name given as hex encoded wire format or presentation text and reports its properties. Invalid names are answered with valid=false and the reason.
// @Tags names
// @Accept json
// @Produce json
// @Param request body models.CheckNameRequest true "Name to check"
// @Success 200 {object} models.CheckNameResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /names/check [post]
func (h *Handler) CheckName(c *gin.Context) {
	var req models.CheckNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	format, err := h.inputFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	n, err := namelist.Parse(req.Name, format, req.Relative)
	if err != nil {
		h.logger.Debug("rejected name", "name", req.Name, "error", err)
		c.JSON(http.StatusOK, models.CheckNameResponse{Valid: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CheckNameResponse{
		Valid:      true,
		Name:       n.String(),
		Wire:       helpers.FormatHex(dname.Bytes(n)),
		Length:     n.ComposeLen(),
		LabelCount: n.LabelCount(),
		Absolute:   n.IsAbsolute(),
	})
}

// SortNames orders names canonically.
// @Summary Sort domain names
// @Description Sorts names in RFC 4034 canonical order. Inputs that fail to parse are listed separately.
// @Tags names
// @Accept json
// @Produce json
// @Param request body models.SortNamesRequest true "Names to sort"
// @Success 200 {object} models.SortNamesResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /names/sort [post]
func (h *Handler) SortNames(c *gin.Context) {
	var req models.SortNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	names := make([]namelist.Name, 0, len(req.Names))
	resp := models.SortNamesResponse{Names: make([]string, 0, len(req.Names))}
	for _, s := range req.Names {
		n, err := namelist.Parse(s, namelist.FormatText, req.Relative)
		if err != nil {
			resp.Rejected = append(resp.Rejected, models.RejectedName{Input: s, Error: err.Error()})
			continue
		}
		names = append(names, n)
	}

	namelist.Sort(names)
	for _, n := range names {
		resp.Names = append(resp.Names, n.String())
	}
	c.JSON(http.StatusOK, resp)
}

// NameLabels lists the labels of a name.
// @Summary Label boundaries
// @Description Lists each label of a presentation format name with its offset in the wire encoding
// @Tags names
// @Produce json
// @Param name path string true "Domain name"
// @Param relative query bool false "Treat the name as relative"
// @Success 200 {object} models.LabelsResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /names/{name}/labels [get]
func (h *Handler) NameLabels(c *gin.Context) {
	relative, _ := strconv.ParseBool(c.Query("relative"))

	n, err := namelist.Parse(c.Param("name"), namelist.FormatText, relative)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.logger.Debug("listing labels", logging.Name("name", n))
	c.JSON(http.StatusOK, models.LabelsResponse{
		Name:   n.String(),
		Length: n.ComposeLen(),
		Labels: namelist.Labels(n),
	})
}
