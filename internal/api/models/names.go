package models

import "github.com/jroosing/dnsname/internal/namelist"

// CheckNameRequest is the request body for POST /names/check.
type CheckNameRequest struct {
	Name string `json:"name" binding:"required"`
	// Format is "hex" or "text". Empty uses the configured input format.
	Format   string `json:"format"`
	Relative bool   `json:"relative"`
}

// CheckNameResponse describes a validated name, or why it was rejected.
type CheckNameResponse struct {
	Valid      bool   `json:"valid"`
	Name       string `json:"name,omitempty"`
	Wire       string `json:"wire,omitempty"`
	Length     int    `json:"length,omitempty"`
	LabelCount int    `json:"label_count,omitempty"`
	Absolute   bool   `json:"absolute"`
	Error      string `json:"error,omitempty"`
}

// SortNamesRequest is the request body for POST /names/sort.
type SortNamesRequest struct {
	Names    []string `json:"names" binding:"required,min=1"`
	Relative bool     `json:"relative"`
}

// RejectedName is an input that could not be parsed.
type RejectedName struct {
	Input string `json:"input"`
	Error string `json:"error"`
}

// SortNamesResponse lists names in canonical order.
type SortNamesResponse struct {
	Names    []string       `json:"names"`
	Rejected []RejectedName `json:"rejected,omitempty"`
}

// LabelsResponse lists the labels of a name.
type LabelsResponse struct {
	Name   string               `json:"name"`
	Length int                  `json:"length"`
	Labels []namelist.LabelInfo `json:"labels"`
}
