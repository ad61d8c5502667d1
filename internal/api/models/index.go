package models

import "time"

// AddIndexRequest is the request body for POST /index.
type AddIndexRequest struct {
	Name string `json:"name" binding:"required"`
	Note string `json:"note"`
}

// IndexEntry is one indexed name.
type IndexEntry struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	LabelCount int       `json:"label_count"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IndexListResponse is the response for GET /index.
type IndexListResponse struct {
	Entries []IndexEntry `json:"entries"`
	Count   int          `json:"count"`
	Total   int          `json:"total"`
}
