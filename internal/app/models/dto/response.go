package dto

import "time"

// APIResponse is the standard success envelope for data-bearing endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// StatsResponse reports per-collection totals for the admin dashboard
type StatsResponse struct {
	Students   int64 `json:"students"`
	Recruiters int64 `json:"recruiters"`
	Newsletter int64 `json:"newsletter"`
}
