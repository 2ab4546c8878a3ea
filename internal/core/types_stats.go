package core

import "time"

// CatalogSnapshot is a persisted copy of the last successful extraction,
// used as a fallback when the upstream source cannot be fetched.
type CatalogSnapshot struct {
	SourceURL  string    `json:"sourceUrl"`
	FetchedAt  time.Time `json:"fetchedAt"`
	Providers  Catalog   `json:"providers"`
	ModelCount int       `json:"modelCount"`
}

// RequestRecord is one served HTTP request in the rolling history.
type RequestRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Duration  int64     `json:"duration_ms"`
	Success   bool      `json:"success"`
}

// RequestStats aggregates request counters and the bounded history.
type RequestStats struct {
	TotalRequests      int64           `json:"total_requests"`
	SuccessfulRequests int64           `json:"successful_requests"`
	FailedRequests     int64           `json:"failed_requests"`
	RequestHistory     []RequestRecord `json:"request_history"`
}
