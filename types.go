package textdex

import "time"

// Update statuses reported by the service.
const (
	UpdateEnqueued  = "enqueued"
	UpdateProcessed = "processed"
	UpdateFailed    = "failed"
)

// Update is the receipt of an asynchronous write operation.
// Its status is polled separately via Index.GetUpdate.
type Update struct {
	UpdateID    int64      `json:"updateId"`
	Status      string     `json:"status"`
	Type        UpdateType `json:"type"`
	Duration    float64    `json:"duration"`
	EnqueuedAt  time.Time  `json:"enqueuedAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}

// UpdateType describes the write operation behind an update receipt.
type UpdateType struct {
	Name   string `json:"name"`
	Number int64  `json:"number"`
}

// SearchOptions configures a search query beyond the query string.
// The zero value (or a nil pointer) means service defaults.
type SearchOptions struct {
	Offset                int
	Limit                 int
	Filters               string
	AttributesToRetrieve  []string
	AttributesToCrop      []string
	CropLength            int
	AttributesToHighlight []string
	Matches               bool
}

// SearchResponse holds the hits and metadata of one search call.
type SearchResponse[T any] struct {
	Hits             []T    `json:"hits"`
	Offset           int    `json:"offset"`
	Limit            int    `json:"limit"`
	NbHits           int64  `json:"nbHits"`
	ExhaustiveNbHits bool   `json:"exhaustiveNbHits"`
	ProcessingTimeMs int64  `json:"processingTimeMs"`
	Query            string `json:"query"`
}

// HealthStatus represents the service health report.
type HealthStatus struct {
	Status string `json:"status"`
}

// Version holds service build metadata.
type Version struct {
	CommitSha  string `json:"commitSha"`
	BuildDate  string `json:"buildDate"`
	PkgVersion string `json:"pkgVersion"`
}
