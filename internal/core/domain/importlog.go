package domain

import "time"

// Import run outcomes recorded by the external XML sync job.
const (
	ImportRunning = "running"
	ImportSuccess = "success"
	ImportError   = "error"
)

// ImportLog records one run of the XML feed import. The importer itself
// runs as a separate scheduled job; this API only reads its trail.
type ImportLog struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	StartedAt       time.Time  `json:"started_at" bson:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Status          string     `json:"status" bson:"status"`
	Source          string     `json:"source,omitempty" bson:"source,omitempty"`
	PropertiesCount int        `json:"properties_count" bson:"properties_count"`
	ErrorMessage    string     `json:"error_message,omitempty" bson:"error_message,omitempty"`
}
