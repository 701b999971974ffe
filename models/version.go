// backend/models/version.go
package models

import "time"

// Capture is one row of the web archive's capture index for the target URL.
// The index is served as space-separated text, one capture per line.
type Capture struct {
	Timestamp   string `csv:"timestamp"` // 14-digit YYYYMMDDhhmmss
	OriginalURL string `csv:"original"`
	StatusCode  string `csv:"statuscode"`
}

// Snapshot is one accepted point-in-time capture of the list. ID is the
// capture timestamp token, or "live" for the current page.
type Snapshot struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"` // YYYY-MM-DD
	Source      string             `json:"source"`
	Restaurants []RestaurantRecord `json:"restaurants"`
}

// VersionHistory is the persisted artifact: every accepted snapshot in
// capture order. It is rebuilt from scratch on every sync run.
type VersionHistory struct {
	GeneratedAt string     `json:"generatedAt"` // ISO-8601
	Source      string     `json:"source"`
	Versions    []Snapshot `json:"versions"`
}

// SyncRun records one completed pipeline run in the sync_runs table.
type SyncRun struct {
	ID           int        `db:"id" json:"id"`
	SourceURL    string     `db:"source_url" json:"source_url"`
	GeneratedAt  time.Time  `db:"generated_at" json:"generated_at"`
	VersionCount int        `db:"version_count" json:"version_count"`
	ArtifactHash string     `db:"artifact_hash" json:"artifact_hash,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
