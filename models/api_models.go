// backend/models/api_models.go
package models

// VersionSummary is the /api/versions list entry: a snapshot without its
// restaurant bodies.
type VersionSummary struct {
	ID              string `json:"id" db:"capture_id"`
	Date            string `json:"date" db:"capture_date"`
	Source          string `json:"source" db:"source_url"`
	RestaurantCount int    `json:"restaurantCount" db:"restaurant_count"`
	Fingerprint     string `json:"fingerprint" db:"fingerprint"`
}

// SyncResponse is returned by the admin sync endpoint.
type SyncResponse struct {
	Message      string `json:"message"`
	VersionCount int    `json:"versionCount"`
	OutputPath   string `json:"outputPath"`
}
