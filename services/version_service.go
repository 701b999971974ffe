// backend/services/version_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/database"
	"github.com/gewnthar/eaterhistory/backend/models"
)

// RunSync executes a full pipeline run: rebuild the history, write the JSON
// artifact, and persist to MySQL when a database is configured. The returned
// history is the freshly assembled one regardless of persistence.
func RunSync() (*models.VersionHistory, error) {
	history, err := BuildHistory()
	if err != nil {
		return nil, err
	}

	artifactHash, err := ExportHistory(history, config.AppConfig.Sync.OutputPath)
	if err != nil {
		return nil, err
	}

	if database.DB == nil {
		log.Println("Service: No database configured; JSON artifact is the only sink for this run.")
		return history, nil
	}

	previous, err := database.GetLatestFingerprint(history.Source)
	if err != nil {
		log.Printf("WARN Service: Could not read last stored fingerprint: %v\n", err)
	}

	if err := database.SaveVersionHistory(history, fingerprints(history)); err != nil {
		return nil, fmt.Errorf("failed to persist version history: %w", err)
	}

	generatedAt, err := time.Parse(time.RFC3339, history.GeneratedAt)
	if err != nil {
		generatedAt = time.Now().UTC()
	}
	if err := database.LogSyncRun(history.Source, generatedAt, len(history.Versions), artifactHash); err != nil {
		log.Printf("WARN Service: Failed to log sync run: %v\n", err)
	}

	if latest := latestFingerprint(history); previous != "" && previous == latest {
		log.Println("Service: Stored history is unchanged since the previous sync run.")
	}
	return history, nil
}

// ListVersions returns the persisted version summaries in capture order.
func ListVersions() ([]models.VersionSummary, error) {
	return database.GetVersions(config.AppConfig.Eater.TargetURL)
}

// GetVersionRestaurants returns the records of one persisted version.
func GetVersionRestaurants(captureID string) ([]models.RestaurantRecord, error) {
	return database.GetRestaurantsForVersion(config.AppConfig.Eater.TargetURL, captureID)
}

// ListSyncRuns returns the sync-run audit records.
func ListSyncRuns() ([]models.SyncRun, error) {
	return database.GetSyncRuns()
}

// fingerprints computes the per-version fingerprints stored alongside each
// snapshot row.
func fingerprints(history *models.VersionHistory) []string {
	out := make([]string, len(history.Versions))
	for i, version := range history.Versions {
		out[i] = Fingerprint(version.Restaurants)
	}
	return out
}

func latestFingerprint(history *models.VersionHistory) string {
	if len(history.Versions) == 0 {
		return ""
	}
	return Fingerprint(history.Versions[len(history.Versions)-1].Restaurants)
}
