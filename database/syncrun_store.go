// backend/database/syncrun_store.go
package database

import (
	"fmt"
	"log"
	"time"

	"github.com/gewnthar/eaterhistory/backend/models"
)

// LogSyncRun inserts or updates the audit record for a pipeline run against a
// given list source: when the history was generated, how many versions it
// holds, and the hash of the written artifact.
func LogSyncRun(sourceURL string, generatedAt time.Time, versionCount int, artifactHash string) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	query := `
		INSERT INTO sync_runs (
			source_url, generated_at, version_count, artifact_hash, updated_at
		) VALUES (?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			generated_at = VALUES(generated_at),
			version_count = VALUES(version_count),
			artifact_hash = VALUES(artifact_hash),
			updated_at = NOW()
	`

	_, err := DB.Exec(query, sourceURL, generatedAt, versionCount, artifactHash)
	if err != nil {
		log.Printf("ERROR Database: Failed to log sync run for '%s': %v", sourceURL, err)
		return fmt.Errorf("failed to log sync run for %s: %w", sourceURL, err)
	}

	log.Printf("Database: Logged sync run for '%s': %d versions at %s.\n",
		sourceURL, versionCount, generatedAt.Format(time.RFC3339))
	return nil
}

// GetSyncRuns retrieves all sync-run audit records.
func GetSyncRuns() ([]models.SyncRun, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := DB.Query(`
		SELECT id, source_url, generated_at, version_count, artifact_hash, created_at, updated_at
		FROM sync_runs
		ORDER BY source_url
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync_runs: %w", err)
	}
	defer rows.Close()

	var runs []models.SyncRun
	for rows.Next() {
		var run models.SyncRun
		err := rows.Scan(
			&run.ID, &run.SourceURL, &run.GeneratedAt, &run.VersionCount,
			&run.ArtifactHash, &run.CreatedAt, &run.UpdatedAt,
		)
		if err != nil {
			log.Printf("ERROR Database: Failed to scan sync_run row: %v", err)
			continue
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sync_run rows: %w", err)
	}
	return runs, nil
}
