// backend/handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/models"
	"github.com/gewnthar/eaterhistory/backend/services"
)

// SyncHandler re-runs the full archive sync pipeline on demand.
// Expects POST requests to /api/admin/sync
func SyncHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	history, err := services.RunSync()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Sync failed: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, models.SyncResponse{
		Message:      "Sync completed successfully.",
		VersionCount: len(history.Versions),
		OutputPath:   config.AppConfig.Sync.OutputPath,
	})
}

// SyncStatusHandler lists the recorded sync runs.
// Expects GET requests to /api/admin/status
func SyncStatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	runs, err := services.ListSyncRuns()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list sync runs: %v", err))
		return
	}
	if runs == nil {
		runs = []models.SyncRun{}
	}

	respondWithJSON(w, http.StatusOK, runs)
}
