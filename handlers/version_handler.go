// backend/handlers/version_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gewnthar/eaterhistory/backend/models"
	"github.com/gewnthar/eaterhistory/backend/services"
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// ListVersionsHandler serves the persisted version list without restaurant
// bodies. Expects GET /api/versions
func ListVersionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	versions, err := services.ListVersions()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to list versions: %v", err))
		return
	}
	if versions == nil {
		versions = []models.VersionSummary{}
	}

	respondWithJSON(w, http.StatusOK, versions)
}

// VersionRestaurantsHandler serves the restaurant records of one stored
// version. Expects GET /api/versions/{captureId}/restaurants
func VersionRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// Expected path: api/versions/{captureId}/restaurants
	if len(pathParts) < 4 || pathParts[3] != "restaurants" {
		respondWithError(w, http.StatusBadRequest, "Invalid path. Expected /api/versions/{captureId}/restaurants")
		return
	}
	captureID := pathParts[2]

	records, err := services.GetVersionRestaurants(captureID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get restaurants for version %s: %v", captureID, err))
		return
	}
	if len(records) == 0 {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("No stored version with id '%s'", captureID))
		return
	}

	respondWithJSON(w, http.StatusOK, records)
}
