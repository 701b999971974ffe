// backend/services/export_service.go
package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gewnthar/eaterhistory/backend/models"
)

// ExportHistory writes the assembled history artifact as indented JSON to the
// given path, creating parent directories as needed. It returns the SHA-256
// of the written bytes for the sync-run audit record.
func ExportHistory(history *models.VersionHistory, outputPath string) (string, error) {
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal version history: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write version history to %s: %w", outputPath, err)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	log.Printf("Service: Wrote %d versions to %s (sha256 %s).\n", len(history.Versions), outputPath, hash[:12])
	return hash, nil
}
