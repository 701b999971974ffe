// backend/services/export_service_test.go
package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gewnthar/eaterhistory/backend/models"
	"github.com/stretchr/testify/require"
)

func TestExportHistory(t *testing.T) {
	history := &models.VersionHistory{
		GeneratedAt: "2026-08-30T12:00:00Z",
		Source:      "https://www.eater.com/maps/best-vancouver-restaurants-bc-canada",
		Versions: []models.Snapshot{
			{
				ID:     "20170304101112",
				Date:   "2017-03-04",
				Source: "https://web.archive.org/web/20170304101112id_/https://www.eater.com/maps/best-vancouver-restaurants-bc-canada",
				Restaurants: []models.RestaurantRecord{
					{Name: "Bao Bei", Slug: "bao-bei", Address: "163 Keefer St, Vancouver, BC"},
				},
			},
		},
	}

	outputPath := filepath.Join(t.TempDir(), "data", "versions.json")
	hash, err := ExportHistory(history, outputPath)
	require.NoError(t, err)
	require.Len(t, hash, 64)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var decoded models.VersionHistory
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, *history, decoded)

	// Absent coordinates stay out of the artifact entirely.
	require.NotContains(t, string(data), "latitude")

	// Re-exporting the same history produces the same artifact hash.
	again, err := ExportHistory(history, outputPath)
	require.NoError(t, err)
	require.Equal(t, hash, again)
}
