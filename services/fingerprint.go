// backend/services/fingerprint.go
package services

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/gewnthar/eaterhistory/backend/models"
)

// Fingerprint hashes a snapshot's sorted slug set. Name or address edits do
// not change the fingerprint; only membership changes do, so cosmetic
// re-scrapes of an unchanged list never produce new history entries.
func Fingerprint(records []models.RestaurantRecord) string {
	slugs := make([]string, 0, len(records))
	for _, record := range records {
		slugs = append(slugs, record.Slug)
	}
	sort.Strings(slugs)

	encoded, err := json.Marshal(slugs)
	if err != nil {
		// A []string always marshals; keep the signature total anyway.
		return ""
	}
	sum := sha1.Sum(encoded)
	return hex.EncodeToString(sum[:])
}
