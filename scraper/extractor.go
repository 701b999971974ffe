// backend/scraper/extractor.go
package scraper

import (
	"log"

	"github.com/gewnthar/eaterhistory/backend/models"
	"github.com/gewnthar/eaterhistory/backend/normalizer"
)

// Extractor recovers raw restaurant items from one historical page encoding.
// A nil result means "not applicable": the format wasn't found or didn't
// decode. Wrong format is an expected outcome here, not an error.
type Extractor interface {
	Name() string
	Extract(html string) []models.RawRestaurant
}

// extractors is the fixed priority order, newest/richest page format first.
// Any working extractor satisfies the minimum-count contract equivalently for
// downstream logic.
var extractors = []Extractor{
	mapPointsExtractor{},
	ldJSONExtractor{},
	nextDataExtractor{},
}

// ExtractRestaurants tries each format extractor in priority order and
// normalizes the first plausible raw list into canonical records. Returns nil
// when no extractor recognizes the page.
func ExtractRestaurants(html string) []models.RestaurantRecord {
	for _, extractor := range extractors {
		raw := extractor.Extract(html)
		if raw == nil {
			continue
		}
		log.Printf("Scraper: Extractor %q matched with %d raw items.\n", extractor.Name(), len(raw))
		return normalizer.Normalize(raw)
	}
	return nil
}
