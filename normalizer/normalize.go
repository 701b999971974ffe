// backend/normalizer/normalize.go
package normalizer

import (
	"sort"
	"strings"

	"github.com/gewnthar/eaterhistory/backend/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// Normalize assembles raw extracted items into canonical restaurant records:
// canonical identity resolution, address normalization, per-slug
// deduplication, and a deterministic name sort. Items with no resolvable name
// are dropped. The output is the same regardless of input order, modulo the
// documented name tie-break.
func Normalize(rawItems []models.RawRestaurant) []models.RestaurantRecord {
	bySlug := make(map[string]*models.RestaurantRecord)
	var order []string

	for _, item := range rawItems {
		rawName := strings.TrimSpace(item.Name)
		if rawName == "" {
			continue
		}

		identity := ResolveIdentity(rawName)
		if identity.Slug == "" {
			continue
		}

		record := models.RestaurantRecord{
			Name:            identity.Name,
			Slug:            identity.Slug,
			Address:         NormalizeAddress(strings.TrimSpace(item.Address)),
			SourceURL:       item.SourceURL,
			Website:         item.Website,
			Phone:           item.Phone,
			OpenFor:         item.OpenFor,
			PriceRange:      item.PriceRange,
			DescriptionText: item.DescriptionText,
			ImageURL:        item.ImageURL,
		}
		if override := PhoneOverride(identity.Slug); override != "" {
			record.Phone = override
		}
		// Coordinates are kept both-or-neither.
		if item.Latitude != nil && item.Longitude != nil {
			record.Latitude = item.Latitude
			record.Longitude = item.Longitude
		}

		existing, ok := bySlug[identity.Slug]
		if !ok {
			copied := record
			bySlug[identity.Slug] = &copied
			order = append(order, identity.Slug)
			continue
		}
		mergeRecord(existing, record)
	}

	records := make([]models.RestaurantRecord, 0, len(order))
	for _, slug := range order {
		records = append(records, *bySlug[slug])
	}

	sort.SliceStable(records, func(i, j int) bool {
		return nameCollator.CompareString(records[i].Name, records[j].Name) < 0
	})
	return records
}

// mergeRecord fills gaps in the first-seen record from a later duplicate that
// resolved to the same slug. The primary's non-empty values always win.
func mergeRecord(primary *models.RestaurantRecord, dup models.RestaurantRecord) {
	if primary.Address == "" {
		primary.Address = dup.Address
	}
	if primary.SourceURL == "" {
		primary.SourceURL = dup.SourceURL
	}
	if primary.Website == "" {
		primary.Website = dup.Website
	}
	if primary.Phone == "" {
		primary.Phone = dup.Phone
	}
	if primary.OpenFor == "" {
		primary.OpenFor = dup.OpenFor
	}
	if primary.PriceRange == "" {
		primary.PriceRange = dup.PriceRange
	}
	if primary.DescriptionText == "" {
		primary.DescriptionText = dup.DescriptionText
	}
	if primary.ImageURL == "" {
		primary.ImageURL = dup.ImageURL
	}
	if primary.Latitude == nil && dup.Latitude != nil {
		primary.Latitude = dup.Latitude
		primary.Longitude = dup.Longitude
	}
}
