// backend/scraper/extract_ldjson.go
package scraper

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/models"
)

// ldJSONExtractor handles the structured-metadata vintage: ld+json script
// blocks containing an ItemList of restaurants. It carries fewer fields than
// mapPoints (name, address, detail URL only).
type ldJSONExtractor struct{}

func (ldJSONExtractor) Name() string { return "ld+json" }

type ldListEntry struct {
	Type            string            `json:"@type"`
	ItemListElement []json.RawMessage `json:"itemListElement"`
}

type ldRestaurant struct {
	Name    string          `json:"name"`
	URL     string          `json:"url"`
	Address json.RawMessage `json:"address"`
}

type ldListItem struct {
	Item json.RawMessage `json:"item"`
	ldRestaurant
}

func (ldJSONExtractor) Extract(html string) []models.RawRestaurant {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var best []models.RawRestaurant
	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, block *goquery.Selection) {
		raw := strings.TrimSpace(block.Text())
		if raw == "" {
			return
		}

		// A block may hold a single object or an array of them; undecodable
		// blocks are simply skipped.
		var entries []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			var single json.RawMessage
			if err := json.Unmarshal([]byte(raw), &single); err != nil {
				return
			}
			entries = []json.RawMessage{single}
		}

		for _, entryRaw := range entries {
			var entry ldListEntry
			if err := json.Unmarshal(entryRaw, &entry); err != nil {
				continue
			}
			if entry.Type != "ItemList" || len(entry.ItemListElement) == 0 {
				continue
			}

			items := collectListItems(entry.ItemListElement)
			if len(items) >= config.AppConfig.Sync.MinRestaurants && len(items) > len(best) {
				best = items
			}
		}
	})

	return best
}

// collectListItems reads each itemListElement, preferring its nested item
// object when present, and keeps entries with a usable name.
func collectListItems(elements []json.RawMessage) []models.RawRestaurant {
	var items []models.RawRestaurant
	for _, elementRaw := range elements {
		var element ldListItem
		if err := json.Unmarshal(elementRaw, &element); err != nil {
			continue
		}

		restaurant := element.ldRestaurant
		if len(element.Item) > 0 && string(element.Item) != "null" {
			var nested ldRestaurant
			if err := json.Unmarshal(element.Item, &nested); err == nil {
				restaurant = nested
			}
		}
		if restaurant.Name == "" {
			continue
		}

		items = append(items, models.RawRestaurant{
			Name:      restaurant.Name,
			Address:   ldAddressText(restaurant.Address),
			SourceURL: restaurant.URL,
		})
	}
	return items
}

// ldAddressText reads a structured-data address, which may be an object with
// streetAddress/name or missing entirely.
func ldAddressText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var address struct {
		StreetAddress string `json:"streetAddress"`
		Name          string `json:"name"`
	}
	if err := json.Unmarshal(raw, &address); err != nil {
		return ""
	}
	if address.StreetAddress != "" {
		return address.StreetAddress
	}
	return address.Name
}
