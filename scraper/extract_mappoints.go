// backend/scraper/extract_mappoints.go
package scraper

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/models"
)

// mapPointsExtractor handles the richest page vintage: a "mapPoints" JSON
// array embedded directly in the HTML text, carrying addresses, venue contact
// details, thumbnails and coordinates.
type mapPointsExtractor struct{}

func (mapPointsExtractor) Name() string { return "mapPoints" }

type mapPointThumbnail struct {
	URL string `json:"url"`
}

type mapPoint struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	EaterURL string `json:"eaterUrl"`
	URL      string `json:"url"`
	Phone    string `json:"phone"`
	Venue    *struct {
		Website   string `json:"website"`
		Phone     string `json:"phone"`
		Telephone string `json:"telephone"`
	} `json:"venue"`
	Description json.RawMessage `json:"description"`
	LedeMedia   *struct {
		Image *struct {
			Thumbnails struct {
				Horizontal *mapPointThumbnail `json:"horizontal"`
				Square     *mapPointThumbnail `json:"square"`
				Vertical   *mapPointThumbnail `json:"vertical"`
			} `json:"thumbnails"`
		} `json:"image"`
	} `json:"ledeMedia"`
	Location *struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"location"`
}

func (mapPointsExtractor) Extract(html string) []models.RawRestaurant {
	arrayText := ExtractJSONArrayByKey(html, "mapPoints")
	if arrayText == "" {
		return nil
	}

	// Decode element by element so one odd-shaped point doesn't discard the
	// whole capture.
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(arrayText), &elements); err != nil {
		return nil
	}

	var items []models.RawRestaurant
	for _, element := range elements {
		var point mapPoint
		if err := json.Unmarshal(element, &point); err != nil {
			continue
		}

		openFor, priceRange, description := parseMapDescription(point.Description)

		item := models.RawRestaurant{
			Name:            point.Name,
			Address:         point.Address,
			SourceURL:       point.EaterURL,
			Website:         point.URL,
			Phone:           point.Phone,
			OpenFor:         openFor,
			PriceRange:      priceRange,
			DescriptionText: description,
			ImageURL:        thumbnailURL(point),
		}
		if point.Venue != nil {
			if item.Website == "" {
				item.Website = point.Venue.Website
			}
			if item.Phone == "" {
				item.Phone = point.Venue.Phone
			}
			if item.Phone == "" {
				item.Phone = point.Venue.Telephone
			}
		}
		if point.Location != nil && point.Location.Latitude != nil && point.Location.Longitude != nil {
			item.Latitude = point.Location.Latitude
			item.Longitude = point.Location.Longitude
		}
		items = append(items, item)
	}

	if len(items) < config.AppConfig.Sync.MinRestaurants {
		return nil
	}
	return items
}

// thumbnailURL picks an image by shape priority: horizontal, then square,
// then vertical.
func thumbnailURL(point mapPoint) string {
	if point.LedeMedia == nil || point.LedeMedia.Image == nil {
		return ""
	}
	thumbs := point.LedeMedia.Image.Thumbnails
	for _, thumb := range []*mapPointThumbnail{thumbs.Horizontal, thumbs.Square, thumbs.Vertical} {
		if thumb != nil && thumb.URL != "" {
			return thumb.URL
		}
	}
	return ""
}

var (
	openForPrefixRe    = regexp.MustCompile(`(?i)^Open for:\s*`)
	priceRangePrefixRe = regexp.MustCompile(`(?i)^Price range:\s*`)
)

// parseMapDescription decomposes the composite description fragments:
// "Open for:" and "Price range:" fragments become dedicated fields, the rest
// joins into free text. Non-array payloads yield empty fields.
func parseMapDescription(raw json.RawMessage) (openFor, priceRange, description string) {
	if len(raw) == 0 {
		return "", "", ""
	}

	var fragments []struct {
		Plaintext string `json:"plaintext"`
	}
	if err := json.Unmarshal(raw, &fragments); err != nil {
		return "", "", ""
	}

	var lines []string
	for _, fragment := range fragments {
		part := fragment.Plaintext
		if part == "" {
			continue
		}
		if openForPrefixRe.MatchString(part) {
			openFor = strings.TrimSpace(openForPrefixRe.ReplaceAllString(part, ""))
			continue
		}
		if priceRangePrefixRe.MatchString(part) {
			priceRange = strings.TrimSpace(priceRangePrefixRe.ReplaceAllString(part, ""))
			continue
		}
		lines = append(lines, strings.TrimSpace(part))
	}

	return openFor, priceRange, strings.Join(lines, " ")
}
