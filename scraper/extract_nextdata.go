// backend/scraper/extract_nextdata.go
package scraper

import (
	"encoding/json"
	"strings"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/models"
)

// nextDataExtractor handles the framework-hydration vintage: a
// script#__NEXT_DATA__ payload whose third hydration response holds the
// restaurant points under a fixed nested path.
type nextDataExtractor struct{}

func (nextDataExtractor) Name() string { return "__NEXT_DATA__" }

const (
	nextDataMarker   = `<script id="__NEXT_DATA__" type="application/json">`
	scriptCloseToken = "</script>"
	// Index of the hydration response that carries the map node in this page
	// generation.
	hydrationResponseIndex = 2
)

type nextPoint struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	URL     string `json:"url"`
	Venue   *struct {
		Website string `json:"website"`
	} `json:"venue"`
}

func (nextDataExtractor) Extract(html string) []models.RawRestaurant {
	start := strings.Index(html, nextDataMarker)
	if start == -1 {
		return nil
	}
	rest := html[start+len(nextDataMarker):]
	end := strings.Index(rest, scriptCloseToken)
	if end == -1 {
		return nil
	}

	var payload struct {
		Props struct {
			PageProps struct {
				Hydration struct {
					Responses []json.RawMessage `json:"responses"`
				} `json:"hydration"`
			} `json:"pageProps"`
		} `json:"props"`
	}
	if err := json.Unmarshal([]byte(rest[:end]), &payload); err != nil {
		return nil
	}

	responses := payload.Props.PageProps.Hydration.Responses
	if len(responses) <= hydrationResponseIndex {
		return nil
	}

	var response struct {
		Data struct {
			Node struct {
				MapPoints []json.RawMessage `json:"mapPoints"`
			} `json:"node"`
		} `json:"data"`
	}
	if err := json.Unmarshal(responses[hydrationResponseIndex], &response); err != nil {
		return nil
	}

	points := response.Data.Node.MapPoints
	var items []models.RawRestaurant
	for _, pointRaw := range points {
		var point nextPoint
		if err := json.Unmarshal(pointRaw, &point); err != nil {
			continue
		}
		item := models.RawRestaurant{
			Name:      point.Name,
			Address:   point.Address,
			SourceURL: point.URL,
		}
		if point.Venue != nil {
			item.Website = point.Venue.Website
		}
		items = append(items, item)
	}

	if len(items) < config.AppConfig.Sync.MinRestaurants {
		return nil
	}
	return items
}
