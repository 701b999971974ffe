// backend/scraper/extractor_test.go
package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.ApplyDefaults()
	os.Exit(m.Run())
}

// mapPointsHTML builds a page of the embedded-array vintage with count
// restaurants named "Restaurant 000" onward.
func mapPointsHTML(count int) string {
	points := make([]string, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, fmt.Sprintf(`{
			"name": "Restaurant %03d",
			"address": "%d Main Street, Vancouver, BC",
			"eaterUrl": "https://www.eater.com/maps/r-%d",
			"venue": {"website": "https://r%d.example.com", "telephone": "(604) 555-%04d"},
			"description": [
				{"plaintext": "Open for: Dinner"},
				{"plaintext": "Price range: $$"},
				{"plaintext": "A neighbourhood favourite."}
			],
			"ledeMedia": {"image": {"thumbnails": {
				"square": {"url": "https://img.example.com/%d-sq.jpg"},
				"horizontal": {"url": "https://img.example.com/%d-h.jpg"}
			}}},
			"location": {"latitude": 49.28, "longitude": -123.12}
		}`, i, i, i, i, i, i, i))
	}
	return `<html><body><script>window.__APP__ = {"mapPoints":[` +
		strings.Join(points, ",") + `]};</script></body></html>`
}

// ldJSONHTML builds a page of the structured-metadata vintage.
func ldJSONHTML(count int) string {
	elements := make([]string, 0, count)
	for i := 0; i < count; i++ {
		elements = append(elements, fmt.Sprintf(
			`{"item": {"name": "Restaurant %03d", "url": "https://www.eater.com/maps/r-%d", "address": {"streetAddress": "%d Water Street, Vancouver, BC"}}}`,
			i, i, i))
	}
	return `<html><head>` +
		`<script type="application/ld+json">not json at all</script>` +
		`<script type="application/ld+json">{"@type":"ItemList","itemListElement":[` +
		strings.Join(elements, ",") + `]}</script>` +
		`</head><body></body></html>`
}

// nextDataHTML builds a page of the framework-hydration vintage.
func nextDataHTML(count int) string {
	points := make([]string, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, fmt.Sprintf(
			`{"name": "Restaurant %03d", "address": "%d Granville Street, Vancouver, BC", "url": "https://www.eater.com/maps/r-%d", "venue": {"website": "https://r%d.example.com"}}`,
			i, i, i, i))
	}
	return `<html><body><script id="__NEXT_DATA__" type="application/json">` +
		`{"props":{"pageProps":{"hydration":{"responses":[{},{},{"data":{"node":{"mapPoints":[` +
		strings.Join(points, ",") + `]}}}]}}}}` +
		`</script></body></html>`
}

func TestExtractFromMapPoints(t *testing.T) {
	records := ExtractRestaurants(mapPointsHTML(30))
	require.Len(t, records, 30)

	first := records[0]
	require.Equal(t, "Restaurant 000", first.Name)
	require.Equal(t, "restaurant-000", first.Slug)
	require.Equal(t, "0 Main Street, Vancouver, BC", first.Address)
	require.Equal(t, "https://www.eater.com/maps/r-0", first.SourceURL)
	require.Equal(t, "https://r0.example.com", first.Website)
	require.Equal(t, "(604) 555-0000", first.Phone)
	require.Equal(t, "Dinner", first.OpenFor)
	require.Equal(t, "$$", first.PriceRange)
	require.Equal(t, "A neighbourhood favourite.", first.DescriptionText)
	// Horizontal thumbnails beat square ones.
	require.Equal(t, "https://img.example.com/0-h.jpg", first.ImageURL)
	require.NotNil(t, first.Latitude)
	require.NotNil(t, first.Longitude)
}

func TestExtractBelowPlausibilityThreshold(t *testing.T) {
	require.Nil(t, ExtractRestaurants(mapPointsHTML(29)))
	require.Len(t, ExtractRestaurants(mapPointsHTML(30)), 30)
}

func TestExtractFromLdJSON(t *testing.T) {
	records := ExtractRestaurants(ldJSONHTML(32))
	require.Len(t, records, 32)

	first := records[0]
	require.Equal(t, "Restaurant 000", first.Name)
	require.Equal(t, "0 Water Street, Vancouver, BC", first.Address)
	require.Equal(t, "https://www.eater.com/maps/r-0", first.SourceURL)
	// This vintage carries no contact or media fields.
	require.Empty(t, first.Website)
	require.Empty(t, first.Phone)
	require.Empty(t, first.ImageURL)
}

func TestExtractFromNextData(t *testing.T) {
	records := ExtractRestaurants(nextDataHTML(31))
	require.Len(t, records, 31)

	first := records[0]
	require.Equal(t, "Restaurant 000", first.Name)
	require.Equal(t, "0 Granville Street, Vancouver, BC", first.Address)
	require.Equal(t, "https://www.eater.com/maps/r-0", first.SourceURL)
	require.Equal(t, "https://r0.example.com", first.Website)
}

func TestExtractPriorityOrder(t *testing.T) {
	// A page carrying both encodings resolves through mapPoints, the richer
	// format: phone numbers only exist there.
	combined := mapPointsHTML(30) + nextDataHTML(30)
	records := ExtractRestaurants(combined)
	require.Len(t, records, 30)
	require.Equal(t, "(604) 555-0000", records[0].Phone)
}

func TestExtractUnrecognizedPage(t *testing.T) {
	require.Nil(t, ExtractRestaurants("<html><body><p>404</p></body></html>"))
	require.Nil(t, ExtractRestaurants(""))
}

func TestParseMapDescription(t *testing.T) {
	raw := json.RawMessage(`[
		{"plaintext": "Open for: Brunch, Dinner"},
		{"plaintext": "Price range: $$$"},
		{"plaintext": "First line."},
		{"plaintext": "Second line."}
	]`)
	openFor, priceRange, description := parseMapDescription(raw)
	require.Equal(t, "Brunch, Dinner", openFor)
	require.Equal(t, "$$$", priceRange)
	require.Equal(t, "First line. Second line.", description)

	// Non-array payloads yield empty fields rather than an error.
	openFor, priceRange, description = parseMapDescription(json.RawMessage(`"plain string"`))
	require.Empty(t, openFor)
	require.Empty(t, priceRange)
	require.Empty(t, description)
}

func TestThumbnailPriority(t *testing.T) {
	var point mapPoint
	err := json.Unmarshal([]byte(`{
		"ledeMedia": {"image": {"thumbnails": {
			"vertical": {"url": "v.jpg"},
			"square": {"url": "s.jpg"}
		}}}
	}`), &point)
	require.NoError(t, err)
	require.Equal(t, "s.jpg", thumbnailURL(point))

	point = mapPoint{}
	err = json.Unmarshal([]byte(`{"ledeMedia": {"image": {"thumbnails": {"vertical": {"url": "v.jpg"}}}}}`), &point)
	require.NoError(t, err)
	require.Equal(t, "v.jpg", thumbnailURL(point))

	require.Empty(t, thumbnailURL(mapPoint{}))
}
