// backend/scraper/cdx.go
package scraper

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/models"
	"github.com/jszwec/csvutil"
)

// cdxFields is the column order requested from the capture index. The service
// answers in plain text, one space-separated row per capture.
var cdxFields = []string{"timestamp", "original", "statuscode"}

// CaptureIndexURL builds the capture-index query for the configured target
// URL: successful captures only, collapsed to minute granularity to drop
// near-duplicate timestamps.
func CaptureIndexURL() string {
	params := url.Values{}
	params.Set("url", config.AppConfig.Eater.TargetURL)
	params.Set("fl", strings.Join(cdxFields, ","))
	params.Set("filter", "statuscode:200")
	params.Set("collapse", "timestamp:6")
	params.Set("from", config.AppConfig.Eater.FromYear)
	return config.AppConfig.Eater.CdxBaseURL + "?" + params.Encode()
}

// FetchCaptureIndex retrieves and decodes the capture index for the target
// URL, keeping only rows with a well-formed 14-digit timestamp and a 200
// status. The rows come back in the service's chronological order.
func FetchCaptureIndex() ([]models.Capture, error) {
	indexURL := CaptureIndexURL()
	log.Printf("Scraper: Fetching capture index from %s\n", indexURL)

	body, err := FetchText(indexURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch capture index: %w", err)
	}

	rows, err := ParseCaptureIndex(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	log.Printf("Scraper: Capture index returned %d usable captures.\n", len(rows))
	return rows, nil
}

// ParseCaptureIndex decodes the space-separated capture listing into Capture
// rows, dropping malformed or non-200 entries.
func ParseCaptureIndex(reader io.Reader) ([]models.Capture, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = ' '

	decoder, err := csvutil.NewDecoder(csvReader, cdxFields...)
	if err != nil {
		return nil, fmt.Errorf("failed to create capture index decoder: %w", err)
	}

	var all []models.Capture
	if err := decoder.Decode(&all); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode capture index rows: %w", err)
	}

	var rows []models.Capture
	for _, row := range all {
		if len(row.Timestamp) != 14 || row.StatusCode != "200" {
			log.Printf("WARN Scraper: Skipping malformed capture index row: %+v\n", row)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
