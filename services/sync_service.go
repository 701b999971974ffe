// backend/services/sync_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"github.com/gewnthar/eaterhistory/backend/config"
	"github.com/gewnthar/eaterhistory/backend/models"
	"github.com/gewnthar/eaterhistory/backend/scraper"
)

const liveSnapshotID = "live"

// BuildHistory rebuilds the full version history from scratch: every archived
// capture of the list page in order, then the live page. Historical fetch or
// extraction failures skip that capture and keep going; a live-page fetch
// failure is returned to the caller, since the live snapshot is mandatory.
func BuildHistory() (*models.VersionHistory, error) {
	captures, err := scraper.FetchCaptureIndex()
	if err != nil {
		return nil, fmt.Errorf("failed to load capture index: %w", err)
	}

	history := &models.VersionHistory{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      config.AppConfig.Eater.TargetURL,
	}

	// The only state carried across the loop: the fingerprint of the most
	// recently accepted snapshot.
	lastFingerprint := ""

	for _, capture := range captures {
		snapshotURL := fmt.Sprintf(config.AppConfig.Eater.SnapshotURLPattern,
			capture.Timestamp, config.AppConfig.Eater.TargetURL)

		html, err := scraper.FetchText(snapshotURL)
		if err != nil {
			log.Printf("WARN Service: Skipping capture %s: %v\n", capture.Timestamp, err)
			continue
		}

		records := scraper.ExtractRestaurants(html)
		if len(records) < config.AppConfig.Sync.MinRestaurants {
			log.Printf("Service: Skipping capture %s: %d records, below plausibility threshold %d.\n",
				capture.Timestamp, len(records), config.AppConfig.Sync.MinRestaurants)
			continue
		}

		fingerprint := Fingerprint(records)
		if fingerprint == lastFingerprint {
			log.Printf("Service: Skipping capture %s: identical to previous accepted snapshot.\n", capture.Timestamp)
			continue
		}

		date, err := captureDate(capture.Timestamp)
		if err != nil {
			log.Printf("WARN Service: Skipping capture with bad timestamp %q: %v\n", capture.Timestamp, err)
			continue
		}

		history.Versions = append(history.Versions, models.Snapshot{
			ID:          capture.Timestamp,
			Date:        date,
			Source:      snapshotURL,
			Restaurants: records,
		})
		lastFingerprint = fingerprint
		log.Printf("Service: Accepted capture %s (%s) with %d restaurants.\n",
			capture.Timestamp, date, len(records))
	}

	// The live page is always evaluated, and only compared against the last
	// accepted historical fingerprint.
	liveHTML, err := scraper.FetchText(config.AppConfig.Eater.TargetURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch live page: %w", err)
	}

	liveRecords := scraper.ExtractRestaurants(liveHTML)
	if len(liveRecords) > 0 && Fingerprint(liveRecords) != lastFingerprint {
		history.Versions = append(history.Versions, models.Snapshot{
			ID:          liveSnapshotID,
			Date:        time.Now().UTC().Format("2006-01-02"),
			Source:      config.AppConfig.Eater.TargetURL,
			Restaurants: liveRecords,
		})
		log.Printf("Service: Accepted live snapshot with %d restaurants.\n", len(liveRecords))
	}

	log.Printf("Service: History rebuilt with %d unique versions.\n", len(history.Versions))
	return history, nil
}

// captureDate derives the calendar date from a 14-digit capture timestamp.
func captureDate(timestamp string) (string, error) {
	if len(timestamp) < 8 {
		return "", fmt.Errorf("timestamp %q too short", timestamp)
	}
	parsed, err := time.Parse("20060102", timestamp[:8])
	if err != nil {
		return "", fmt.Errorf("failed to parse capture timestamp %q: %w", timestamp, err)
	}
	return parsed.Format("2006-01-02"), nil
}
