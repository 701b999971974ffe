// backend/database/version_store.go
package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gewnthar/eaterhistory/backend/models"
)

// SaveVersionHistory persists the rebuilt history with a "clear and load"
// strategy: all rows for this list source are replaced in one transaction,
// mirroring how the pipeline itself rebuilds the history from scratch on
// every run. fingerprints must be parallel to history.Versions.
func SaveVersionHistory(history *models.VersionHistory, fingerprints []string) error {
	if DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if len(fingerprints) != len(history.Versions) {
		return fmt.Errorf("fingerprint count %d does not match version count %d",
			len(fingerprints), len(history.Versions))
	}

	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for version history: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("DELETE FROM version_restaurants WHERE list_source = ?", history.Source)
	if err != nil {
		return fmt.Errorf("failed to delete old restaurant rows for %s: %w", history.Source, err)
	}
	_, err = tx.Exec("DELETE FROM list_versions WHERE list_source = ?", history.Source)
	if err != nil {
		return fmt.Errorf("failed to delete old versions for %s: %w", history.Source, err)
	}
	log.Printf("Database: Cleared stored history for source: %s\n", history.Source)

	versionStmt, err := tx.Prepare(`
		INSERT INTO list_versions (
			list_source, capture_id, capture_date, source_url,
			fingerprint, restaurant_count, position, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare version insert statement: %w", err)
	}
	defer versionStmt.Close()

	restaurantStmt, err := tx.Prepare(`
		INSERT INTO version_restaurants (
			list_source, capture_id, slug, name, address, source_url,
			website, phone, open_for, price_range, description_text,
			image_url, latitude, longitude, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare restaurant insert statement: %w", err)
	}
	defer restaurantStmt.Close()

	for position, version := range history.Versions {
		_, err := versionStmt.Exec(
			history.Source, version.ID, version.Date, version.Source,
			fingerprints[position], len(version.Restaurants), position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert version %s: %w", version.ID, err)
		}

		for i, r := range version.Restaurants {
			var lat, lng sql.NullFloat64
			if r.Latitude != nil && r.Longitude != nil {
				lat = sql.NullFloat64{Float64: *r.Latitude, Valid: true}
				lng = sql.NullFloat64{Float64: *r.Longitude, Valid: true}
			}

			_, err := restaurantStmt.Exec(
				history.Source, version.ID, r.Slug, r.Name, r.Address, r.SourceURL,
				r.Website, r.Phone, r.OpenFor, r.PriceRange, r.DescriptionText,
				r.ImageURL, lat, lng, i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert restaurant '%s' for version %s: %w", r.Slug, version.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit version history transaction: %w", err)
	}

	log.Printf("Database: Saved %d versions for source: %s\n", len(history.Versions), history.Source)
	return nil
}

// GetVersions returns the stored version summaries for a list source in
// capture order.
func GetVersions(listSource string) ([]models.VersionSummary, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := DB.Query(`
		SELECT capture_id, capture_date, source_url, fingerprint, restaurant_count
		FROM list_versions
		WHERE list_source = ?
		ORDER BY position
	`, listSource)
	if err != nil {
		return nil, fmt.Errorf("failed to query versions for %s: %w", listSource, err)
	}
	defer rows.Close()

	var versions []models.VersionSummary
	for rows.Next() {
		var v models.VersionSummary
		err := rows.Scan(&v.ID, &v.Date, &v.Source, &v.Fingerprint, &v.RestaurantCount)
		if err != nil {
			log.Printf("ERROR Database: Failed to scan version row: %v", err)
			continue
		}
		versions = append(versions, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating version rows: %w", err)
	}
	return versions, nil
}

// GetRestaurantsForVersion returns the records of one stored version in their
// persisted (name-sorted) order.
func GetRestaurantsForVersion(listSource, captureID string) ([]models.RestaurantRecord, error) {
	if DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	rows, err := DB.Query(`
		SELECT slug, name, address, source_url, website, phone, open_for,
		       price_range, description_text, image_url, latitude, longitude
		FROM version_restaurants
		WHERE list_source = ? AND capture_id = ?
		ORDER BY position
	`, listSource, captureID)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants for version %s: %w", captureID, err)
	}
	defer rows.Close()

	var records []models.RestaurantRecord
	for rows.Next() {
		var r models.RestaurantRecord
		var lat, lng sql.NullFloat64
		err := rows.Scan(
			&r.Slug, &r.Name, &r.Address, &r.SourceURL, &r.Website, &r.Phone,
			&r.OpenFor, &r.PriceRange, &r.DescriptionText, &r.ImageURL, &lat, &lng,
		)
		if err != nil {
			log.Printf("ERROR Database: Failed to scan restaurant row: %v", err)
			continue
		}
		if lat.Valid && lng.Valid {
			r.Latitude = &lat.Float64
			r.Longitude = &lng.Float64
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurant rows: %w", err)
	}
	return records, nil
}

// GetLatestFingerprint returns the fingerprint of the last stored version for
// a list source, or "" when none is stored yet.
func GetLatestFingerprint(listSource string) (string, error) {
	if DB == nil {
		return "", fmt.Errorf("database connection is not initialized")
	}

	var fingerprint string
	err := DB.QueryRow(`
		SELECT fingerprint FROM list_versions
		WHERE list_source = ?
		ORDER BY position DESC LIMIT 1
	`, listSource).Scan(&fingerprint)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to query latest fingerprint for %s: %w", listSource, err)
	}
	return fingerprint, nil
}
