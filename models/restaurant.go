// backend/models/restaurant.go
package models

// RawRestaurant holds the fields one of the format extractors managed to pull
// out of a page capture, before any normalization. Every string field may be
// empty; coordinates are nil unless the source format supplied both.
type RawRestaurant struct {
	Name            string
	Address         string
	SourceURL       string
	Website         string
	Phone           string
	OpenFor         string
	PriceRange      string
	DescriptionText string
	ImageURL        string
	Latitude        *float64
	Longitude       *float64
}

// RestaurantRecord is the canonical, post-normalization restaurant entry.
// Slug is the stable entity key used across the whole version history and is
// unique within one snapshot.
type RestaurantRecord struct {
	Name            string   `json:"name" db:"name"`
	Slug            string   `json:"slug" db:"slug"`
	Address         string   `json:"address" db:"address"`
	SourceURL       string   `json:"sourceUrl" db:"source_url"`
	Website         string   `json:"website" db:"website"`
	Phone           string   `json:"phone" db:"phone"`
	OpenFor         string   `json:"openFor" db:"open_for"`
	PriceRange      string   `json:"priceRange" db:"price_range"`
	DescriptionText string   `json:"descriptionText" db:"description_text"`
	ImageURL        string   `json:"imageUrl" db:"image_url"`
	Latitude        *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude       *float64 `json:"longitude,omitempty" db:"longitude"`
}
