// backend/services/fingerprint_test.go
package services

import (
	"testing"

	"github.com/gewnthar/eaterhistory/backend/models"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIgnoresNonSlugFields(t *testing.T) {
	a := []models.RestaurantRecord{
		{Slug: "bao-bei", Name: "Bao Bei", DescriptionText: "old blurb"},
		{Slug: "zarak", Name: "Zarak", Address: "2102 Main Street, Vancouver, BC"},
	}
	b := []models.RestaurantRecord{
		{Slug: "bao-bei", Name: "Bao Bei (Chinese Brasserie)", DescriptionText: "rewritten blurb"},
		{Slug: "zarak", Name: "Zarak by Afghan Kitchen"},
	}

	require.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintOrderIndependent(t *testing.T) {
	a := []models.RestaurantRecord{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}
	b := []models.RestaurantRecord{{Slug: "c"}, {Slug: "a"}, {Slug: "b"}}

	require.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintDetectsMembershipChanges(t *testing.T) {
	a := []models.RestaurantRecord{{Slug: "a"}, {Slug: "b"}}
	b := []models.RestaurantRecord{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}
	c := []models.RestaurantRecord{{Slug: "a"}, {Slug: "x"}}

	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
	require.NotEqual(t, Fingerprint(a), Fingerprint(c))
	require.NotEqual(t, Fingerprint(a), Fingerprint(nil))
}
