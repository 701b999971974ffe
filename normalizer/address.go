// backend/normalizer/address.go
package normalizer

import (
	"regexp"
	"strings"
)

// defaultCity is injected when an address survives cleanup with a bare
// street + province and no city segment. The list covers one region only.
const defaultCity = "Vancouver"

var (
	provinceNameRe = regexp.MustCompile(`(?i)\bBritish\s+Columbia\b`)
	countryRe      = regexp.MustCompile(`(?i),?\s*Canada\b`)
	// Canadian postal codes, e.g. "V6G 2J6" or "V6G2J6". The leading-letter
	// class excludes D, F, I, O, Q, U and W/Z per the national convention.
	postalCodeRe = regexp.MustCompile(`(?i)\b[ABCEGHJ-NPRSTVXY]\d[ABCEGHJ-NPRSTV-Z][ -]?\d[ABCEGHJ-NPRSTV-Z]\d\b`)

	multiSpaceRe       = regexp.MustCompile(`\s{2,}`)
	spaceBeforeCommaRe = regexp.MustCompile(`\s+,`)
	commaRunRe         = regexp.MustCompile(`,{2,}`)
	spacedCommaPairRe  = regexp.MustCompile(`,\s*,`)

	// "Vancouver BC" -> "Vancouver, BC"
	cityProvinceRe  = regexp.MustCompile(`\b([A-Za-z.'-]+(?:\s+[A-Za-z.'-]+)*)\s+BC\b`)
	doubleCommaBCRe = regexp.MustCompile(`,\s*,\s*BC\b`)
	trailingSepRe   = regexp.MustCompile(`[\s,]+$`)
	bareProvinceRe  = regexp.MustCompile(`(?i),\s*BC$`)
)

// NormalizeAddress rewrites a raw address string into the one consistent
// regional format used across the whole history: province abbreviated,
// country and postal code stripped, separators cleaned up, and the default
// city injected when no city segment survived. Idempotent and total; empty
// input yields empty output.
func NormalizeAddress(raw string) string {
	out := strings.TrimSpace(raw)
	if out == "" {
		return ""
	}

	out = provinceNameRe.ReplaceAllString(out, "BC")
	out = countryRe.ReplaceAllString(out, "")
	out = postalCodeRe.ReplaceAllString(out, "")

	// Cleanup separators and spacing left behind by the removals.
	out = multiSpaceRe.ReplaceAllString(out, " ")
	out = spaceBeforeCommaRe.ReplaceAllString(out, ",")
	out = commaRunRe.ReplaceAllString(out, ",")
	out = spacedCommaPairRe.ReplaceAllString(out, ", ")

	out = cityProvinceRe.ReplaceAllString(out, "${1}, BC")
	out = doubleCommaBCRe.ReplaceAllString(out, ", BC")
	out = trailingSepRe.ReplaceAllString(out, "")

	// A single comma ending in ", BC" means only street + province survived;
	// e.g. "3388 Main Street, BC" -> "3388 Main Street, Vancouver, BC".
	if bareProvinceRe.MatchString(out) && strings.Count(out, ",") == 1 {
		out = bareProvinceRe.ReplaceAllString(out, ", "+defaultCity+", BC")
	}

	return strings.TrimSpace(out)
}
