// backend/normalizer/canonical.go
package normalizer

// CanonicalIdentity is the single authoritative (slug, name) pair an entity
// resolves to, overriding source-specific variants.
type CanonicalIdentity struct {
	Slug string
	Name string
}

// canonicalRestaurants maps slugified raw names onto their canonical
// identity. It covers restaurants the source renamed or rebranded between
// captures, plus ones it listed under two labels at once.
var canonicalRestaurants = map[string]CanonicalIdentity{
	"hawksworth-bar":                 {Slug: "hawksworth-restaurant", Name: "Hawksworth Restaurant"},
	"homer-st-cafe-and-bar":          {Slug: "homer-street-cafe-and-bar", Name: "Homer Street Cafe and Bar"},
	"maruhachi-ra-men-canada-westend": {Slug: "maruhachi-ra-men", Name: "Maruhachi Ra-men"},
	"pidgin-restaurant":              {Slug: "pidgin", Name: "Pidgin"},
	"suyo-modern-peruvian":           {Slug: "suyo", Name: "Suyo"},
}

// phoneOverrides supplies phone numbers for entities whose extracted data is
// known to be wrong or missing, keyed by final canonical slug. An override
// wins over whatever the page carried.
var phoneOverrides = map[string]string{
	"bar-tartare": "(604) 893-7832",
	"the-515-bar": "(604) 428-8226",
}

// ResolveIdentity maps a raw display name to its canonical (slug, name) pair.
// Unrecognized names pass through with their own slugified form.
func ResolveIdentity(rawName string) CanonicalIdentity {
	rawSlug := Slugify(rawName)
	if canonical, ok := canonicalRestaurants[rawSlug]; ok {
		return canonical
	}
	return CanonicalIdentity{Slug: rawSlug, Name: rawName}
}

// PhoneOverride returns the authoritative phone number for a canonical slug,
// or "" when no override exists.
func PhoneOverride(slug string) string {
	return phoneOverrides[slug]
}
