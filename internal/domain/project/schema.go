package project

// Category is one of the five project categories the agency tracks.
type Category string

const (
	CategoryWebsite  Category = "website"
	CategoryApp      Category = "app"
	CategoryGraphics Category = "graphics"
	CategorySEO      Category = "seo"
	CategoryContent  Category = "content"
)

// Schema describes a project category: which collection its records live
// in, which statuses its workflow uses, and which record fields are
// array-valued for filtering purposes. The five category schemas differ
// only in this declaration; all control flow lives in Repository.
type Schema[E any] struct {
	Category   Category
	Collection string

	// Statuses is the category's enumerated status set, for form rendering.
	// The repository does not validate against it; a write with a status
	// outside the set is surfaced only if the store rejects it.
	Statuses      []Status
	DefaultStatus Status

	// ArrayFields names the record fields that filter by membership
	// rather than equality.
	ArrayFields []string
}

// IsArrayField reports whether the named field filters by membership.
func (s Schema[E]) IsArrayField(field string) bool {
	for _, f := range s.ArrayFields {
		if f == field {
			return true
		}
	}
	return false
}
