// Package crud is the reusable paginated-query-with-audit-trail pipeline
// that every entity module composes instead of reimplementing by hand.
// An entity is described by an EntityConfig; the generic Repository,
// Service, and Handler do the rest.
package crud

// EntityConfig describes one entity to the generic pipeline: how it appears
// in routes and audit records, which columns participate in free-text
// search, which query parameters map to exact-match filter columns, its
// fixed default ordering, the display-label joins, and its natural key.
type EntityConfig struct {
	// Name is the human-readable module name used in audit entries and
	// client-facing messages, e.g. "Kelompok Nelayan".
	Name string

	// Slug is the route path segment and cache key prefix,
	// e.g. "kelompok-nelayan".
	Slug string

	// SearchColumns are the text columns the free-text search term is
	// OR-matched against, case-insensitively.
	SearchColumns []string

	// FilterColumns maps recognized query parameter names to column names
	// for exact-match filtering. Unrecognized parameters are ignored.
	FilterColumns map[string]string

	// DefaultOrder is the fixed ORDER BY clause for listings. Ordering is a
	// per-entity policy, never caller-specified.
	DefaultOrder string

	// Preloads are GORM association names loaded purely for human-readable
	// labels, never for filtering.
	Preloads []string

	// NaturalKeyColumn is the column holding the business-meaningful unique
	// identifier, empty when the entity has none.
	NaturalKeyColumn string

	// NaturalKeyLabel is the client-facing name of the natural key used in
	// duplicate messages, e.g. "NIB Kelompok".
	NaturalKeyLabel string
}

// NotFoundMessage is the client-facing message for a missing record.
func (c EntityConfig) NotFoundMessage() string {
	return c.Name + " tidak ditemukan"
}

// DuplicateMessage is the client-facing message for a duplicate natural key.
func (c EntityConfig) DuplicateMessage() string {
	label := c.NaturalKeyLabel
	if label == "" {
		label = c.Name
	}
	return label + " sudah terdaftar"
}

// CachePrefix is the key prefix under which listing/tool responses for this
// entity may be cached. Every mutation invalidates the whole prefix.
func (c EntityConfig) CachePrefix() string {
	return "perikanan:" + c.Slug + ":"
}
