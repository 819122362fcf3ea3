// Package listview derives filtered and sorted views of an in-memory spool
// collection, plus the facet values available for filtering. All functions
// are pure: the input slice is never mutated and the same inputs always
// produce the same output.
package listview

import (
	"sort"

	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
)

// FilterAll matches every value of a filter dimension.
const FilterAll = "all"

// Filter selects spools by exact match on each dimension. A dimension set
// to "all" or left empty matches everything. Modifier matches against the
// spool's modifier text, with nil treated as the empty string.
type Filter struct {
	Status   string
	Brand    string
	Material string
	Modifier string
}

// SortKey selects the ordering of a view.
type SortKey string

const (
	SortMostRecent    SortKey = "most-recent"
	SortOldest        SortKey = "oldest"
	SortByMaterial    SortKey = "by-material"
	SortByColorFamily SortKey = "by-color-family"
	SortByBrand       SortKey = "by-brand"
)

// SortKeys lists the supported sort keys.
func SortKeys() []SortKey {
	return []SortKey{SortMostRecent, SortOldest, SortByMaterial, SortByColorFamily, SortByBrand}
}

// IsValid reports whether k is a supported sort key.
func (k SortKey) IsValid() bool {
	switch k {
	case SortMostRecent, SortOldest, SortByMaterial, SortByColorFamily, SortByBrand:
		return true
	}
	return false
}

func matchDimension(filterValue, spoolValue string) bool {
	if filterValue == "" || filterValue == FilterAll {
		return true
	}
	return filterValue == spoolValue
}

func modifierValue(s *models.Spool) string {
	if s.Modifier == nil {
		return ""
	}
	return *s.Modifier
}

// Matches reports whether the spool passes every dimension of the filter.
func (f Filter) Matches(s *models.Spool) bool {
	return matchDimension(f.Status, s.Status.String()) &&
		matchDimension(f.Brand, s.Brand) &&
		matchDimension(f.Material, s.Material) &&
		matchDimension(f.Modifier, modifierValue(s))
}

// byCreated orders by creation time; ids are time ordered and break ties.
func byCreated(a, b *models.Spool) int {
	if a.CreatedAt.Before(b.CreatedAt) {
		return -1
	}
	if a.CreatedAt.After(b.CreatedAt) {
		return 1
	}
	return uuid.Compare(a.ID, b.ID)
}

func byStringPair(a1, b1, a2, b2 string) bool {
	if a1 != b1 {
		return a1 < b1
	}
	return a2 < b2
}

// Apply returns a new slice containing the spools that pass the filter,
// ordered by the sort key. An unknown sort key falls back to most recent
// first.
func Apply(spools []*models.Spool, filter Filter, key SortKey) []*models.Spool {
	view := make([]*models.Spool, 0, len(spools))
	for _, s := range spools {
		if filter.Matches(s) {
			view = append(view, s)
		}
	}

	var less func(a, b *models.Spool) bool
	switch key {
	case SortOldest:
		less = func(a, b *models.Spool) bool { return byCreated(a, b) < 0 }
	case SortByMaterial:
		less = func(a, b *models.Spool) bool { return byStringPair(a.Material, b.Material, a.ColorName, b.ColorName) }
	case SortByColorFamily:
		less = func(a, b *models.Spool) bool { return byStringPair(a.ColorHex, b.ColorHex, a.ColorName, b.ColorName) }
	case SortByBrand:
		less = func(a, b *models.Spool) bool { return byStringPair(a.Brand, b.Brand, a.ColorName, b.ColorName) }
	default: // SortMostRecent
		less = func(a, b *models.Spool) bool { return byCreated(a, b) > 0 }
	}

	sort.SliceStable(view, func(i, j int) bool { return less(view[i], view[j]) })
	return view
}

// Facets holds the distinct filterable values present in the current
// inventory. Values come from the spool set itself, not the catalog tables,
// so they reflect only what is actually on the shelf.
type Facets struct {
	Brands    []string `json:"brands"`
	Materials []string `json:"materials"`
	Modifiers []string `json:"modifiers"`
}

func distinctSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// DeriveFacets computes the facet values from the full spool collection.
// The lists are ascending and case-sensitive; spools without a modifier
// contribute nothing to the modifier facet.
func DeriveFacets(spools []*models.Spool) Facets {
	brands := make([]string, 0, len(spools))
	materials := make([]string, 0, len(spools))
	modifiers := make([]string, 0, len(spools))
	for _, s := range spools {
		brands = append(brands, s.Brand)
		materials = append(materials, s.Material)
		modifiers = append(modifiers, modifierValue(s))
	}
	return Facets{
		Brands:    distinctSorted(brands),
		Materials: distinctSorted(materials),
		Modifiers: distinctSorted(modifiers),
	}
}
