package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/spoolcommon"
)

func strPtr(s string) *string { return &s }

// testSpools returns a fixed inventory. Creation times ascend in slice
// order, so index 0 is the oldest spool.
func testSpools() []*models.Spool {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	specs := []struct {
		brand    string
		material string
		modifier *string
		name     string
		hex      string
		status   spoolcommon.SpoolStatus
	}{
		{"prusament", "pla", nil, "Galaxy Black", "#1A1A2E", spoolcommon.StatusSealed},
		{"bambu", "pla", strPtr("matte"), "Charcoal", "#333333", spoolcommon.StatusInUse},
		{"bambu", "petg", nil, "Clear", "#FFFFFF", spoolcommon.StatusInUse},
		{"prusament", "petg", strPtr("carbon-fiber"), "Jet Black", "#0A0A0A", spoolcommon.StatusEmpty},
		{"polymaker", "pla", strPtr("matte"), "Army Green", "#4B5320", spoolcommon.StatusSealed},
	}

	spools := make([]*models.Spool, 0, len(specs))
	for i, sp := range specs {
		spools = append(spools, &models.Spool{
			ID:            uuid.New(),
			Brand:         sp.brand,
			Material:      sp.material,
			Modifier:      sp.modifier,
			ColorName:     sp.name,
			ColorHex:      sp.hex,
			Status:        sp.status,
			InitialWeight: 1000,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
	}
	return spools
}

func names(spools []*models.Spool) []string {
	out := make([]string, 0, len(spools))
	for _, s := range spools {
		out = append(out, s.ColorName)
	}
	return out
}

func TestFilterMatches(t *testing.T) {
	spools := testSpools()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter matches all", Filter{}, []string{"Army Green", "Jet Black", "Clear", "Charcoal", "Galaxy Black"}},
		{"all keyword matches all", Filter{Status: FilterAll, Brand: FilterAll, Material: FilterAll, Modifier: FilterAll}, []string{"Army Green", "Jet Black", "Clear", "Charcoal", "Galaxy Black"}},
		{"by status", Filter{Status: "in_use"}, []string{"Clear", "Charcoal"}},
		{"by brand", Filter{Brand: "bambu"}, []string{"Clear", "Charcoal"}},
		{"by material", Filter{Material: "petg"}, []string{"Jet Black", "Clear"}},
		{"by modifier", Filter{Modifier: "matte"}, []string{"Army Green", "Charcoal"}},
		{"combined dimensions", Filter{Brand: "bambu", Material: "pla"}, []string{"Charcoal"}},
		{"no match", Filter{Brand: "esun"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Apply(spools, tt.filter, SortMostRecent)
			assert.Equal(t, tt.want, names(view))
		})
	}
}

func TestSortOrders(t *testing.T) {
	spools := testSpools()

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortMostRecent, []string{"Army Green", "Jet Black", "Clear", "Charcoal", "Galaxy Black"}},
		{SortOldest, []string{"Galaxy Black", "Charcoal", "Clear", "Jet Black", "Army Green"}},
		// materials ascend, colors break ties within a material
		{SortByMaterial, []string{"Clear", "Jet Black", "Army Green", "Charcoal", "Galaxy Black"}},
		// hex ascends lexically
		{SortByColorFamily, []string{"Jet Black", "Galaxy Black", "Charcoal", "Army Green", "Clear"}},
		{SortByBrand, []string{"Charcoal", "Clear", "Army Green", "Galaxy Black", "Jet Black"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			view := Apply(spools, Filter{}, tt.key)
			assert.Equal(t, tt.want, names(view))
		})
	}

	// unknown key falls back to most recent first
	view := Apply(spools, Filter{}, SortKey("bogus"))
	assert.Equal(t, []string{"Army Green", "Jet Black", "Clear", "Charcoal", "Galaxy Black"}, names(view))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	spools := testSpools()
	original := names(spools)

	_ = Apply(spools, Filter{}, SortByBrand)
	_ = Apply(spools, Filter{Status: "in_use"}, SortOldest)

	assert.Equal(t, original, names(spools))
}

func TestCreatedAtTieBreaksByID(t *testing.T) {
	// same timestamp: v7 ids still order the spools deterministically
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := &models.Spool{ID: uuid.New(), Brand: "a", Material: "pla", ColorName: "First", ColorHex: "#111111", CreatedAt: ts}
	second := &models.Spool{ID: uuid.New(), Brand: "a", Material: "pla", ColorName: "Second", ColorHex: "#222222", CreatedAt: ts}

	view := Apply([]*models.Spool{first, second}, Filter{}, SortMostRecent)
	assert.Equal(t, []string{"Second", "First"}, names(view))

	view = Apply([]*models.Spool{first, second}, Filter{}, SortOldest)
	assert.Equal(t, []string{"First", "Second"}, names(view))
}

func TestSortKeyIsValid(t *testing.T) {
	for _, k := range SortKeys() {
		assert.True(t, k.IsValid(), string(k))
	}
	assert.False(t, SortKey("").IsValid())
	assert.False(t, SortKey("newest").IsValid())
}

func TestDeriveFacets(t *testing.T) {
	facets := DeriveFacets(testSpools())

	assert.Equal(t, []string{"bambu", "polymaker", "prusament"}, facets.Brands)
	assert.Equal(t, []string{"petg", "pla"}, facets.Materials)
	// duplicates collapse; spools without a modifier contribute nothing
	assert.Equal(t, []string{"carbon-fiber", "matte"}, facets.Modifiers)
}

func TestDeriveFacetsEmpty(t *testing.T) {
	facets := DeriveFacets(nil)
	assert.Empty(t, facets.Brands)
	assert.Empty(t, facets.Materials)
	assert.Empty(t, facets.Modifiers)
}
