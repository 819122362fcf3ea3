// Package api defines the JSON wire types shared by the server and the CLI.
package api

// Brand is a filament manufacturer entry in the catalog.
type Brand struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// Material is a base material entry in the catalog.
type Material struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

// Modifier is a finish or additive variant entry in the catalog.
type Modifier struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Suffix    string `json:"suffix"`
	SortOrder int    `json:"sortOrder"`
}

// CatalogColor is a curated color for one (brand, material, modifier)
// combination.
type CatalogColor struct {
	ID         string `json:"id"`
	BrandID    string `json:"brandId"`
	MaterialID string `json:"materialId"`
	ModifierID string `json:"modifierId"`
	ColorName  string `json:"colorName"`
	ColorHex   string `json:"colorHex"`
	SortOrder  int    `json:"sortOrder"`
}

// Spool is one physical spool in the inventory. Optional fields are omitted
// when unset. Timestamps are RFC 3339.
type Spool struct {
	ID              string   `json:"id"`
	Brand           string   `json:"brand"`
	Material        string   `json:"material"`
	Modifier        *string  `json:"modifier,omitempty"`
	ColorName       string   `json:"colorName"`
	ColorHex        string   `json:"colorHex"`
	Status          string   `json:"status"`
	InitialWeight   int      `json:"initialWeight"`
	PurchaseDate    *string  `json:"purchaseDate,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	MaterialDisplay string   `json:"materialDisplay"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// SpoolFacets lists the distinct filterable values present in the current
// inventory.
type SpoolFacets struct {
	Brands    []string `json:"brands"`
	Materials []string `json:"materials"`
	Modifiers []string `json:"modifiers"`
}

// AvailableModifiers is the resolver response for a (brand, material) pair.
// An empty list means the combination has no curated catalog.
type AvailableModifiers struct {
	ModifierIDs []string `json:"modifierIds"`
}
