package models

import (
	"github.com/spooltrack/spooltrack/internal/common/uuid"
)

/*
   Column    |  Type   | Collation | Nullable | Default
-------------+---------+-----------+----------+---------
 id          | uuid    |           | not null |
 brand_id    | text    |           | not null |
 material_id | text    |           | not null |
 modifier_id | text    |           | not null |
 color_name  | text    |           | not null |
 color_hex   | text    |           | not null |
 sort_order  | integer |           | not null | 0
Indexes:
    "catalog_colors_pkey" PRIMARY KEY, btree (id)
    "catalog_colors_group_idx" btree (brand_id, material_id, modifier_id, sort_order)
Foreign-key constraints:
    "catalog_colors_brand_id_fkey" FOREIGN KEY (brand_id) REFERENCES brands(id) ON DELETE CASCADE
    "catalog_colors_material_id_fkey" FOREIGN KEY (material_id) REFERENCES materials(id) ON DELETE CASCADE
    "catalog_colors_modifier_id_fkey" FOREIGN KEY (modifier_id) REFERENCES modifiers(id) ON DELETE CASCADE
*/

// CatalogColor is a curated color option for one (brand, material, modifier)
// combination. SortOrder orders colors within that group only. There is no
// uniqueness constraint on (group, color_name); duplicates are permitted.
type CatalogColor struct {
	ID         uuid.UUID `db:"id"`
	BrandID    string    `db:"brand_id"`
	MaterialID string    `db:"material_id"`
	ModifierID string    `db:"modifier_id"`
	ColorName  string    `db:"color_name"`
	ColorHex   string    `db:"color_hex"`
	SortOrder  int       `db:"sort_order"`
}
