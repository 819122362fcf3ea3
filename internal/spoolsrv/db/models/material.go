package models

/*
   Column    |  Type   | Collation | Nullable | Default
-------------+---------+-----------+----------+---------
 id          | text    |           | not null |
 name        | text    |           | not null |
 description | text    |           |          |
 sort_order  | integer |           | not null | 0
Indexes:
    "materials_pkey" PRIMARY KEY, btree (id)
Check constraints:
    "materials_id_check" CHECK (id ~ '^[a-z0-9][a-z0-9-]*$'::text)
Referenced by:
    TABLE "catalog_colors" CONSTRAINT "catalog_colors_material_id_fkey"
        FOREIGN KEY (material_id) REFERENCES materials(id) ON DELETE CASCADE
*/

// Material is a base filament material such as PLA or PETG.
type Material struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	SortOrder   int    `db:"sort_order"`
}
