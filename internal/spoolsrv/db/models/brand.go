// Package models defines the row types for the inventory schema. Each type
// documents its table DDL; the schema is small enough that it is created
// once by hand rather than through a migration tool.
package models

/*
   Column   |  Type   | Collation | Nullable | Default
------------+---------+-----------+----------+---------
 id         | text    |           | not null |
 name       | text    |           | not null |
 sort_order | integer |           | not null | 0
Indexes:
    "brands_pkey" PRIMARY KEY, btree (id)
    "brands_name_key" UNIQUE CONSTRAINT, btree (name)
Check constraints:
    "brands_id_check" CHECK (id ~ '^[a-z0-9][a-z0-9-]*$'::text)
Referenced by:
    TABLE "catalog_colors" CONSTRAINT "catalog_colors_brand_id_fkey"
        FOREIGN KEY (brand_id) REFERENCES brands(id) ON DELETE CASCADE
*/

// Brand is a filament manufacturer. The id is a caller-supplied lowercase
// slug and is immutable after creation.
type Brand struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
}
