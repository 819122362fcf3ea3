package models

/*
   Column   |  Type   | Collation | Nullable | Default
------------+---------+-----------+----------+---------
 id         | text    |           | not null |
 name       | text    |           | not null |
 suffix     | text    |           | not null | ''
 sort_order | integer |           | not null | 0
Indexes:
    "modifiers_pkey" PRIMARY KEY, btree (id)
Check constraints:
    "modifiers_id_check" CHECK (id ~ '^[a-z0-9][a-z0-9-]*$'::text)
Referenced by:
    TABLE "catalog_colors" CONSTRAINT "catalog_colors_modifier_id_fkey"
        FOREIGN KEY (modifier_id) REFERENCES modifiers(id) ON DELETE CASCADE
*/

// Modifier is a material finish or additive variant such as Silk or Carbon
// Fiber. Suffix is the short display tag ("CF") and may be empty.
type Modifier struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Suffix    string `db:"suffix"`
	SortOrder int    `db:"sort_order"`
}
