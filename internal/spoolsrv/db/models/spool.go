package models

import (
	"time"

	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/spoolcommon"
)

/*
     Column     |           Type           | Collation | Nullable | Default
----------------+--------------------------+-----------+----------+---------
 id             | uuid                     |           | not null |
 brand          | text                     |           | not null |
 material       | text                     |           | not null |
 modifier       | text                     |           |          |
 color_name     | text                     |           | not null |
 color_hex      | text                     |           | not null |
 status         | text                     |           | not null |
 initial_weight | integer                  |           | not null |
 purchase_date  | text                     |           |          |
 price          | double precision         |           |          |
 notes          | text                     |           |          |
 created_at     | timestamp with time zone |           | not null | now()
 updated_at     | timestamp with time zone |           | not null | now()
Indexes:
    "spools_pkey" PRIMARY KEY, btree (id)
    "spools_created_at_idx" btree (created_at DESC)
Check constraints:
    "spools_color_hex_check" CHECK (color_hex ~ '^#[0-9A-Fa-f]{6}$'::text)
    "spools_status_check" CHECK (status = ANY (ARRAY['sealed', 'in_use', 'empty']))
    "spools_initial_weight_check" CHECK (initial_weight > 0)
*/

// Spool is one physical filament spool in the inventory. Brand, material,
// and modifier are free-text snapshots of the catalog values at creation
// time, not foreign keys: catalog edits must never retroactively alter
// existing spools.
type Spool struct {
	ID            uuid.UUID               `db:"id"`
	Brand         string                  `db:"brand"`
	Material      string                  `db:"material"`
	Modifier      *string                 `db:"modifier"`
	ColorName     string                  `db:"color_name"`
	ColorHex      string                  `db:"color_hex"`
	Status        spoolcommon.SpoolStatus `db:"status"`
	InitialWeight int                     `db:"initial_weight"`
	PurchaseDate  *string                 `db:"purchase_date"`
	Price         *float64                `db:"price"`
	Notes         *string                 `db:"notes"`
	CreatedAt     time.Time               `db:"created_at"`
	UpdatedAt     time.Time               `db:"updated_at"`
}
