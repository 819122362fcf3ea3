// Package spoolcommon holds the shared domain types and constants used by
// the inventory service: spool status values, version identifiers, and the
// timestamp format persisted for spool records.
package spoolcommon

const ServerVersion = "0.1.0"
const ApiVersion = "0.1.0-alpha.1"

// SpoolStatus is the lifecycle state of a spool. The nominal progression is
// sealed -> in_use -> empty, but transitions are not enforced: any status may
// be set at any time via update.
type SpoolStatus string

const (
	StatusSealed SpoolStatus = "sealed"
	StatusInUse  SpoolStatus = "in_use"
	StatusEmpty  SpoolStatus = "empty"
)

// SpoolStatuses lists the valid status values in lifecycle order.
func SpoolStatuses() []SpoolStatus {
	return []SpoolStatus{StatusSealed, StatusInUse, StatusEmpty}
}

// IsValid reports whether s is one of the known status values.
func (s SpoolStatus) IsValid() bool {
	switch s {
	case StatusSealed, StatusInUse, StatusEmpty:
		return true
	}
	return false
}

func (s SpoolStatus) String() string {
	return string(s)
}
