package types

import "fmt"

// ColumnType denotes the kind of column a [ColumnRef] references.
type ColumnType uint32

const (
	// ColumnTypeInvalid indicates an invalid column type.
	ColumnTypeInvalid ColumnType = iota

	// ColumnTypeTable represents a column that originates from a table
	// relation and is visible to the caller.
	ColumnTypeTable

	// ColumnTypeGenerated represents a synthetic column injected during plan
	// resolution. Generated columns carry registrar-issued names and must be
	// projected away before a resolved plan is returned.
	ColumnTypeGenerated
)

// String returns the human-readable representation of the column type.
func (t ColumnType) String() string {
	switch t {
	case ColumnTypeTable:
		return "table"
	case ColumnTypeGenerated:
		return "generated"
	default:
		return typeInvalid
	}
}

// A ColumnRef references a column within a relation by name.
type ColumnRef struct {
	Column string     // Name of the column being referenced.
	Type   ColumnType // Type of the column being referenced.
}

// String returns the string representation of the column reference, combining
// the column type and the column name with a dot.
func (c ColumnRef) String() string {
	return fmt.Sprintf("%s.%s", c.Type, c.Column)
}
