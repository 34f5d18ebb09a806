// Package schema describes the shape of the relations flowing through the
// planner: an ordered list of named, typed columns.
package schema

import (
	"github.com/driftlake/driftlake/pkg/engine/internal/types"
)

// ColumnSchema describes a single column of a relation.
type ColumnSchema struct {
	// Name of the column.
	Name string
	// Type of the values inside the column.
	Type types.ValueType
}

// Schema describes the output of a plan node. Column order is significant.
type Schema struct {
	Columns []ColumnSchema
}

// FromColumns creates a schema from the given columns.
func FromColumns(columns []ColumnSchema) Schema {
	return Schema{Columns: columns}
}

// ColumnNames returns the names of the schema's columns, in schema order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the column with the given name, and whether it exists.
func (s Schema) Column(name string) (ColumnSchema, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnSchema{}, false
}
