package logical

import (
	"fmt"

	"github.com/driftlake/driftlake/pkg/engine/internal/types"
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// Unnest represents a plan node that expands a list-valued column into one
// output row per list element, replicating the values of all other columns.
// A row whose list is empty produces no output rows.
type Unnest struct {
	// input is the child plan node providing rows to expand.
	input Plan
	// column is the name of the list-valued column to expand.
	column string
	// unnested is the schema with the expanded column type.
	unnested schema.Schema
}

var _ Plan = (*Unnest)(nil)

// newUnnest creates a new Unnest node. The named column must exist in the
// input schema and hold a list-valued type.
func newUnnest(input Plan, column string) (*Unnest, error) {
	col, ok := input.Schema().Column(column)
	if !ok {
		return nil, fmt.Errorf("column %q not found in input schema", column)
	}
	element := col.Type.ElementType()
	if element == types.ValueTypeInvalid {
		return nil, fmt.Errorf("column %q must be list-valued to unnest, got %s", column, col.Type)
	}

	columns := make([]schema.ColumnSchema, len(input.Schema().Columns))
	copy(columns, input.Schema().Columns)
	for i := range columns {
		if columns[i].Name == column {
			columns[i].Type = element
		}
	}
	return &Unnest{
		input:    input,
		column:   column,
		unnested: schema.FromColumns(columns),
	}, nil
}

// Schema returns the input schema with the expanded column carrying its
// element type.
func (u *Unnest) Schema() schema.Schema {
	return u.unnested
}

// Column returns the name of the column being expanded.
func (u *Unnest) Column() string {
	return u.column
}

// Type implements the Plan interface.
func (u *Unnest) Type() PlanType {
	return PlanTypeUnnest
}

// Children implements the Plan interface.
func (u *Unnest) Children() []Plan {
	return []Plan{u.input}
}
