package logical

import (
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// The MakeTable node yields a table relation from an identifier. It is the
// leaf of every logical plan.
type MakeTable struct {
	// TableName is the identifier of the table to scan.
	TableName string
	// TableSchema is the structure of the data within the table.
	TableSchema schema.Schema
}

var _ Plan = (*MakeTable)(nil)

// NewMakeTable creates a new MakeTable node with the given name and schema.
func NewMakeTable(name string, schema schema.Schema) *MakeTable {
	return &MakeTable{
		TableName:   name,
		TableSchema: schema,
	}
}

// Schema returns the schema of the table.
func (t *MakeTable) Schema() schema.Schema {
	return t.TableSchema
}

// Type implements the Plan interface.
func (t *MakeTable) Type() PlanType {
	return PlanTypeMakeTable
}

// Children implements the Plan interface. A MakeTable has no inputs.
func (t *MakeTable) Children() []Plan {
	return nil
}
