package logical

import (
	"fmt"

	"github.com/driftlake/driftlake/pkg/engine/internal/types"
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// Select represents a plan node that filters rows based on a boolean
// expression. It corresponds to the WHERE clause in SQL and is used to select
// a subset of rows from the input plan based on a predicate expression.
type Select struct {
	// input is the child plan node providing data to filter.
	input Plan
	// predicate is the boolean expression used to filter rows.
	predicate Expr
}

var _ Plan = (*Select)(nil)

// newSelect creates a new Select node. The predicate must resolve to a
// boolean against the input schema.
func newSelect(input Plan, predicate Expr) (*Select, error) {
	ty, err := exprValueType(predicate, input.Schema())
	if err != nil {
		return nil, err
	}
	if ty != types.ValueTypeBool {
		return nil, fmt.Errorf("select predicate %s must be boolean, got %s", predicate, ty)
	}
	return &Select{
		input:     input,
		predicate: predicate,
	}, nil
}

// Schema returns the schema of the Select node, which is the same as the
// schema of its input: selection only removes rows.
func (s *Select) Schema() schema.Schema {
	return s.input.Schema()
}

// Predicate returns the boolean expression used to filter rows.
func (s *Select) Predicate() Expr {
	return s.predicate
}

// Type implements the Plan interface.
func (s *Select) Type() PlanType {
	return PlanTypeSelect
}

// Children implements the Plan interface.
func (s *Select) Children() []Plan {
	return []Plan{s.input}
}
