package logical

import (
	"errors"

	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// Projection represents a plan node that evaluates a list of expressions
// against its input, producing one output column per expression. It
// corresponds to the SELECT list in SQL and is the only node that changes the
// set of columns of a relation.
type Projection struct {
	// input is the child plan node providing rows to project.
	input Plan
	// exprs are the projection expressions, one per output column.
	exprs []Expr
	// projected is the schema computed from exprs at construction time.
	projected schema.Schema
}

var _ Plan = (*Projection)(nil)

// newProjection creates a new Projection node. Every expression must resolve
// against the input schema and carry an output name, either as a plain
// column reference or through an alias.
func newProjection(input Plan, exprs []Expr) (*Projection, error) {
	if len(exprs) == 0 {
		return nil, errors.New("projection requires at least one expression")
	}
	columns := make([]schema.ColumnSchema, len(exprs))
	for i, expr := range exprs {
		col, err := outputColumn(expr, input.Schema())
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return &Projection{
		input:     input,
		exprs:     exprs,
		projected: schema.FromColumns(columns),
	}, nil
}

// Schema returns the schema produced by the projection expressions.
func (p *Projection) Schema() schema.Schema {
	return p.projected
}

// Expressions returns the projection expressions.
func (p *Projection) Expressions() []Expr {
	return p.exprs
}

// Type implements the Plan interface.
func (p *Projection) Type() PlanType {
	return PlanTypeProjection
}

// Children implements the Plan interface.
func (p *Projection) Children() []Plan {
	return []Plan{p.input}
}
