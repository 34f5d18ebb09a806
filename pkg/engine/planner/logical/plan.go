// Package logical represents logical query plans: immutable trees of
// relational operators over named, typed columns. Plan nodes are never
// mutated; every rewrite wraps an existing node in a new one, so subtrees can
// be shared freely and plans compared structurally.
package logical

import (
	"fmt"

	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// PlanType represents the type of a node in the logical plan.
type PlanType uint32

const (
	_ PlanType = iota // zero-value is an invalid type

	PlanTypeMakeTable
	PlanTypeProjection
	PlanTypeSelect
	PlanTypeUnnest
	PlanTypeLimit
)

// String returns the string representation of the [PlanType].
func (t PlanType) String() string {
	switch t {
	case PlanTypeMakeTable:
		return "MakeTable"
	case PlanTypeProjection:
		return "Projection"
	case PlanTypeSelect:
		return "Select"
	case PlanTypeUnnest:
		return "Unnest"
	case PlanTypeLimit:
		return "Limit"
	default:
		panic(fmt.Sprintf("unknown plan type %d", t))
	}
}

// Plan is the common interface of all logical plan nodes.
type Plan interface {
	// Schema returns the schema of the rows produced by the node.
	Schema() schema.Schema
	// Type returns the type of the node.
	Type() PlanType
	// Children returns the input nodes of the node.
	Children() []Plan
}
