package resolver

import (
	"github.com/driftlake/driftlake/pkg/engine/planner/logical"
)

// Node is a node of the query specification tree consumed by the [Resolver].
// Specification nodes describe what a query computes; the resolver rewrites
// them into logical plan operators.
type Node interface {
	isNode()
}

// Table names a table relation to scan. Its schema is resolved through the
// [Catalog].
type Table struct {
	Name string
}

// Filter keeps the input rows matching a predicate.
type Filter struct {
	Input     Node
	Predicate logical.Expr
}

// Limit skips Skip input rows and yields at most Fetch rows.
type Limit struct {
	Input Node
	Skip  uint32
	Fetch uint32
}

// Sample selects a random subset of the input rows.
//
// Without replacement, each row is kept independently when its uniform draw
// falls in [LowerBound, UpperBound), so the fraction of surviving rows
// approaches UpperBound-LowerBound. With replacement, each row is replicated
// a Poisson-distributed number of times with mean UpperBound, and may appear
// zero or many times.
//
// When Seed is nil, a seed is drawn from a process-level source of
// randomness and results are not reproducible across runs.
type Sample struct {
	Input           Node
	LowerBound      float64
	UpperBound      float64
	WithReplacement bool
	Seed            *int64
}

func (*Table) isNode()  {}
func (*Filter) isNode() {}
func (*Limit) isNode()  {}
func (*Sample) isNode() {}
