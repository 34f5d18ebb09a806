package logical

import (
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// Limit represents a plan node that skips a number of rows and caps the
// number of rows it yields.
type Limit struct {
	// input is the child plan node providing rows.
	input Plan
	// skip is the number of rows to skip before yielding rows.
	skip uint32
	// fetch is the maximum number of rows to yield. Zero means unlimited.
	fetch uint32
}

var _ Plan = (*Limit)(nil)

func newLimit(input Plan, skip, fetch uint32) *Limit {
	return &Limit{
		input: input,
		skip:  skip,
		fetch: fetch,
	}
}

// Schema returns the schema of the Limit node, which is the same as the
// schema of its input.
func (l *Limit) Schema() schema.Schema {
	return l.input.Schema()
}

// Skip returns the number of rows skipped.
func (l *Limit) Skip() uint32 { return l.skip }

// Fetch returns the maximum number of rows yielded.
func (l *Limit) Fetch() uint32 { return l.fetch }

// Type implements the Plan interface.
func (l *Limit) Type() PlanType {
	return PlanTypeLimit
}

// Children implements the Plan interface.
func (l *Limit) Children() []Plan {
	return []Plan{l.input}
}
