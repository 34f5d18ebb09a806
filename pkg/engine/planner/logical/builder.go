package logical

import (
	"github.com/pkg/errors"
)

// Builder constructs logical plans by wrapping an input node with relational
// operators. Builder methods never mutate the wrapped plan; each call
// returns a new Builder. The first construction error is sticky and
// surfaces at [Builder.Build].
type Builder struct {
	plan Plan
	err  error
}

// NewBuilder creates a new Builder rooted at the given plan node.
func NewBuilder(plan Plan) *Builder {
	return &Builder{plan: plan}
}

// Project wraps the plan in a [Projection] evaluating the given expressions.
func (b *Builder) Project(exprs ...Expr) *Builder {
	if b.err != nil {
		return b
	}
	plan, err := newProjection(b.plan, exprs)
	if err != nil {
		return &Builder{err: errors.Wrap(err, "project")}
	}
	return &Builder{plan: plan}
}

// Select wraps the plan in a [Select] filtering rows with the given
// predicate.
func (b *Builder) Select(predicate Expr) *Builder {
	if b.err != nil {
		return b
	}
	plan, err := newSelect(b.plan, predicate)
	if err != nil {
		return &Builder{err: errors.Wrap(err, "select")}
	}
	return &Builder{plan: plan}
}

// Unnest wraps the plan in an [Unnest] expanding the named list-valued
// column.
func (b *Builder) Unnest(column string) *Builder {
	if b.err != nil {
		return b
	}
	plan, err := newUnnest(b.plan, column)
	if err != nil {
		return &Builder{err: errors.Wrap(err, "unnest")}
	}
	return &Builder{plan: plan}
}

// Limit wraps the plan in a [Limit].
func (b *Builder) Limit(skip, fetch uint32) *Builder {
	if b.err != nil {
		return b
	}
	return &Builder{plan: newLimit(b.plan, skip, fetch)}
}

// Build returns the built plan, or the first error encountered while
// building.
func (b *Builder) Build() (Plan, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.plan, nil
}
