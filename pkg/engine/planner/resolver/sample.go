package resolver

import (
	"context"

	"github.com/go-kit/log/level"

	"github.com/driftlake/driftlake/pkg/engine/internal/scalar"
	"github.com/driftlake/driftlake/pkg/engine/internal/types"
	"github.com/driftlake/driftlake/pkg/engine/planner/logical"
)

// resolveSample rewrites a sample node into primitive relational operators.
//
// The rewrite projects a synthetic random-valued column onto the resolved
// input plan and then branches. Without replacement, rows are kept when the
// random value falls within the sample bounds (Bernoulli sampling). With
// replacement, the random value is a Poisson-distributed replication count
// that drives a sequence expansion (Poisson sampling). The synthetic columns
// are projected away before the plan is returned and never appear in its
// schema.
func (r *Resolver) resolveSample(ctx context.Context, sample *Sample, state *State) (logical.Plan, error) {
	if !(sample.LowerBound < sample.UpperBound) {
		return nil, invalidBounds(sample.LowerBound, sample.UpperBound)
	}

	var seed int64
	if sample.Seed != nil {
		seed = *sample.Seed
	} else {
		seed = r.randSeed()
	}

	input, err := r.resolveNode(ctx, sample.Input, state)
	if err != nil {
		return nil, err
	}

	level.Debug(r.logger).Log(
		"msg", "resolving sample node",
		"lower_bound", sample.LowerBound,
		"upper_bound", sample.UpperBound,
		"with_replacement", sample.WithReplacement,
		"seed", seed,
	)

	randColumn := state.RegisterFieldName("rand_value")
	var randExpr logical.Expr
	if sample.WithReplacement {
		// Per row, a Poisson-distributed replication count with mean
		// UpperBound.
		randExpr = logical.NewAlias(randColumn, logical.NewScalarFn(
			scalar.FuncNameRandPoisson,
			logical.NewLiteral(sample.UpperBound),
			logical.NewLiteral(seed),
		))
	} else {
		// Per row, an approximately uniform value in [0, 1).
		randExpr = logical.NewAlias(randColumn, logical.NewScalarFn(
			scalar.FuncNameRandom,
			logical.NewLiteral(seed),
		))
	}

	visible := columnRefs(input.Schema())
	withRand := make([]logical.Expr, 0, len(visible)+1)
	withRand = append(withRand, visible...)
	withRand = append(withRand, randExpr)

	planWithRand, err := logical.NewBuilder(input).Project(withRand...).Build()
	if err != nil {
		return nil, err
	}

	if sample.WithReplacement {
		return resolveSampleWithReplacement(planWithRand, randColumn, visible, state)
	}
	return resolveSampleWithoutReplacement(planWithRand, randColumn, sample.LowerBound, sample.UpperBound, visible)
}

// resolveSampleWithoutReplacement keeps rows whose random value falls in
// [lower, upper), then restores the input schema.
func resolveSampleWithoutReplacement(planWithRand logical.Plan, randColumn string, lower, upper float64, visible []logical.Expr) (logical.Plan, error) {
	return logical.NewBuilder(planWithRand).
		Select(&logical.BinOp{
			Left:  logical.NewColumnRef(randColumn, types.ColumnTypeGenerated),
			Right: logical.NewLiteral(upper),
			Op:    types.BinaryOpLt,
		}).
		Select(&logical.BinOp{
			Left:  logical.NewColumnRef(randColumn, types.ColumnTypeGenerated),
			Right: logical.NewLiteral(lower),
			Op:    types.BinaryOpGte,
		}).
		Project(visible...).
		Build()
}

// resolveSampleWithReplacement turns the per-row replication count into an
// integer sequence, expands the sequence into one row per element, and
// restores the input schema. A count of zero yields an empty sequence, which
// drops the row entirely.
func resolveSampleWithReplacement(planWithRand logical.Plan, randColumn string, visible []logical.Expr, state *State) (logical.Plan, error) {
	arrayColumn := state.RegisterFieldName("array_value")
	seqExpr := logical.NewAlias(arrayColumn, logical.NewScalarFn(
		scalar.FuncNameSequence,
		logical.NewLiteral(int64(1)),
		logical.NewColumnRef(randColumn, types.ColumnTypeGenerated),
	))

	withSequence := make([]logical.Expr, 0, len(visible)+2)
	withSequence = append(withSequence, visible...)
	withSequence = append(withSequence,
		logical.NewColumnRef(randColumn, types.ColumnTypeGenerated),
		seqExpr,
	)

	return logical.NewBuilder(planWithRand).
		Project(withSequence...).
		Unnest(arrayColumn).
		Project(visible...).
		Build()
}
