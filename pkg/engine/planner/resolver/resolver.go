// Package resolver rewrites query specification trees into logical plans.
package resolver

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftlake/driftlake/pkg/engine/internal/types"
	"github.com/driftlake/driftlake/pkg/engine/planner/logical"
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// Params holds parameters for constructing a new [Resolver].
type Params struct {
	Logger     log.Logger            // Logger for optional log messages.
	Registerer prometheus.Registerer // Registerer for optional metrics.

	// Catalog resolves table names to schemas.
	Catalog Catalog

	// RandSeed draws a seed for sample nodes that do not carry one. Defaults
	// to a process-level cryptographic source.
	RandSeed func() int64
}

// validate validates p and applies defaults.
func (p *Params) validate() error {
	if p.Logger == nil {
		p.Logger = log.NewNopLogger()
	}
	if p.Registerer == nil {
		p.Registerer = prometheus.NewRegistry()
	}
	if p.Catalog == nil {
		return errors.New("catalog is required")
	}
	if p.RandSeed == nil {
		p.RandSeed = cryptoSeed
	}
	return nil
}

// Resolver rewrites query specification trees into logical plans.
type Resolver struct {
	logger   log.Logger
	metrics  *metrics
	catalog  Catalog
	randSeed func() int64
}

// New creates a new Resolver from the given params.
func New(params Params) (*Resolver, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Resolver{
		logger:   params.Logger,
		metrics:  newMetrics(params.Registerer),
		catalog:  params.Catalog,
		randSeed: params.RandSeed,
	}, nil
}

// ResolvePlan resolves node into a logical plan. Column names issued during
// resolution are drawn from state, which must be shared by all nested
// resolutions of the same plan tree. On error no partial plan is returned.
func (r *Resolver) ResolvePlan(ctx context.Context, node Node, state *State) (logical.Plan, error) {
	plan, err := r.resolveNode(ctx, node, state)
	if err != nil {
		r.metrics.resolveFailures.Inc()
		return nil, err
	}
	r.metrics.plansResolved.Inc()
	return plan, nil
}

func (r *Resolver) resolveNode(ctx context.Context, node Node, state *State) (logical.Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch node := node.(type) {
	case *Table:
		tableSchema, err := r.catalog.ResolveTable(ctx, node.Name)
		if err != nil {
			return nil, fmt.Errorf("resolving table %q: %w", node.Name, err)
		}
		return logical.NewMakeTable(node.Name, tableSchema), nil
	case *Filter:
		input, err := r.resolveNode(ctx, node.Input, state)
		if err != nil {
			return nil, err
		}
		return logical.NewBuilder(input).Select(node.Predicate).Build()
	case *Limit:
		input, err := r.resolveNode(ctx, node.Input, state)
		if err != nil {
			return nil, err
		}
		return logical.NewBuilder(input).Limit(node.Skip, node.Fetch).Build()
	case *Sample:
		return r.resolveSample(ctx, node, state)
	default:
		return nil, fmt.Errorf("unsupported specification node %T", node)
	}
}

// columnRefs returns one column reference per column of s, in schema order.
func columnRefs(s schema.Schema) []logical.Expr {
	refs := make([]logical.Expr, len(s.Columns))
	for i, col := range s.Columns {
		refs[i] = logical.NewColumnRef(col.Name, types.ColumnTypeTable)
	}
	return refs
}

// cryptoSeed draws an int64 uniformly from the full range.
func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("reading random seed: %v", err))
	}
	return int64(binary.BigEndian.Uint64(buf[:]))
}
