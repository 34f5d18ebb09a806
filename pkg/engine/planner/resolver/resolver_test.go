package resolver

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/driftlake/driftlake/pkg/engine/internal/types"
	"github.com/driftlake/driftlake/pkg/engine/planner/logical"
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

type testCatalog struct {
	tables map[string]schema.Schema
}

func (c *testCatalog) ResolveTable(_ context.Context, name string) (schema.Schema, error) {
	s, ok := c.tables[name]
	if !ok {
		return schema.Schema{}, fmt.Errorf("unknown table %q", name)
	}
	return s, nil
}

func usersSchema() schema.Schema {
	return schema.FromColumns([]schema.ColumnSchema{
		{Name: "id", Type: types.ValueTypeInt},
		{Name: "name", Type: types.ValueTypeStr},
		{Name: "age", Type: types.ValueTypeInt},
	})
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := New(Params{
		Catalog: &testCatalog{tables: map[string]schema.Schema{
			"users": usersSchema(),
		}},
	})
	require.NoError(t, err)
	return r
}

func int64Ptr(v int64) *int64 { return &v }

func TestNew_RequiresCatalog(t *testing.T) {
	_, err := New(Params{})
	require.ErrorContains(t, err, "catalog is required")
}

func TestResolvePlan_Table(t *testing.T) {
	r := newTestResolver(t)

	plan, err := r.ResolvePlan(context.Background(), &Table{Name: "users"}, NewState())
	require.NoError(t, err)
	require.Equal(t, logical.PlanTypeMakeTable, plan.Type())
	require.Equal(t, usersSchema(), plan.Schema())
}

func TestResolvePlan_UnknownTable(t *testing.T) {
	r := newTestResolver(t)

	_, err := r.ResolvePlan(context.Background(), &Table{Name: "nope"}, NewState())
	require.ErrorContains(t, err, `unknown table "nope"`)
}

func TestResolvePlan_FilterAndLimit(t *testing.T) {
	r := newTestResolver(t)

	node := &Limit{
		Input: &Filter{
			Input: &Table{Name: "users"},
			Predicate: &logical.BinOp{
				Left:  logical.NewColumnRef("age", types.ColumnTypeTable),
				Right: logical.NewLiteral(int64(21)),
				Op:    types.BinaryOpGt,
			},
		},
		Fetch: 10,
	}
	plan, err := r.ResolvePlan(context.Background(), node, NewState())
	require.NoError(t, err)
	require.Equal(t, logical.PlanTypeLimit, plan.Type())
	require.Equal(t, usersSchema(), plan.Schema())
}

func TestResolvePlan_Cancelled(t *testing.T) {
	r := newTestResolver(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan, err := r.ResolvePlan(ctx, &Table{Name: "users"}, NewState())
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, plan)
}

func TestResolvePlan_Metrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r, err := New(Params{
		Registerer: reg,
		Catalog:    &testCatalog{tables: map[string]schema.Schema{"users": usersSchema()}},
	})
	require.NoError(t, err)

	_, err = r.ResolvePlan(context.Background(), &Table{Name: "users"}, NewState())
	require.NoError(t, err)
	_, err = r.ResolvePlan(context.Background(), &Table{Name: "nope"}, NewState())
	require.Error(t, err)

	require.Equal(t, 1.0, counterValue(t, reg, "driftlake_planner_resolved_plans_total"))
	require.Equal(t, 1.0, counterValue(t, reg, "driftlake_planner_resolve_failures_total"))
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			require.Len(t, family.GetMetric(), 1)
			return family.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestState_RegisterFieldName(t *testing.T) {
	state := NewState()
	a := state.RegisterFieldName("rand_value")
	b := state.RegisterFieldName("rand_value")
	c := state.RegisterFieldName("array_value")

	require.NotEqual(t, a, b)
	require.NotEqual(t, b, c)
	for _, name := range []string{a, b, c} {
		require.Contains(t, name, internalPrefix)
	}
}
