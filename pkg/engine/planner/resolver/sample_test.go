package resolver

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/driftlake/driftlake/pkg/engine/planner/logical"
	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

func TestResolveSample_InvalidBounds(t *testing.T) {
	r := newTestResolver(t)

	for _, tt := range []struct {
		lower, upper float64
	}{
		{0.5, 0.5},
		{0.7, 0.2},
		{1.0, 0.0},
	} {
		_, err := r.ResolvePlan(context.Background(), &Sample{
			Input:      &Table{Name: "users"},
			LowerBound: tt.lower,
			UpperBound: tt.upper,
		}, NewState())
		require.ErrorIs(t, err, ErrInvalidSampleBounds, "bounds [%v, %v)", tt.lower, tt.upper)
		// Both offending values are part of the message.
		require.ErrorContains(t, err, fmt.Sprintf("[%v, %v)", tt.lower, tt.upper))
	}
}

func TestResolveSample_SchemaPreserved(t *testing.T) {
	r := newTestResolver(t)

	for _, withReplacement := range []bool{false, true} {
		plan, err := r.ResolvePlan(context.Background(), &Sample{
			Input:           &Table{Name: "users"},
			LowerBound:      0.0,
			UpperBound:      0.3,
			WithReplacement: withReplacement,
			Seed:            int64Ptr(42),
		}, NewState())
		require.NoError(t, err)
		require.Equal(t, usersSchema(), plan.Schema(), "with_replacement=%v", withReplacement)
	}
}

// TestResolveSample_ColumnHygiene verifies that registrar-issued column
// names never leak into the schema of the returned plan.
func TestResolveSample_ColumnHygiene(t *testing.T) {
	r := newTestResolver(t)

	for _, withReplacement := range []bool{false, true} {
		plan, err := r.ResolvePlan(context.Background(), &Sample{
			Input:           &Table{Name: "users"},
			LowerBound:      0.0,
			UpperBound:      0.5,
			WithReplacement: withReplacement,
			Seed:            int64Ptr(1),
		}, NewState())
		require.NoError(t, err)
		for _, name := range plan.Schema().ColumnNames() {
			require.False(t, strings.HasPrefix(name, internalPrefix),
				"internal column %q escaped into the output schema", name)
		}
	}
}

func TestResolveSample_Determinism(t *testing.T) {
	r := newTestResolver(t)

	resolve := func() logical.Plan {
		plan, err := r.ResolvePlan(context.Background(), &Sample{
			Input:           &Table{Name: "users"},
			LowerBound:      0.1,
			UpperBound:      0.9,
			WithReplacement: true,
			Seed:            int64Ptr(1234),
		}, NewState())
		require.NoError(t, err)
		return plan
	}

	a, b := resolve(), resolve()
	if diff := cmp.Diff(logical.PlanString(a), logical.PlanString(b)); diff != "" {
		t.Fatalf("plans differ (-a +b):\n%s", diff)
	}
}

func TestResolveSample_SeedDrawnWhenAbsent(t *testing.T) {
	catalog := &testCatalog{tables: map[string]schema.Schema{"users": usersSchema()}}

	pinned, err := New(Params{
		Catalog:  catalog,
		RandSeed: func() int64 { return 99 },
	})
	require.NoError(t, err)

	explicit, err := New(Params{Catalog: catalog})
	require.NoError(t, err)

	withoutSeed, err := pinned.ResolvePlan(context.Background(), &Sample{
		Input:      &Table{Name: "users"},
		LowerBound: 0.0,
		UpperBound: 0.3,
	}, NewState())
	require.NoError(t, err)

	withSeed, err := explicit.ResolvePlan(context.Background(), &Sample{
		Input:      &Table{Name: "users"},
		LowerBound: 0.0,
		UpperBound: 0.3,
		Seed:       int64Ptr(99),
	}, NewState())
	require.NoError(t, err)

	require.Equal(t, logical.PlanString(withSeed), logical.PlanString(withoutSeed))
}

func TestResolveSample_WithoutReplacement(t *testing.T) {
	r := newTestResolver(t)

	plan, err := r.ResolvePlan(context.Background(), &Sample{
		Input:      &Table{Name: "users"},
		LowerBound: 0.0,
		UpperBound: 0.3,
		Seed:       int64Ptr(42),
	}, NewState())
	require.NoError(t, err)

	actual := "\n" + logical.PlanString(plan)
	t.Logf("Actual output:\n%s", actual)

	expected := `
Projection
│   ├── ColumnRef table.id
│   ├── ColumnRef table.name
│   └── ColumnRef table.age
└── Select
    │   └── BinOp op=GTE
    │       ├── ColumnRef generated.__rand_value_1
    │       └── Literal value=0 kind=float
    └── Select
        │   └── BinOp op=LT
        │       ├── ColumnRef generated.__rand_value_1
        │       └── Literal value=0.3 kind=float
        └── Projection
            │   ├── ColumnRef table.id
            │   ├── ColumnRef table.name
            │   ├── ColumnRef table.age
            │   └── Alias name=__rand_value_1
            │       └── ScalarFn name=random
            │           └── Literal value=42 kind=int
            └── MakeTable name=users
`
	require.Equal(t, expected, actual)
}

func TestResolveSample_WithReplacement(t *testing.T) {
	r := newTestResolver(t)

	plan, err := r.ResolvePlan(context.Background(), &Sample{
		Input:           &Table{Name: "users"},
		LowerBound:      0.0,
		UpperBound:      2.0,
		WithReplacement: true,
		Seed:            int64Ptr(7),
	}, NewState())
	require.NoError(t, err)

	actual := "\n" + logical.PlanString(plan)
	t.Logf("Actual output:\n%s", actual)

	expected := `
Projection
│   ├── ColumnRef table.id
│   ├── ColumnRef table.name
│   └── ColumnRef table.age
└── Unnest column=__array_value_2
    └── Projection
        │   ├── ColumnRef table.id
        │   ├── ColumnRef table.name
        │   ├── ColumnRef table.age
        │   ├── ColumnRef generated.__rand_value_1
        │   └── Alias name=__array_value_2
        │       └── ScalarFn name=sequence
        │           ├── Literal value=1 kind=int
        │           └── ColumnRef generated.__rand_value_1
        └── Projection
            │   ├── ColumnRef table.id
            │   ├── ColumnRef table.name
            │   ├── ColumnRef table.age
            │   └── Alias name=__rand_value_1
            │       └── ScalarFn name=rand_poisson
            │           ├── Literal value=2 kind=float
            │           └── Literal value=7 kind=int
            └── MakeTable name=users
`
	require.Equal(t, expected, actual)
}

// Sampling a sampled sub-plan must issue distinct synthetic names for each
// sample node.
func TestResolveSample_Nested(t *testing.T) {
	r := newTestResolver(t)

	plan, err := r.ResolvePlan(context.Background(), &Sample{
		Input: &Sample{
			Input:      &Table{Name: "users"},
			LowerBound: 0.0,
			UpperBound: 0.5,
			Seed:       int64Ptr(1),
		},
		LowerBound: 0.0,
		UpperBound: 0.5,
		Seed:       int64Ptr(2),
	}, NewState())
	require.NoError(t, err)
	require.Equal(t, usersSchema(), plan.Schema())

	printed := logical.PlanString(plan)
	require.Contains(t, printed, "__rand_value_1")
	require.Contains(t, printed, "__rand_value_2")
}
