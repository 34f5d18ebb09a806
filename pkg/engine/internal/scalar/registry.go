// Package scalar implements the scalar functions the sample resolver rewrites
// plans with: a seeded uniform generator, a seeded Poisson generator, and an
// integer sequence builder. The planner references functions by name and uses
// the registry for return-type inference; execution instantiates the
// generators per partition from the seed carried in the plan.
package scalar

import (
	"fmt"

	"github.com/driftlake/driftlake/pkg/engine/internal/types"
)

// Names of the registered scalar functions.
const (
	FuncNameRandom      = "random"
	FuncNameRandPoisson = "rand_poisson"
	FuncNameSequence    = "sequence"
)

// Signature describes a registered scalar function.
type Signature struct {
	// Name of the function.
	Name string
	// NumArgs is the exact number of arguments the function takes.
	NumArgs int
	// ReturnType is the type of the single value produced per row.
	ReturnType types.ValueType
}

var registry = map[string]Signature{
	FuncNameRandom:      {Name: FuncNameRandom, NumArgs: 1, ReturnType: types.ValueTypeFloat},
	FuncNameRandPoisson: {Name: FuncNameRandPoisson, NumArgs: 2, ReturnType: types.ValueTypeInt},
	FuncNameSequence:    {Name: FuncNameSequence, NumArgs: 2, ReturnType: types.ValueTypeIntList},
}

// Lookup returns the signature of the scalar function with the given name.
func Lookup(name string) (Signature, error) {
	sig, ok := registry[name]
	if !ok {
		return Signature{}, fmt.Errorf("unknown scalar function %q", name)
	}
	return sig, nil
}
