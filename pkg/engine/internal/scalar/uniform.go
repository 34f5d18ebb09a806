package scalar

import (
	"github.com/driftlake/driftlake/pkg/engine/random"
)

// Uniform draws approximately uniform values in [0, 1) from a seeded
// XORShift source. It backs the random(seed) scalar function used by the
// Bernoulli branch of the sample rewrite.
type Uniform struct {
	src *random.Source
}

// NewUniform returns a Uniform generator for the given seed.
func NewUniform(seed int64) *Uniform {
	return &Uniform{src: random.NewSource(seed)}
}

// Next returns the next value in [0, 1).
func (u *Uniform) Next() float64 {
	return u.src.Float64()
}
