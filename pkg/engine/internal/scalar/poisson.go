package scalar

import (
	"fmt"
	"math"

	"github.com/driftlake/driftlake/pkg/engine/random"
)

// Poisson draws Poisson-distributed replication counts with mean lambda from
// a seeded XORShift source. It backs the rand_poisson(lambda, seed) scalar
// function used by the with-replacement branch of the sample rewrite.
type Poisson struct {
	limit float64
	src   *random.Source
}

// NewPoisson returns a Poisson generator with the given mean. The mean must
// be positive.
func NewPoisson(lambda float64, seed int64) (*Poisson, error) {
	if lambda <= 0 || math.IsNaN(lambda) {
		return nil, fmt.Errorf("poisson mean must be positive, got %v", lambda)
	}
	return &Poisson{
		limit: math.Exp(-lambda),
		src:   random.NewSource(seed),
	}, nil
}

// Next returns the next count. Uses Knuth's inversion by multiplication:
// multiply uniform draws until the product falls below e^-lambda.
func (p *Poisson) Next() int64 {
	var k int64
	prod := p.src.Float64()
	for prod > p.limit {
		k++
		prod *= p.src.Float64()
	}
	return k
}
