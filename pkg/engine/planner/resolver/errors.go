package resolver

import (
	"errors"
	"fmt"
)

// ErrInvalidSampleBounds is returned when a sample node carries bounds with
// lower_bound >= upper_bound.
var ErrInvalidSampleBounds = errors.New("invalid sample bounds")

func invalidBounds(lower, upper float64) error {
	return fmt.Errorf("%w: [%v, %v)", ErrInvalidSampleBounds, lower, upper)
}
