package resolver

import (
	"context"

	"github.com/driftlake/driftlake/pkg/engine/planner/schema"
)

// Catalog resolves table names to their schemas. Implementations may perform
// I/O and must honor cancellation of the passed context.
type Catalog interface {
	// ResolveTable returns the schema of the table with the given name.
	ResolveTable(ctx context.Context, name string) (schema.Schema, error)
}
