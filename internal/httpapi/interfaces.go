package httpapi

import (
	"context"

	"github.com/tinoosan/pageserve/internal/static"
)

// AssetLookup resolves decoded request paths to static assets.
// A missing asset is reported as an error wrapping errs.ErrNotFound.
type AssetLookup interface {
	Lookup(ctx context.Context, name string) (static.Asset, error)
}

// ReadyChecker is optionally implemented by lookups to indicate readiness.
type ReadyChecker interface {
	Ready(ctx context.Context) error
}
