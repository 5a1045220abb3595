package httpapi

import "github.com/tinoosan/pageserve/internal/static"

// Compile-time interface assertions for the directory lookup.
var (
	_ AssetLookup  = (*static.Dir)(nil)
	_ ReadyChecker = (*static.Dir)(nil)
)
