package core

import (
	"context"

	"github.com/secrethunter/secrethunter/internal/engine"
	"github.com/secrethunter/secrethunter/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding
type Result = engine.Result

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and returns findings plus timing and counts.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// ScanContext runs a scan that stops promptly when ctx is cancelled,
// returning partial results together with the context error.
func ScanContext(ctx context.Context, cfg Config) (Result, error) {
	return engine.ScanContext(ctx, cfg)
}

// RuleIDs returns the list of configured detection rule IDs.
// Exposed for convenience to avoid importing internals directly.
func RuleIDs() []string { return engine.RuleIDs() }
