// Package engine implements the scan pipeline: root validation, deterministic
// directory traversal, extension and glob filtering, per-file rule matching on
// a bounded worker pool, and stable ordering of the resulting findings.
package engine
