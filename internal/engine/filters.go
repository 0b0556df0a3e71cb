package engine

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions is the fixed allowlist of file extensions eligible for
// content analysis. Files outside it are skipped before any read.
var DefaultExtensions = []string{
	".txt", ".py", ".log", ".json", ".md", ".csv", ".xml", ".env",
	".yml", ".yaml", ".ini", ".cfg",
}

var defaultExcludeDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"coverage":     true,
	"bin":          true,
	"obj":          true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name] || strings.HasPrefix(name, ".git")
}

// Files the tool writes itself. Always skipped, otherwise a second run would
// scan the findings recorded by the first.
var ownArtifacts = map[string]bool{
	".secrethunter_cache.json":  true,
	".secrethunter_audit.jsonl": true,
}

func isOwnArtifact(name string) bool { return ownArtifacts[name] }

// extSet normalizes an allowlist into a lowercase lookup set.
func extSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

// hasAllowedExt reports whether the path's extension (case-insensitive) is in
// the allowlist.
func hasAllowedExt(path string, set map[string]bool) bool {
	return set[strings.ToLower(filepath.Ext(path))]
}
