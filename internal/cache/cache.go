// Package cache stores per-file scan results keyed by content hash so that
// repeat runs over an unchanged tree replay identical findings without
// re-matching every line.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/secrethunter/secrethunter/internal/types"
)

// Entry holds the content hash, the decode policy the findings were produced
// under, and the findings for one file. A policy change must invalidate the
// entry because it can alter what the rules see.
type Entry struct {
	Hash     string          `json:"hash"`
	Policy   string          `json:"policy,omitempty"`
	Findings []types.Finding `json:"findings,omitempty"`
}

type DB struct {
	// Path relative to scan root -> entry
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits.
	// Fall back to the scan root if .git does not exist.
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "secrethunter_cache.json")
	}
	return filepath.Join(root, ".secrethunter_cache.json")
}

func Load(root string) (DB, error) {
	var db DB
	p := defaultPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(p, b, 0644)
}
