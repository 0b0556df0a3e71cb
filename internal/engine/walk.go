package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/secrethunter/secrethunter/internal/ignore"
	"github.com/secrethunter/secrethunter/internal/types"
)

// Walk traverses the tree depth-first with siblings in name order and invokes
// visit for every file that passes the extension, glob, ignore and size
// filters. Directories that cannot be read are reported through warn and
// skipped. Real directory identities are tracked so symlink cycles terminate.
// Only a context cancellation aborts the walk.
func Walk(ctx context.Context, cfg Config, ign ignore.Matcher, visit func(rel, abs string), warn func(types.ScanError)) error {
	exts := extSet(cfg.Extensions)
	visited := map[string]bool{}

	var walk func(dir string) error
	walk = func(dir string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		real, err := filepath.EvalSymlinks(dir)
		if err != nil {
			warn(types.ScanError{Path: dir, Err: err})
			return nil
		}
		if visited[real] {
			return nil
		}
		visited[real] = true

		entries, err := os.ReadDir(dir)
		if err != nil {
			warn(types.ScanError{Path: dir, Err: err})
			return nil
		}
		for _, e := range entries {
			p := filepath.Join(dir, e.Name())
			if e.IsDir() {
				if cfg.DefaultExcludes && isDefaultDirExcluded(e.Name()) {
					continue
				}
				if err := walk(p); err != nil {
					return err
				}
				continue
			}
			if e.Type()&fs.ModeSymlink != 0 {
				st, err := os.Stat(p)
				if err != nil {
					warn(types.ScanError{Path: p, Err: err})
					continue
				}
				if st.IsDir() {
					if cfg.FollowSymlinks && !(cfg.DefaultExcludes && isDefaultDirExcluded(e.Name())) {
						if err := walk(p); err != nil {
							return err
						}
					}
					continue
				}
			}
			if isOwnArtifact(e.Name()) {
				continue
			}
			rel, _ := filepath.Rel(cfg.Root, p)
			if !hasAllowedExt(rel, exts) {
				continue
			}
			if !allowedByGlobs(rel, cfg) {
				continue
			}
			if ign.Match(rel) {
				continue
			}
			if cfg.MaxBytes > 0 {
				if info, err := e.Info(); err == nil && info.Size() > cfg.MaxBytes {
					continue
				}
			}
			visit(rel, p)
		}
		return nil
	}
	return walk(cfg.Root)
}

// CountTargets estimates the number of files a scan would process. It mirrors
// the selection logic of Walk without reading any content.
func CountTargets(cfg Config) (int, error) {
	cfg = cfg.withDefaults()
	ign, _ := ignore.Load(filepath.Join(cfg.Root, IgnoreFileName))
	count := 0
	err := Walk(context.Background(), cfg, ign,
		func(string, string) { count++ },
		func(types.ScanError) {})
	return count, err
}
