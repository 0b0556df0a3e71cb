package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/secrethunter/secrethunter/internal/cache"
	"github.com/secrethunter/secrethunter/internal/ignore"
	"github.com/secrethunter/secrethunter/internal/rules"
	"github.com/secrethunter/secrethunter/internal/types"
)

// IgnoreFileName is the per-tree ignore file read from the scan root.
const IgnoreFileName = ".secrethunterignore"

// DefaultFileTimeout bounds how long a single file may take to read and match.
// A file that exceeds it is skipped with a warning, never fatal.
const DefaultFileTimeout = 30 * time.Second

// Config controls scanning behavior including scope, performance, and filters.
type Config struct {
	Root            string
	IncludeGlobs    string
	ExcludeGlobs    string
	Extensions      []string
	MaxBytes        int64
	Threads         int
	FollowSymlinks  bool
	DefaultExcludes bool
	DecodePolicy    rules.DecodePolicy
	NoCache         bool
	FileTimeout     time.Duration
	Progress        func()
}

func (cfg Config) withDefaults() Config {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}
	if cfg.FileTimeout <= 0 {
		cfg.FileTimeout = DefaultFileTimeout
	}
	if !cfg.DecodePolicy.Valid() {
		cfg.DecodePolicy = rules.DecodeReplace
	}
	return cfg
}

// Result contains findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	Duration     time.Duration
	Errors       []types.ScanError
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats runs a scan and returns findings along with timing and counts.
func ScanWithStats(cfg Config) (Result, error) {
	return ScanContext(context.Background(), cfg)
}

// ScanContext runs a scan under the given context. On cancellation the
// traversal stops promptly and the partial result is returned together with
// the context error.
func ScanContext(ctx context.Context, cfg Config) (Result, error) {
	var result Result

	root, err := ValidateRoot(cfg.Root)
	if err != nil {
		return result, err
	}
	cfg.Root = root
	cfg = cfg.withDefaults()

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]cache.Entry{}
	}
	updated := map[string]cache.Entry{}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, IgnoreFileName))

	started := time.Now()

	type job struct{ rel, abs string }
	jobs := make(chan job, cfg.Threads*2)

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out []types.Finding
	)
	for i := 0; i < cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				fs, entry, err := scanFile(ctx, cfg, db, j.rel, j.abs)
				mu.Lock()
				if err != nil {
					result.Errors = append(result.Errors, types.ScanError{Path: j.rel, Err: err})
				} else {
					out = append(out, fs...)
					result.FilesScanned++
					if !cfg.NoCache {
						updated[j.rel] = entry
					}
				}
				if cfg.Progress != nil {
					cfg.Progress()
				}
				mu.Unlock()
			}
		}()
	}

	walkErr := Walk(ctx, cfg, ign, func(rel, abs string) {
		select {
		case jobs <- job{rel, abs}:
		case <-ctx.Done():
		}
	}, func(e types.ScanError) {
		mu.Lock()
		result.Errors = append(result.Errors, e)
		mu.Unlock()
	})
	close(jobs)
	wg.Wait()

	// Concurrent interleaving is nondeterministic, so restore the contractual
	// order: path, then line, then rule order, then match.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if ra, rb := rules.Rank(a.Detector), rules.Rank(b.Detector); ra != rb {
			return ra < rb
		}
		return a.Match < b.Match
	})

	result.Findings = out
	result.Duration = time.Since(started)

	if !cfg.NoCache && walkErr == nil {
		_ = cache.Save(cfg.Root, cache.DB{Entries: updated})
	}
	if walkErr != nil {
		return result, fmt.Errorf("scan interrupted: %w", walkErr)
	}
	return result, nil
}

// scanFile reads one file, applies the decode policy, and runs all rules.
// Unchanged files (same content hash as the cached entry) replay their cached
// findings so repeat runs stay byte-identical. The whole operation runs under
// a per-file time budget.
func scanFile(ctx context.Context, cfg Config, db cache.DB, rel, abs string) ([]types.Finding, cache.Entry, error) {
	type res struct {
		fs    []types.Finding
		entry cache.Entry
		err   error
	}
	ch := make(chan res, 1)
	go func() {
		data, err := os.ReadFile(abs)
		if err != nil {
			ch <- res{err: err}
			return
		}
		h := fastHash(data)
		policy := string(cfg.DecodePolicy)
		if !cfg.NoCache {
			if e, ok := db.Entries[rel]; ok && e.Hash == h && e.Policy == policy {
				ch <- res{fs: e.Findings, entry: e}
				return
			}
		}
		data = []byte(cfg.DecodePolicy.Clean(string(data)))
		fs := rules.RunAll(rel, data)
		ch <- res{fs: fs, entry: cache.Entry{Hash: h, Policy: policy, Findings: fs}}
	}()

	timer := time.NewTimer(cfg.FileTimeout)
	defer timer.Stop()
	select {
	case r := <-ch:
		return r.fs, r.entry, r.err
	case <-timer.C:
		return nil, cache.Entry{}, fmt.Errorf("timed out after %s", cfg.FileTimeout)
	case <-ctx.Done():
		return nil, cache.Entry{}, ctx.Err()
	}
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// RuleIDs returns the IDs of the configured detection rules.
func RuleIDs() []string { return rules.IDs() }

// allowedByGlobs returns true if the given path is allowed by the include/exclude
// glob configuration. Include globs are comma-separated and, if provided, act as
// a positive filter. Exclude globs are subtracted last. Matching uses
// forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
