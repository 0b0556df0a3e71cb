package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/secrethunter/secrethunter/internal/ignore"
	"github.com/secrethunter/secrethunter/internal/types"
)

func collectWalk(t *testing.T, cfg Config) []string {
	t.Helper()
	cfg = cfg.withDefaults()
	var got []string
	err := Walk(context.Background(), cfg, ignore.Matcher{},
		func(rel, _ string) { got = append(got, rel) },
		func(e types.ScanError) { t.Logf("warn: %v", e) })
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return got
}

func TestWalk_ExtensionFilterSkipsBeforeRead(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.txt", "admin@startup.io")
	mustWrite(t, dir, "shot.png", "admin@startup.io") // content would match, extension must win
	mustWrite(t, dir, "tool.exe", "password = \"x\"")

	got := collectWalk(t, Config{Root: dir})
	if len(got) != 1 || got[0] != "a.txt" {
		t.Fatalf("expected only a.txt, got %v", got)
	}
}

func TestWalk_DeterministicSiblingOrder(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"c.txt", "a.txt", "b.txt"} {
		mustWrite(t, dir, n, "x")
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	mustWrite(t, dir, filepath.Join("sub", "d.txt"), "x")

	got := collectWalk(t, Config{Root: dir})
	want := []string{"a.txt", "b.txt", "c.txt", filepath.Join("sub", "d.txt")}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestWalk_SymlinkCycleTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	mustWrite(t, dir, filepath.Join("sub", "note.txt"), "x")
	// sub/loop points back at the root
	if err := os.Symlink(dir, filepath.Join(sub, "loop")); err != nil {
		t.Fatal(err)
	}

	got := collectWalk(t, Config{Root: dir, FollowSymlinks: true})
	if len(got) != 1 {
		t.Fatalf("expected exactly one file despite cycle, got %v", got)
	}
}

func TestWalk_SymlinkedFileScanned(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	mustWrite(t, dir, "real.txt", "x")
	if err := os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "alias.txt")); err != nil {
		t.Fatal(err)
	}
	got := collectWalk(t, Config{Root: dir})
	if len(got) != 2 {
		t.Fatalf("expected real.txt and alias.txt, got %v", got)
	}
}

func TestWalk_IncludeExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "keep.env", "x")
	mustWrite(t, dir, "drop.txt", "x")

	got := collectWalk(t, Config{Root: dir, IncludeGlobs: "*.env"})
	if len(got) != 1 || got[0] != "keep.env" {
		t.Fatalf("include glob: expected keep.env, got %v", got)
	}

	got = collectWalk(t, Config{Root: dir, ExcludeGlobs: "*.txt"})
	if len(got) != 1 || got[0] != "keep.env" {
		t.Fatalf("exclude glob: expected keep.env, got %v", got)
	}
}

func TestCountTargets(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, dir, "a.txt", "x")
	mustWrite(t, dir, "b.json", "{}")
	mustWrite(t, dir, "c.bin", "x")

	n, err := CountTargets(Config{Root: dir})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 targets, got %d", n)
	}
}

func mustWrite(t *testing.T, dir, rel, body string) {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}
