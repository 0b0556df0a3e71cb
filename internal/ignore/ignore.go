// Package ignore matches paths against the patterns of a .secrethunterignore
// file. Supported patterns: directory prefixes ("node_modules/"), globs
// ("*.pem") matched against the basename and the full relative path, and
// exact relative paths. Lines starting with # and blank lines are skipped.
package ignore

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Matcher holds the parsed ignore patterns. The zero value matches nothing.
type Matcher struct {
	patterns []string
}

// Load reads patterns from the given file. A missing file yields an empty
// matcher and no error.
func Load(p string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(p)
	if err != nil {
		return m, nil
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether the relative path is ignored.
func (m Matcher) Match(rel string) bool {
	rp := filepath.ToSlash(rel)
	base := path.Base(rp)
	for _, pat := range m.patterns {
		if strings.HasSuffix(pat, "/") {
			dir := strings.TrimSuffix(pat, "/")
			if rp == dir || strings.HasPrefix(rp, dir+"/") || strings.Contains(rp, "/"+dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
		if ok, _ := path.Match(pat, rp); ok {
			return true
		}
		if rp == pat {
			return true
		}
	}
	return false
}
