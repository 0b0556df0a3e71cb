package rules

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/secrethunter/secrethunter/internal/types"
)

// DecodePolicy says what to do with byte sequences that are not valid UTF-8.
// Corrupted or mixed-encoding files must never abort a scan, so undecodable
// bytes are either replaced with U+FFFD or dropped before matching.
type DecodePolicy string

const (
	DecodeReplace DecodePolicy = "replace"
	DecodeDrop    DecodePolicy = "drop"
)

// Valid reports whether p names a known policy.
func (p DecodePolicy) Valid() bool {
	return p == DecodeReplace || p == DecodeDrop
}

// Clean applies the policy to s. The zero value behaves like DecodeReplace.
func (p DecodePolicy) Clean(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	if p == DecodeDrop {
		return strings.ToValidUTF8(s, "")
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// lineScanner returns a scanner sized so a single long line (minified JSON,
// logs) never truncates the pass.
func lineScanner(data []byte) *bufio.Scanner {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	return sc
}

// findAll scans line-by-line and emits one finding per non-overlapping match.
// The matched token itself is the extracted value.
func findAll(path string, data []byte, re *regexp.Regexp, id string, sev types.Severity, conf float64) []types.Finding {
	var out []types.Finding
	sc := lineScanner(data)
	line := 0
	for sc.Scan() {
		line++
		t := strings.TrimSpace(sc.Text())
		for _, m := range re.FindAllString(t, -1) {
			out = append(out, types.Finding{
				Path:       path,
				Line:       line,
				Match:      m,
				Secret:     m,
				Detector:   id,
				Severity:   sev,
				Confidence: conf,
				Context:    t,
			})
		}
	}
	return out
}

// findCaptured is findAll for rules whose first capture group holds the
// secret value (e.g. the quoted string of an assignment).
func findCaptured(path string, data []byte, re *regexp.Regexp, id string, sev types.Severity, conf float64) []types.Finding {
	var out []types.Finding
	sc := lineScanner(data)
	line := 0
	for sc.Scan() {
		line++
		t := strings.TrimSpace(sc.Text())
		for _, m := range re.FindAllStringSubmatch(t, -1) {
			out = append(out, types.Finding{
				Path:       path,
				Line:       line,
				Match:      m[0],
				Secret:     m[1],
				Detector:   id,
				Severity:   sev,
				Confidence: conf,
				Context:    t,
			})
		}
	}
	return out
}
