package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/secrethunter/secrethunter/internal/rules"
	"github.com/secrethunter/secrethunter/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
}

const separator = "------------------------------"

// PrintAlerts renders one alert block per finding followed by a completion
// summary. Blocks are emitted in path, line, rule order regardless of how the
// findings were produced. The caller's slice is left untouched.
func PrintAlerts(w io.Writer, findings []types.Finding, opts PrintOptions) {
	findings = append([]types.Finding(nil), findings...)
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return rules.Rank(a.Detector) < rules.Rank(b.Detector)
	})

	for _, f := range findings {
		kind := strings.ToUpper(strings.ReplaceAll(f.Detector, "_", " "))
		head := fmt.Sprintf("[ALERT: %s] Found in %s (Line %d)", kind, f.Path, f.Line)
		if !opts.NoColor {
			head = colorSeverity(f.Severity) + head + ansiReset
		}
		fmt.Fprintln(w, head)
		switch f.Detector {
		case rules.IDEmail:
			fmt.Fprintf(w, "    Line: %s\n", f.Context)
			fmt.Fprintf(w, "Email found: %s\n", f.Match)
		case rules.IDPassword:
			fmt.Fprintf(w, "   LEAKED PASSWORD: %q\n", f.Secret)
		case rules.IDAPIKey:
			fmt.Fprintf(w, "   LEAKED API_KEY: %q\n", f.Secret)
		default:
			fmt.Fprintf(w, "    Line: %s\n", f.Context)
			fmt.Fprintf(w, "   LEAKED VALUE: %q\n", f.Secret)
		}
		fmt.Fprintln(w, separator)
	}

	if len(findings) == 0 {
		fmt.Fprintln(w, "No issues found ✅")
	}
	fmt.Fprintln(w, "Operation completed successfully")
	fmt.Fprintf(w, "Total issues found: %d\n", len(findings))
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
}

// ShouldFail reports whether any finding meets the fail-on severity threshold.
// Unknown thresholds default to medium.
func ShouldFail(findings []types.Finding, failOn string) bool {
	level := map[string]int{"low": 1, "medium": 2, "high": 3}
	th := level[failOn]
	if th == 0 {
		th = 2
	}
	for _, f := range findings {
		if level[string(f.Severity)] >= th {
			return true
		}
	}
	return false
}

const ansiReset = "\x1b[0m"

func colorSeverity(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "\x1b[31m" // red
	case types.SevMed:
		return "\x1b[33m" // yellow
	default:
		return "\x1b[36m" // cyan
	}
}
