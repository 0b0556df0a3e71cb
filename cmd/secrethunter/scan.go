package secrethunter

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/secrethunter/secrethunter/internal/audit"
	"github.com/secrethunter/secrethunter/internal/config"
	"github.com/secrethunter/secrethunter/internal/engine"
	"github.com/secrethunter/secrethunter/internal/report"
	"github.com/secrethunter/secrethunter/internal/rules"
	"github.com/secrethunter/secrethunter/internal/types"
	"github.com/secrethunter/secrethunter/pkg/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagPath            string
	flagInclude         string
	flagExclude         string
	flagExtensions      string
	flagMaxBytes        int64
	flagFollowSymlinks  bool
	flagDefaultExcludes bool
	flagDecodePolicy    string
	flagFileTimeout     time.Duration
	flagAudit           bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a directory tree for leaked credentials and emails",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringVar(&flagExtensions, "extensions", "", "comma-separated extension allowlist (default built-in text set)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagFollowSymlinks, "follow-symlinks", false, "descend into symlinked directories (cycle-safe)")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "skip well-known junk directories (node_modules, .git, etc.)")
	cmd.Flags().StringVar(&flagDecodePolicy, "decode-policy", "", "handling of invalid UTF-8 bytes: replace|drop (default replace)")
	cmd.Flags().DurationVar(&flagFileTimeout, "file-timeout", 0, "per-file time budget (0 = built-in default)")
	cmd.Flags().BoolVar(&flagAudit, "audit", false, "append a scan record to the audit journal")
}

func runScan(cmd *cobra.Command, args []string) error {
	path := flagPath
	if len(args) == 1 {
		path = args[0]
	}
	root, err := engine.ValidateRoot(path)
	if err != nil {
		return err
	}

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}

	timeout := flagFileTimeout
	if timeout == 0 {
		if s := pickString("", lcfg.FileTimeout, gcfg.FileTimeout); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				timeout = d
			}
		}
	}

	policy := rules.DecodePolicy(pickString(flagDecodePolicy, lcfg.DecodePolicy, gcfg.DecodePolicy))
	if policy != "" && !policy.Valid() {
		return fmt.Errorf("unknown decode policy %q (want replace or drop)", policy)
	}

	// The flag default is non-zero, so only an explicit --max-bytes beats the
	// config files.
	maxBytes := flagMaxBytes
	if !cmd.Flags().Changed("max-bytes") {
		if v := pickInt64(0, lcfg.MaxBytes, gcfg.MaxBytes); v != 0 {
			maxBytes = v
		}
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !noColor && !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	cfg := engine.Config{
		Root:            root,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		Extensions:      splitList(pickString(flagExtensions, lcfg.Extensions, gcfg.Extensions)),
		MaxBytes:        maxBytes,
		Threads:         pickInt(flagThreads, lcfg.Threads, gcfg.Threads),
		FollowSymlinks:  pickBool(flagFollowSymlinks, lcfg.FollowSymlinks, gcfg.FollowSymlinks),
		DefaultExcludes: flagDefaultExcludes,
		DecodePolicy:    policy,
		NoCache:         pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		FileTimeout:     timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flagJSON && !flagSARIF {
		fmt.Fprintf(os.Stderr, "Scanning %s with %d rules...\n", root, len(engine.RuleIDs()))
	}

	// Simple textual progress on stderr
	total, _ := engine.CountTargets(cfg)
	progressed := 0
	if total > 0 && !flagJSON && !flagSARIF {
		cfg.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				fmt.Fprintf(os.Stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}

	res, scanErr := engine.ScanContext(ctx, cfg)
	if total > 0 && !flagJSON && !flagSARIF {
		fmt.Fprintln(os.Stderr)
	}

	for _, e := range res.Errors {
		fmt.Fprintln(os.Stderr, "warning:", e.Error())
	}

	findings := res.Findings
	if findings == nil {
		findings = []types.Finding{}
	} // no `null` in JSON

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, findings, version); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if err := core.MarshalFindings(os.Stdout, findings); err != nil {
			return err
		}
	default:
		report.PrintAlerts(os.Stdout, findings, report.PrintOptions{
			NoColor:      noColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	}

	// Interruption: partial results were rendered above, still a non-success run.
	if scanErr != nil {
		return scanErr
	}

	if pickBool(flagAudit, lcfg.Audit, gcfg.Audit) {
		rec := audit.NewRecord(root, findings, res.FilesScanned, res.Duration)
		if err := audit.New(root).Append(rec); err != nil {
			fmt.Fprintln(os.Stderr, "audit warning:", err)
		}
	}

	if failOn := pickString(flagFailOn, lcfg.FailOn, gcfg.FailOn); failOn != "" && report.ShouldFail(findings, failOn) {
		os.Exit(1)
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
