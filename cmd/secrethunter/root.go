package secrethunter

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagThreads int
	flagFailOn  string
	flagNoColor bool
	flagNoCache bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the secrethunter CLI.
var rootCmd = &cobra.Command{
	Use:           "secrethunter",
	Short:         "Hunt hardcoded credentials and exposed emails in a directory tree",
	Long:          "secrethunter walks a directory tree and flags lines in text files that look like hardcoded passwords, API keys, or exposed email addresses.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the secrethunter CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit 1 when findings reach low|medium|high (empty = never)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental scan cache")
}
