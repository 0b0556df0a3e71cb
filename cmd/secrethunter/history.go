package secrethunter

import (
	"fmt"

	"github.com/secrethunter/secrethunter/internal/audit"
	"github.com/secrethunter/secrethunter/internal/engine"
	"github.com/spf13/cobra"
)

var flagHistoryPath string

func init() {
	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show the audit journal of past scans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := flagHistoryPath
			if len(args) == 1 {
				path = args[0]
			}
			root, err := engine.ValidateRoot(path)
			if err != nil {
				return err
			}
			recs, err := audit.New(root).History()
			if err != nil {
				return fmt.Errorf("no audit journal for %s (run scan --audit first)", root)
			}
			for _, r := range recs {
				fmt.Printf("%s  findings=%d files=%d duration=%s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.TotalFindings, r.FilesScanned, r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagHistoryPath, "path", "p", ".", "scan root whose journal to show")
	rootCmd.AddCommand(cmd)
}
