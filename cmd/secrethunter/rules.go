package secrethunter

import (
	"fmt"

	"github.com/secrethunter/secrethunter/internal/engine"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available detection rules",
		Run: func(_ *cobra.Command, _ []string) {
			for _, id := range engine.RuleIDs() {
				fmt.Println(id)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
