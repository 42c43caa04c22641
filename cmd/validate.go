package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset's referential and temporal consistency",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.close()

		if err := p.load(); err != nil {
			return err
		}

		if len(p.findings) == 0 {
			fmt.Fprintln(os.Stderr, "✓ dataset is consistent")
			return nil
		}
		for _, f := range p.findings {
			fmt.Fprintf(os.Stderr, "✗ %s\n", f)
		}
		fmt.Fprintf(os.Stderr, "%d findings\n", len(p.findings))
		// Findings are advisory; the exit status stays zero.
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
