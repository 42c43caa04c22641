package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmarsden/orbitledger/internal/roster"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Match a flat-text name checklist against the dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.close()

		if err := p.load(); err != nil {
			return err
		}

		names, err := roster.Load(p.cfg.ChecklistFile)
		if err != nil {
			return err
		}
		res := roster.Match(names, p.directory)

		for _, name := range res.Matched {
			fmt.Fprintf(os.Stderr, "✓ %s\n", name)
		}
		for _, name := range res.Missing {
			fmt.Fprintf(os.Stderr, "✗ %s (not in dataset)\n", name)
		}
		fmt.Fprintf(os.Stderr, "%d of %d checklist names found\n", len(res.Matched), len(names))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checklistCmd)
}
