package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmarsden/orbitledger/internal/report"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Cross-check first-flight timelines against the external dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.close()

		if err := p.load(); err != nil {
			return err
		}
		rec, err := p.reconcileExternal()
		if err != nil {
			return err
		}

		format := &report.ReconcileReport{}
		out, err := format.Render(p.data(rec))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
