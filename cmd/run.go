package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmarsden/orbitledger/internal/report"
	"github.com/tmarsden/orbitledger/internal/stats"
	"github.com/tmarsden/orbitledger/internal/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load, validate, reconcile, and print the full report",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runRun is the default pipeline: load everything, print findings, render
// every report, and finish with the cross-check summary.
func runRun(cmd *cobra.Command, args []string) error {
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
		// The external dataset is a cross-check, not a prerequisite; a run
		// without it still reports everything derived locally.
		fmt.Fprintf(os.Stderr, "skipping reconciliation: %v\n", err)
		rec = nil
	}

	data := p.data(rec)
	for _, name := range []string{"findings", "people", "programmes", "longest", "summary"} {
		format, err := report.FormatByName(name)
		if err != nil {
			return err
		}
		out, err := format.Render(data)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	p.emit(telemetry.KindStatsDone, "stats", map[string]float64{
		"total_days": stats.TotalTimeInOrbit(p.ledger, p.registry),
	})
	return nil
}
