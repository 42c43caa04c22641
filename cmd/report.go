package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmarsden/orbitledger/internal/report"
	"github.com/tmarsden/orbitledger/internal/watch"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a single report format",
	Long: "Render one report to stdout. Formats: " +
		strings.Join(report.FormatNames(), ", ") + ".",
	RunE: runReport,
}

func init() {
	reportCmd.Flags().String("format", "summary", "report format to render")
	reportCmd.Flags().Bool("watch", false, "re-render when an input file changes")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := report.FormatByName(name)
	if err != nil {
		return err
	}

	render := func() error {
		p, err := newPipeline(cmd)
		if err != nil {
			return err
		}
		defer p.close()

		if err := p.load(); err != nil {
			return err
		}

		var data *report.Data
		if name == "reconcile" || name == "summary" {
			rec, err := p.reconcileExternal()
			if err != nil && name == "reconcile" {
				return err
			}
			data = p.data(rec)
		} else {
			data = p.data(nil)
		}

		out, err := format.Render(data)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	if err := render(); err != nil {
		return err
	}

	if watchMode, _ := cmd.Flags().GetBool("watch"); !watchMode {
		return nil
	}
	return watchAndRender(cmd, render)
}

// watchAndRender blocks, re-rendering whenever a watched input file changes.
func watchAndRender(cmd *cobra.Command, render func() error) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	defer p.close()

	w, err := watch.New(
		p.cfg.TripsFile,
		p.cfg.MissionsFile,
		p.cfg.ExternalMissionsFile,
		p.cfg.ExternalRidesFile,
	)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Stop()

	for change := range w.Changes {
		fmt.Printf("-- %s changed, re-rendering --\n", change.File)
		if err := render(); err != nil {
			// A half-saved file should not kill watch mode; report and wait
			// for the next change.
			fmt.Printf("render failed: %v\n", err)
		}
	}
	return nil
}
