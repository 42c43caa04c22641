package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmarsden/orbitledger/internal/store"
	"github.com/tmarsden/orbitledger/internal/telemetry"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a snapshot of the joined dataset",
	Long: "Write the joined dataset (missions, trips, astronauts with derived " +
		"durations and first launches) to a file for downstream tools. " +
		"Formats: toml, sqlite.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "toml", "export format: toml or sqlite")
	exportCmd.Flags().StringP("out", "o", "", "output path (default orbitledger.toml / orbitledger.db)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd)
	if err != nil {
		return err
	}
	defer p.close()

	if err := p.load(); err != nil {
		return err
	}

	snap := store.Build(p.registry, p.ledger, p.directory, p.now())

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	switch format {
	case "toml":
		if out == "" {
			out = "orbitledger.toml"
		}
		err = store.SaveTOML(out, snap)
	case "sqlite":
		if out == "" {
			out = "orbitledger.db"
		}
		err = store.ExportSQLite(cmd.Context(), out, snap)
	default:
		return fmt.Errorf("unknown export format: %q", format)
	}
	if err != nil {
		return err
	}

	p.emit(telemetry.KindExportDone, "export", map[string]string{"format": format, "path": out})
	fmt.Fprintf(os.Stderr, "wrote %s\n", out)
	return nil
}
