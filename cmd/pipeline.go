package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmarsden/orbitledger/internal/clock"
	"github.com/tmarsden/orbitledger/internal/config"
	"github.com/tmarsden/orbitledger/internal/dataset"
	"github.com/tmarsden/orbitledger/internal/reconcile"
	"github.com/tmarsden/orbitledger/internal/report"
	"github.com/tmarsden/orbitledger/internal/telemetry"
	"github.com/tmarsden/orbitledger/internal/validate"
)

// pipeline carries the loaded dataset through the stages every command
// shares: load, validate, reconcile, render.
type pipeline struct {
	cfg     config.Config
	clk     clock.Clock
	emitter *telemetry.Emitter

	registry  dataset.Registry
	ledger    dataset.Ledger
	directory dataset.Directory
	findings  []validate.Finding
}

// newPipeline loads config (with CLI flag overrides applied) and opens the
// telemetry stream if one is configured.
func newPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg := config.Load()
	applyFlagOverrides(cmd, &cfg)

	p := &pipeline{cfg: cfg, clk: clock.NewSystem()}
	if cfg.TelemetryPath != "" {
		emitter, err := telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return nil, err
		}
		p.emitter = emitter
	}
	return p, nil
}

// applyFlagOverrides applies CLI flag values to the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("trips"); v != "" {
		cfg.TripsFile = v
	}
	if v, _ := cmd.Flags().GetString("missions"); v != "" {
		cfg.MissionsFile = v
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
}

// close releases the telemetry stream. Safe on a pipeline without one.
func (p *pipeline) close() {
	_ = p.emitter.Close()
}

// emit records a telemetry event, stamping the current time.
func (p *pipeline) emit(kind, stage string, data any) {
	_ = p.emitter.Emit(telemetry.Event{
		Timestamp: p.clk.Now(),
		Kind:      kind,
		Stage:     stage,
		Data:      data,
	})
}

// load reads both primary tables, builds the astronaut directory, and runs
// the advisory validator. Any construction error is fatal to the run.
func (p *pipeline) load() error {
	p.emit(telemetry.KindLoadStart, "dataset", nil)

	registry, err := dataset.LoadRegistry(p.cfg.MissionsFile, p.clk)
	if err != nil {
		return fmt.Errorf("loading missions: %w", err)
	}
	ledger, err := dataset.LoadLedger(p.cfg.TripsFile)
	if err != nil {
		return fmt.Errorf("loading trips: %w", err)
	}
	directory, err := dataset.BuildDirectory(ledger, registry)
	if err != nil {
		return fmt.Errorf("building astronaut directory: %w", err)
	}

	p.registry = registry
	p.ledger = ledger
	p.directory = directory
	p.findings = validate.Check(ledger, registry)

	for _, f := range p.findings {
		p.emit(telemetry.KindFinding, "validate", f)
	}
	p.emit(telemetry.KindLoadDone, "dataset", map[string]int{
		"missions":   len(registry),
		"trips":      len(ledger),
		"astronauts": len(directory),
		"findings":   len(p.findings),
	})
	return nil
}

// reconcileExternal loads the external dataset and runs the cross-check.
func (p *pipeline) reconcileExternal() (*reconcile.Result, error) {
	missions, err := reconcile.LoadMissions(p.cfg.ExternalMissionsFile)
	if err != nil {
		return nil, fmt.Errorf("loading external missions: %w", err)
	}
	rides, err := reconcile.LoadRides(p.cfg.ExternalRidesFile)
	if err != nil {
		return nil, fmt.Errorf("loading external rides: %w", err)
	}

	first := reconcile.FirstOrbital(missions, rides)
	res := reconcile.CrossCheck(p.directory, first, p.cfg.EpochTime(), p.cfg.Step(), p.clk.Now())

	for _, step := range res.Steps {
		p.emit(telemetry.KindReconcileStep, "reconcile", step)
	}
	p.emit(telemetry.KindReconcileDone, "reconcile", map[string]int{
		"steps":         len(res.Steps),
		"discrepancies": res.Discrepancies,
	})
	return &res, nil
}

// data bundles the pipeline results for the report renderers.
func (p *pipeline) data(rec *reconcile.Result) *report.Data {
	return &report.Data{
		Ledger:    p.ledger,
		Registry:  p.registry,
		Directory: p.directory,
		Findings:  p.findings,
		Reconcile: rec,
		LongestN:  p.cfg.LongestTrips,
	}
}

// now is a convenience for commands needing the injected clock.
func (p *pipeline) now() time.Time { return p.clk.Now() }
