// Package main provides the clean command, which runs the full survey
// cleaning pipeline: label extraction, header renaming, selection,
// recoding and the subpopulation filter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/EthanSansom/gssgenderedchildcare/internal/cleaner"
	"github.com/EthanSansom/gssgenderedchildcare/internal/codebook"
	"github.com/EthanSansom/gssgenderedchildcare/internal/config"
	"github.com/EthanSansom/gssgenderedchildcare/internal/export"
	"github.com/EthanSansom/gssgenderedchildcare/internal/logger"
	"github.com/EthanSansom/gssgenderedchildcare/internal/report"
	"github.com/EthanSansom/gssgenderedchildcare/internal/table"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the pipeline configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	log := logger.NewLogger(cfg.Logging.Level).With("run_id", runID)

	log.Info("starting cleaning pipeline", "config", cfg.String())

	// Phase 1: Label extraction
	lines, err := codebook.ReadDocument(cfg.Inputs.Codebook)
	if err != nil {
		fatal(log, "codebook read failed", err)
	}

	labels, err := codebook.NewParser().ParseLines(
		lines,
		cfg.Codebook.LabelLineStart,
		cfg.Codebook.LabelLineEnd,
		cfg.Codebook.DuplicateSuffix,
	)
	if err != nil {
		fatal(log, "label extraction failed", err)
	}

	mapping := codebook.Mapping(labels)
	log.Info("labels extracted", "count", len(mapping))

	// Phase 2: Rename and checkpoint
	raw, err := table.ReadCSV(cfg.Inputs.RawCSV)
	if err != nil {
		fatal(log, "raw extract read failed", err)
	}

	rowsRaw := raw.NumRows()
	log.Info("raw extract loaded", "rows", rowsRaw, "columns", len(raw.Header))

	processor := cleaner.NewProcessor(cfg.Recode.DurationCapMinutes, cfg.Recode.LivingArrangementCode)

	semi := processor.Rename(raw, mapping)
	if err := table.WriteCSV(semi, cfg.Outputs.SemiClean); err != nil {
		fatal(log, "semi-clean write failed", err)
	}

	log.Info("semi-clean checkpoint written", "path", cfg.Outputs.SemiClean)

	// Phase 3: Select, recode, filter
	clean, recodeStats, err := processor.Clean(semi)
	if err != nil {
		fatal(log, "cleaning failed", err)
	}

	if err := table.WriteCSV(clean, cfg.Outputs.Clean); err != nil {
		fatal(log, "clean write failed", err)
	}

	log.Info("clean table written", "path", cfg.Outputs.Clean, "rows", clean.NumRows())

	if cfg.Outputs.ExportXLSX {
		if err := export.WriteXLSX(clean, cfg.Outputs.XLSX); err != nil {
			fatal(log, "xlsx export failed", err)
		}

		log.Info("xlsx export written", "path", cfg.Outputs.XLSX)
	}

	// Phase 4: Run summary
	summary, err := report.NewSummary(runID, rowsRaw, recodeStats, clean)
	if err != nil {
		fatal(log, "summary failed", err)
	}

	fmt.Println(summary.Render())
}

func fatal(log *logger.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
