// Package main provides the codebook command, a debugging aid that
// extracts the variable label mapping and dumps it as YAML.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EthanSansom/gssgenderedchildcare/internal/codebook"
	"github.com/EthanSansom/gssgenderedchildcare/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the pipeline configuration file")
	outputPath := flag.String("output", "", "Path to write the mapping YAML (default stdout)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	lines, err := codebook.ReadDocument(cfg.Inputs.Codebook)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading codebook: %v\n", err)
		os.Exit(1)
	}

	labels, err := codebook.NewParser().ParseLines(
		lines,
		cfg.Codebook.LabelLineStart,
		cfg.Codebook.LabelLineEnd,
		cfg.Codebook.DuplicateSuffix,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting labels: %v\n", err)
		os.Exit(1)
	}

	data, err := yaml.Marshal(codebook.Mapping(labels))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling mapping: %v\n", err)
		os.Exit(1)
	}

	if *outputPath == "" {
		fmt.Print(string(data))

		return
	}

	if err := os.WriteFile(*outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing mapping: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d labels to %s\n", len(labels), *outputPath)
}
