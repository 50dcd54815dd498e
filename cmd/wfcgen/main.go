package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/techlukas42/wave-function-collapse/pkg/export"
	"github.com/techlukas42/wave-function-collapse/pkg/wfc"
)

const version = "1.0.0"

// CLI flags
var (
	configPath = flag.String("config", "", "Path to YAML run configuration (optional)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "svg", "Export format: svg, json, tmj, text, or all")
	widthFlag  = flag.Int("width", 16, "Grid width in tiles (ignored with -config)")
	heightFlag = flag.Int("height", 16, "Grid height in tiles (ignored with -config)")
	seedFlag   = flag.Uint64("seed", 0, "Seed override (0 = from config, or time-based)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("wfcgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	validFormats := map[string]bool{
		"svg":  true,
		"json": true,
		"tmj":  true,
		"text": true,
		"all":  true,
	}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: svg, json, tmj, text, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig assembles the run configuration from -config and the
// positional arguments: wfcgen [flags] [catalog-path] [seed]. The
// positionals override the file for compatibility with the original
// invocation shape.
func buildConfig() (*wfc.Config, error) {
	var cfg *wfc.Config
	if *configPath != "" {
		loaded, err := wfc.LoadConfig(*configPath)
		if err != nil {
			return nil, fmt.Errorf("parsing failed: %w", err)
		}
		cfg = loaded
	} else {
		cfg = &wfc.Config{
			Catalog: "res/circuit.yaml",
			Grid:    wfc.GridCfg{Width: *widthFlag, Height: *heightFlag},
		}
	}

	args := flag.Args()
	if len(args) > 0 {
		cfg.Catalog = args[0]
	}
	if len(args) > 1 {
		seed, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing failed: seed %q: %w", args[1], err)
		}
		cfg.Seed = seed
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	return cfg, nil
}

func run() error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if *verbose {
		fmt.Printf("Catalog: %s\n", cfg.Catalog)
		fmt.Printf("Grid: %dx%d\n", cfg.Grid.Width, cfg.Grid.Height)
		fmt.Printf("Using seed: %d\n", cfg.Seed)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	artifact, err := wfc.Generate(cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Solved in %v (%d decisions, %d undos)\n",
			elapsed, artifact.Grid.Decisions, artifact.Grid.Undos)
		printStats(artifact)
	}

	baseName := fmt.Sprintf("wave_%d", cfg.Seed)

	if *format == "svg" || *format == "all" {
		if err := exportSVG(artifact, baseName); err != nil {
			return fmt.Errorf("rendering failed: %w", err)
		}
	}
	if *format == "json" || *format == "all" {
		if err := exportJSON(artifact, baseName); err != nil {
			return fmt.Errorf("rendering failed: %w", err)
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := exportTMJ(artifact, baseName); err != nil {
			return fmt.Errorf("rendering failed: %w", err)
		}
	}
	if *format == "text" || *format == "all" {
		fmt.Print(export.RenderText(artifact.Grid))
	}

	fmt.Printf("Successfully collapsed %dx%d wave (seed=%d) in %v\n",
		artifact.Grid.Width, artifact.Grid.Height, cfg.Seed, elapsed)
	return nil
}

func exportSVG(artifact *wfc.Artifact, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}

	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Wave (seed=%d)", artifact.Seed)
	return export.SaveSVGToFile(artifact.Grid, artifact.Set, filename, opts)
}

func exportJSON(artifact *wfc.Artifact, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	return export.SaveJSONToFile(artifact.Grid, artifact.Set, filename)
}

func exportTMJ(artifact *wfc.Artifact, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".tmj")
	if *verbose {
		fmt.Printf("Exporting TMJ to %s\n", filename)
	}
	return export.SaveTMJToFile(artifact.Grid, artifact.Set, filename, export.DefaultTMJOptions())
}

// printStats prints grid composition statistics.
func printStats(artifact *wfc.Artifact) {
	fmt.Println("\nGrid Statistics:")
	fmt.Printf("  Distinct variants: %d\n", artifact.Stats.Distinct)
	for name, count := range artifact.Stats.TileCounts {
		fmt.Printf("  %s: %d\n", name, count)
	}

	if artifact.Report != nil {
		fmt.Printf("\nValidation: %s\n", validationStatus(artifact.Report.Passed))
		for _, v := range artifact.Report.Violations {
			fmt.Printf("  %s\n", v)
		}
	}
}

func validationStatus(passed bool) string {
	if passed {
		return "✓ PASSED"
	}
	return "✗ FAILED"
}

func printHelp() {
	fmt.Printf("wfcgen version %s\n\n", version)
	fmt.Println("Generates a tile grid with locally compatible edges using")
	fmt.Println("wave function collapse.")
	fmt.Println("\nUsage:")
	fmt.Println("  wfcgen [flags] [catalog-path] [seed]")
	fmt.Println("\nFlags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML run configuration")
	fmt.Println("  -width int / -height int")
	fmt.Println("        Grid size in tiles when no config file is given (default: 16x16)")
	fmt.Println("  -seed uint")
	fmt.Println("        Seed override (0 = from config, or time-based)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: svg, json, tmj, text, or all (default: svg)")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Collapse a 16x16 grid from a tile set")
	fmt.Println("  wfcgen res/circuit.yaml 12345")
	fmt.Println("\n  # Full run configuration with boundary constraints")
	fmt.Println("  wfcgen -config run.yaml -format all -output ./out")
}
