package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/techlukas42/wave-function-collapse/pkg/export"
	"github.com/techlukas42/wave-function-collapse/pkg/tile"
	"github.com/techlukas42/wave-function-collapse/pkg/wfc"
)

const setYAML = `dir: circuit
fields:
  - name: substrate.png
    rotateable: false
    sides: [i-substrate, i-substrate, i-substrate, i-substrate]
    weight: 5
  - name: wire.png
    rotateable: true
    sides: [i-wire, i-substrate, i-wire, i-substrate]
    weight: 2
  - name: cross.png
    rotateable: false
    sides: [i-wire, i-wire, i-wire, i-wire]
    weight: 1
`

const runYAML = `seed: 424242
catalog: %CATALOG%
grid:
  width: 8
  height: 8
boundary:
  north: [substrate.png]
  south: [substrate.png]
`

// writeRun materializes the catalog and run config in a temp dir and
// returns the loaded config.
func writeRun(t *testing.T) *wfc.Config {
	t.Helper()
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "circuit.yaml")
	if err := os.WriteFile(catalogPath, []byte(setYAML), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	doc := strings.ReplaceAll(runYAML, "%CATALOG%", catalogPath)
	cfg, err := wfc.LoadConfigFromBytes([]byte(doc))
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	return cfg
}

func TestPipeline_EndToEnd(t *testing.T) {
	cfg := writeRun(t)

	artifact, err := wfc.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if artifact.Grid.Width != 8 || artifact.Grid.Height != 8 {
		t.Fatalf("grid is %dx%d, want 8x8", artifact.Grid.Width, artifact.Grid.Height)
	}
	if !artifact.Report.Passed {
		t.Fatalf("validation failed: %v", artifact.Report.Violations)
	}

	// Both constrained rows sit on tiles facing substrate outward.
	for x := 0; x < 8; x++ {
		top := artifact.Grid.At(x, 0)
		if top.Sides[tile.North] != "i-substrate" {
			t.Errorf("top row tile %q has north edge %q", top.ImageName, top.Sides[tile.North])
		}
		bottom := artifact.Grid.At(x, 7)
		if bottom.Sides[tile.South] != "i-substrate" {
			t.Errorf("bottom row tile %q has south edge %q", bottom.ImageName, bottom.Sides[tile.South])
		}
	}
}

func TestPipeline_ExportFormats(t *testing.T) {
	cfg := writeRun(t)

	artifact, err := wfc.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	outDir := t.TempDir()

	svgPath := filepath.Join(outDir, "wave.svg")
	if err := export.SaveSVGToFile(artifact.Grid, artifact.Set, svgPath, export.DefaultSVGOptions()); err != nil {
		t.Fatalf("SVG export: %v", err)
	}
	jsonPath := filepath.Join(outDir, "wave.json")
	if err := export.SaveJSONToFile(artifact.Grid, artifact.Set, jsonPath); err != nil {
		t.Fatalf("JSON export: %v", err)
	}
	tmjPath := filepath.Join(outDir, "wave.tmj")
	if err := export.SaveTMJToFile(artifact.Grid, artifact.Set, tmjPath, export.DefaultTMJOptions()); err != nil {
		t.Fatalf("TMJ export: %v", err)
	}

	for _, p := range []string{svgPath, jsonPath, tmjPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Errorf("stat %s: %v", p, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}

	if txt := export.RenderText(artifact.Grid); len(txt) == 0 {
		t.Error("text render is empty")
	}
}

func TestPipeline_ByteIdenticalReruns(t *testing.T) {
	cfg := writeRun(t)

	first, err := wfc.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := wfc.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	svg1, err := export.ExportSVG(first.Grid, first.Set, export.DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	svg2, err := export.ExportSVG(second.Grid, second.Set, export.DefaultSVGOptions())
	if err != nil {
		t.Fatalf("ExportSVG: %v", err)
	}
	if string(svg1) != string(svg2) {
		t.Error("same config produced different SVG bytes")
	}

	json1, err := export.ExportJSON(first.Grid, first.Set)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	json2, err := export.ExportJSON(second.Grid, second.Set)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if string(json1) != string(json2) {
		t.Error("same config produced different JSON bytes")
	}
}
