package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/techlukas42/wave-function-collapse/pkg/catalog"
	"github.com/techlukas42/wave-function-collapse/pkg/wave"
)

// JSONGrid is the machine-readable form of a solved grid.
type JSONGrid struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Dir    string     `json:"dir"`
	Cells  []JSONCell `json:"cells"`
}

// JSONCell is one placed tile, row-major.
type JSONCell struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Image    string `json:"image"`
	Rotation int    `json:"rotation"`
}

// ExportJSON serializes a solved grid to indented JSON.
func ExportJSON(grid *wave.Grid, set *catalog.Set) ([]byte, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid cannot be nil")
	}
	if set == nil {
		return nil, fmt.Errorf("set cannot be nil")
	}

	doc := JSONGrid{
		Width:  grid.Width,
		Height: grid.Height,
		Dir:    set.Dir,
		Cells:  make([]JSONCell, 0, grid.Width*grid.Height),
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			f := grid.At(x, y)
			doc.Cells = append(doc.Cells, JSONCell{
				X:        x,
				Y:        y,
				Image:    f.ImageName,
				Rotation: f.Rotation,
			})
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}

// SaveJSONToFile serializes a solved grid and writes it to a file.
func SaveJSONToFile(grid *wave.Grid, set *catalog.Set, filepath string) error {
	data, err := ExportJSON(grid, set)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
