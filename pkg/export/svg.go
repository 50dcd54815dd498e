package export

import (
	"bytes"
	"fmt"
	"os"
	"path"

	svg "github.com/ajstarks/svgo"

	"github.com/techlukas42/wave-function-collapse/pkg/catalog"
	"github.com/techlukas42/wave-function-collapse/pkg/wave"
)

// SVGOptions configures SVG visualization export.
type SVGOptions struct {
	TileSize   int    // Rendered tile edge length in pixels
	Margin     int    // Canvas margin in pixels
	Background string // Canvas fill color
	ShowGrid   bool   // Draw cell outlines over the tiles
	Title      string // Optional title above the grid
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		TileSize:   32,
		Margin:     16,
		Background: "#1a1a2e",
		ShowGrid:   false,
	}
}

// ExportSVG renders a solved grid as an SVG document. Each cell
// becomes an image element referencing <dir>/<image name>, rotated
// about its center by the field's rotation. Image availability is the
// viewer's concern.
func ExportSVG(grid *wave.Grid, set *catalog.Set, opts SVGOptions) ([]byte, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid cannot be nil")
	}
	if set == nil {
		return nil, fmt.Errorf("set cannot be nil")
	}

	if opts.TileSize <= 0 {
		opts.TileSize = 32
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}

	titleSpace := 0
	if opts.Title != "" {
		titleSpace = 24
	}
	width := grid.Width*opts.TileSize + 2*opts.Margin
	height := grid.Height*opts.TileSize + 2*opts.Margin + titleSpace

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)

	if opts.Background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+opts.Background)
	}

	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin+4,
			opts.Title, "font-family:monospace;font-size:14px;fill:#e0e0e0")
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			f := grid.At(x, y)
			px := opts.Margin + x*opts.TileSize
			py := opts.Margin + titleSpace + y*opts.TileSize

			href := path.Join(set.Dir, f.ImageName)
			if f.Rotation != 0 {
				cx := px + opts.TileSize/2
				cy := py + opts.TileSize/2
				canvas.Gtransform(fmt.Sprintf("rotate(%d,%d,%d)", f.Rotation, cx, cy))
				canvas.Image(px, py, opts.TileSize, opts.TileSize, href)
				canvas.Gend()
			} else {
				canvas.Image(px, py, opts.TileSize, opts.TileSize, href)
			}
		}
	}

	if opts.ShowGrid {
		style := "stroke:#444466;stroke-width:1;fill:none"
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				canvas.Rect(opts.Margin+x*opts.TileSize, opts.Margin+titleSpace+y*opts.TileSize,
					opts.TileSize, opts.TileSize, style)
			}
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders a solved grid and writes the SVG to a file.
func SaveSVGToFile(grid *wave.Grid, set *catalog.Set, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(grid, set, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}
