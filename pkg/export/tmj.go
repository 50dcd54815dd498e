package export

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/techlukas42/wave-function-collapse/pkg/catalog"
	"github.com/techlukas42/wave-function-collapse/pkg/wave"
)

// Tiled Map JSON (TMJ) export.
// Reference: https://doc.mapeditor.org/en/stable/reference/json-map-format/
//
// Each distinct source image gets one GID; a field's rotation is
// encoded with Tiled's flip flags on the cell value.

// Tiled flip flags, set on the high bits of a cell's GID.
const (
	tmjFlipHorizontal = 0x80000000
	tmjFlipVertical   = 0x40000000
	tmjFlipDiagonal   = 0x20000000
)

// TMJMap is the root TMJ map structure.
type TMJMap struct {
	Type         string       `json:"type"`
	Version      string       `json:"version"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	TileWidth    int          `json:"tilewidth"`
	TileHeight   int          `json:"tileheight"`
	Orientation  string       `json:"orientation"`
	RenderOrder  string       `json:"renderorder"`
	Infinite     bool         `json:"infinite"`
	NextLayerID  int          `json:"nextlayerid"`
	NextObjectID int          `json:"nextobjectid"`
	Layers       []TMJLayer   `json:"layers"`
	Tilesets     []TMJTileset `json:"tilesets"`
}

// TMJLayer is a tile layer with CSV-encoded cell data.
type TMJLayer struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Visible  bool     `json:"visible"`
	Opacity  float64  `json:"opacity"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Data     []uint32 `json:"data"`
	Encoding string   `json:"encoding"`
}

// TMJTileset maps one source image to one GID.
type TMJTileset struct {
	FirstGID   uint32 `json:"firstgid"`
	Name       string `json:"name"`
	TileWidth  int    `json:"tilewidth"`
	TileHeight int    `json:"tileheight"`
	TileCount  int    `json:"tilecount"`
	Columns    int    `json:"columns"`
	Image      string `json:"image"`
}

// TMJOptions configures TMJ export.
type TMJOptions struct {
	TileWidth  int // Tile width in pixels
	TileHeight int // Tile height in pixels
}

// DefaultTMJOptions returns the default tile geometry.
func DefaultTMJOptions() TMJOptions {
	return TMJOptions{TileWidth: 16, TileHeight: 16}
}

// ExportTMJ serializes a solved grid as a single-layer Tiled map. The
// catalog's distinct image names become single-tile tilesets in sorted
// order; rotations map onto Tiled's flip flags.
func ExportTMJ(grid *wave.Grid, set *catalog.Set, opts TMJOptions) ([]byte, error) {
	if grid == nil {
		return nil, fmt.Errorf("grid cannot be nil")
	}
	if set == nil {
		return nil, fmt.Errorf("set cannot be nil")
	}
	if opts.TileWidth <= 0 || opts.TileHeight <= 0 {
		opts = DefaultTMJOptions()
	}

	gids := assignGIDs(set)

	tilesets := make([]TMJTileset, 0, len(gids))
	for name, gid := range gids {
		tilesets = append(tilesets, TMJTileset{
			FirstGID:   gid,
			Name:       name,
			TileWidth:  opts.TileWidth,
			TileHeight: opts.TileHeight,
			TileCount:  1,
			Columns:    1,
			Image:      name,
		})
	}
	sort.Slice(tilesets, func(i, j int) bool { return tilesets[i].FirstGID < tilesets[j].FirstGID })

	data := make([]uint32, 0, grid.Width*grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			f := grid.At(x, y)
			cell := gids[f.ImageName]
			flags, err := rotationFlags(f.Rotation)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			data = append(data, cell|flags)
		}
	}

	doc := TMJMap{
		Type:         "map",
		Version:      "1.10",
		Width:        grid.Width,
		Height:       grid.Height,
		TileWidth:    opts.TileWidth,
		TileHeight:   opts.TileHeight,
		Orientation:  "orthogonal",
		RenderOrder:  "right-down",
		NextLayerID:  2,
		NextObjectID: 1,
		Layers: []TMJLayer{{
			ID:       1,
			Name:     "tiles",
			Type:     "tilelayer",
			Visible:  true,
			Opacity:  1.0,
			Width:    grid.Width,
			Height:   grid.Height,
			Data:     data,
			Encoding: "csv",
		}},
		Tilesets: tilesets,
	}

	return json.MarshalIndent(doc, "", "  ")
}

// SaveTMJToFile serializes a solved grid and writes the TMJ to a file.
func SaveTMJToFile(grid *wave.Grid, set *catalog.Set, filepath string, opts TMJOptions) error {
	data, err := ExportTMJ(grid, set, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// assignGIDs numbers the catalog's distinct image names from 1 in
// sorted order, so GID assignment is independent of catalog order.
func assignGIDs(set *catalog.Set) map[string]uint32 {
	names := make([]string, 0, len(set.Fields))
	seen := make(map[string]struct{}, len(set.Fields))
	for _, f := range set.Fields {
		if _, ok := seen[f.ImageName]; ok {
			continue
		}
		seen[f.ImageName] = struct{}{}
		names = append(names, f.ImageName)
	}
	sort.Strings(names)

	gids := make(map[string]uint32, len(names))
	for i, name := range names {
		gids[name] = uint32(i + 1)
	}
	return gids
}

// rotationFlags translates a clockwise rotation into Tiled flip flags.
func rotationFlags(rotation int) (uint32, error) {
	switch rotation {
	case 0:
		return 0, nil
	case 90:
		return tmjFlipDiagonal | tmjFlipHorizontal, nil
	case 180:
		return tmjFlipHorizontal | tmjFlipVertical, nil
	case 270:
		return tmjFlipDiagonal | tmjFlipVertical, nil
	default:
		return 0, fmt.Errorf("unsupported rotation %d", rotation)
	}
}
