package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/techlukas42/wave-function-collapse/pkg/wave"
)

// RenderText produces a terminal preview of a solved grid: one letter
// per cell, assigned alphabetically per distinct image name, with a
// legend underneath. Rotations are not shown.
func RenderText(grid *wave.Grid) string {
	if grid == nil {
		return "no grid"
	}

	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, f := range grid.Fields {
		if _, ok := seen[f.ImageName]; ok {
			continue
		}
		seen[f.ImageName] = struct{}{}
		names = append(names, f.ImageName)
	}
	sort.Strings(names)

	letters := make(map[string]byte, len(names))
	for i, name := range names {
		letters[name] = byte('a' + i%26)
	}

	var sb strings.Builder
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			sb.WriteByte(letters[grid.At(x, y).ImageName])
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	for _, name := range names {
		fmt.Fprintf(&sb, "%c = %s\n", letters[name], name)
	}
	return sb.String()
}
