// Package display lays the art block and the fact list out side by side.
package display

import (
	"fmt"
	"io"
	"strings"

	"treefetch/sysinfo"
)

// Decorate paints every ornament glyph in line red, switching back to green
// afterwards so the rest of the row keeps the tree color.
func Decorate(line string, p sysinfo.Palette) string {
	return strings.ReplaceAll(line, sysinfo.Ornament, p.Red+sysinfo.Ornament+p.Green)
}

// SideBySide writes art and facts as joined rows, art on the left.
//
// Parameters:
//   - w: Destination for the rendered rows
//   - art: Pre-colored art lines, written verbatim
//   - facts: Fact lines; decorated with Decorate when festive is set
//   - festive: Enables Christmas ornament coloring
//   - p: Palette supplying the ornament colors
//
// Returns:
//   - The number of rows written, max(len(art), len(facts)) on success
//   - The first write error, after which no further rows are written
//
// Every row ends with exactly one newline, even when one side has run out.
func SideBySide(w io.Writer, art, facts []string, festive bool, p sysinfo.Palette) (int, error) {
	rows := max(len(art), len(facts))

	for i := 0; i < rows; i++ {
		var artLine, factLine string
		if i < len(art) {
			artLine = art[i]
		}
		if i < len(facts) {
			factLine = facts[i]
			if festive {
				factLine = Decorate(factLine, p)
			}
		}

		if _, err := fmt.Fprintf(w, "%s%s\n", artLine, factLine); err != nil {
			return i, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	return rows, nil
}
