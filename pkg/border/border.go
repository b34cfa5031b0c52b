// Package border renders columns of text lines side by side, each inside its
// own box. The output is a rectangular monospaced grid: every row has the
// same printed width, so the block can be dropped into a code block or any
// monospaced context as-is.
package border

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// glyphs is one set of box-drawing symbols.
type glyphs struct {
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
	horizontal  string
	vertical    string
}

var (
	unicodeGlyphs = glyphs{"┌", "┐", "└", "┘", "─", "│"}
	asciiGlyphs   = glyphs{"+", "+", "+", "+", "-", "|"}
)

// columnSeparator is the fixed gap between adjacent boxes.
const columnSeparator = "    "

// innerPadding is added to each column's widest line to size its box.
const innerPadding = 9

// Render draws each column of lines in its own bordered box, side by side.
// Columns are independent: each box is sized to its own widest line and
// closed as soon as its lines run out, while taller neighbours keep going.
// A column with no lines renders as a top border immediately followed by its
// bottom border. Set ascii to use +, -, | instead of box-drawing glyphs.
//
// Rendering zero columns yields an empty string.
func Render(columns [][]string, ascii bool) string {
	if len(columns) == 0 {
		return ""
	}

	g := unicodeGlyphs
	if ascii {
		g = asciiGlyphs
	}

	widths := make([]int, len(columns))
	height := 0
	for i, column := range columns {
		for _, line := range column {
			if w := runewidth.StringWidth(line); w > widths[i] {
				widths[i] = w
			}
		}
		widths[i] += innerPadding
		if len(column) > height {
			height = len(column)
		}
	}

	var lines []string
	top := make([]string, len(columns))
	for i, width := range widths {
		top[i] = g.topLeft + strings.Repeat(g.horizontal, width) + g.topRight
	}
	lines = append(lines, strings.Join(top, columnSeparator))

	closed := make([]bool, len(columns))
	for rowIdx := 0; rowIdx < height; rowIdx++ {
		row := make([]string, len(columns))
		for i, column := range columns {
			width := widths[i]
			switch {
			case rowIdx < len(column):
				line := column[rowIdx]
				padded := line + strings.Repeat(" ", width-runewidth.StringWidth(line))
				row[i] = g.vertical + padded + g.vertical
			case !closed[i]:
				// First row past this column's content: close its box.
				row[i] = g.bottomLeft + strings.Repeat(g.horizontal, width) + g.bottomRight
				closed[i] = true
			default:
				// Box already closed; keep the grid rectangular.
				row[i] = strings.Repeat(" ", width+2)
			}
		}
		lines = append(lines, strings.Join(row, columnSeparator))
	}

	// Columns as tall as the block itself never hit the closing branch above.
	final := make([]string, len(columns))
	for i, width := range widths {
		if closed[i] {
			final[i] = strings.Repeat(" ", width+2)
		} else {
			final[i] = g.bottomLeft + strings.Repeat(g.horizontal, width) + g.bottomRight
		}
	}
	lines = append(lines, strings.Join(final, columnSeparator))

	return strings.Join(lines, "\n")
}
