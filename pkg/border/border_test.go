package border

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// rowWidths returns the printed width of every line in a rendered block.
func rowWidths(t *testing.T, block string) []int {
	t.Helper()
	lines := strings.Split(block, "\n")
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = runewidth.StringWidth(line)
	}
	return widths
}

func assertRectangular(t *testing.T, block string) {
	t.Helper()
	widths := rowWidths(t, block)
	for i, w := range widths[1:] {
		if w != widths[0] {
			t.Fatalf("row %d width %d != row 0 width %d\n%s", i+1, w, widths[0], block)
		}
	}
}

func TestRender_TwoUnevenColumnsASCII(t *testing.T) {
	t.Parallel()
	block := Render([][]string{{"a", "bb"}, {"ccc"}}, true)
	assertRectangular(t, block)

	lines := strings.Split(block, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d:\n%s", len(lines), block)
	}

	// Column widths: widest line + 9 padding.
	want := []string{
		"+-----------+    +------------+",
		"|a          |    |ccc         |",
		"|bb         |    +------------+",
		"+-----------+                  ",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("row %d mismatch:\n got %q\nwant %q", i, line, want[i])
		}
	}
}

func TestRender_SecondColumnPaddedToOwnWidth(t *testing.T) {
	t.Parallel()
	block := Render([][]string{{"aaaaaaaa"}, {"b"}}, true)
	lines := strings.Split(block, "\n")

	// The short column's cell is padded to its own computed width (1+9),
	// not to the wide column's.
	if !strings.Contains(lines[1], "|b         |") {
		t.Errorf("second column not padded to its own width: %q", lines[1])
	}
}

func TestRender_UnicodeGlyphsByDefault(t *testing.T) {
	t.Parallel()
	block := Render([][]string{{"hi"}}, false)
	assertRectangular(t, block)

	for _, glyph := range []string{"┌", "┐", "└", "┘", "─", "│"} {
		if !strings.Contains(block, glyph) {
			t.Errorf("missing box-drawing glyph %q:\n%s", glyph, block)
		}
	}
	if strings.ContainsAny(block, "+-|") {
		t.Errorf("unexpected ASCII border characters:\n%s", block)
	}
}

func TestRender_EmptyColumnIsTopAndBottomBorder(t *testing.T) {
	t.Parallel()
	block := Render([][]string{{}}, true)
	lines := strings.Split(block, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 rows, got %d:\n%s", len(lines), block)
	}
	if lines[0] != "+---------+" || lines[1] != "+---------+" {
		t.Errorf("unexpected borders:\n%s", block)
	}
}

func TestRender_EmptyColumnBesideTallColumn(t *testing.T) {
	t.Parallel()
	block := Render([][]string{{}, {"x", "y"}}, true)
	assertRectangular(t, block)

	lines := strings.Split(block, "\n")
	// The empty column closes on the first content row and leaves blank
	// filler afterwards.
	if !strings.HasPrefix(lines[1], "+---------+") {
		t.Errorf("empty column did not close on row 1: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", 11)) {
		t.Errorf("expected blank filler for closed column: %q", lines[2])
	}
}

func TestRender_NoColumns(t *testing.T) {
	t.Parallel()
	if got := Render(nil, false); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestRender_WideRunesKeepGridAligned(t *testing.T) {
	t.Parallel()
	block := Render([][]string{{"日本語", "ascii"}, {"x"}}, true)
	assertRectangular(t, block)
}

func TestRender_ThreeColumns(t *testing.T) {
	t.Parallel()
	block := Render([][]string{{"a"}, {"b", "b"}, {"c", "c", "c"}}, true)
	assertRectangular(t, block)

	lines := strings.Split(block, "\n")
	// top + 3 content rows + final border row
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d:\n%s", len(lines), block)
	}
	// Each column closes on the first row past its own content.
	if !strings.HasPrefix(lines[2], "+----------+") {
		t.Errorf("column 0 should close on row 2: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], strings.Repeat(" ", 12)+"    +----------+") {
		t.Errorf("column 1 should close on row 3: %q", lines[3])
	}
	if !strings.HasSuffix(lines[4], "+----------+") {
		t.Errorf("column 2 should close on the final row: %q", lines[4])
	}
}
