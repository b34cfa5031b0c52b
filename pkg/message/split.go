package message

import (
	"strings"

	"github.com/flemzord/chatfmt/pkg/pagify"
)

// Split pages text with the given options and wraps every page in a text
// block, ready for outbound delivery. Text that fits within the page limit
// yields a single block; whitespace-only text yields none.
func Split(text string, opts pagify.Options) []ContentBlock {
	var blocks []ContentBlock
	pager := pagify.New(text, opts)
	for {
		page, ok := pager.Next()
		if !ok {
			return blocks
		}
		blocks = append(blocks, NewTextBlock(page))
	}
}

// TextContent returns the concatenated text of all text blocks, joined with
// newlines.
func TextContent(blocks []ContentBlock) string {
	var parts []string
	for _, b := range blocks {
		if b.IsText() {
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n")
}
