// Package message defines the platform-agnostic content blocks produced by
// the formatting helpers: plain text pages and text-as-file attachments.
package message

// BlockType discriminates the variant stored in a ContentBlock.
type BlockType string

// Supported block types.
const (
	BlockText BlockType = "text"
	BlockFile BlockType = "file"
)

// ContentBlock is a flat union representing one piece of outbound content.
// The Type field discriminates which fields are meaningful.
type ContentBlock struct {
	Type     BlockType `json:"type"`
	Text     string    `json:"text,omitempty"`
	FileName string    `json:"file_name,omitempty"`
	Spoiler  bool      `json:"spoiler,omitempty"`
	Data     []byte    `json:"data,omitempty"`
}

// NewTextBlock creates a text content block.
func NewTextBlock(text string) ContentBlock {
	return ContentBlock{Type: BlockText, Text: text}
}

// NewFileBlock creates a file content block carrying raw bytes.
func NewFileBlock(name string, data []byte) ContentBlock {
	return ContentBlock{Type: BlockFile, FileName: name, Data: data}
}

// IsText reports whether the block carries message text.
func (b ContentBlock) IsText() bool {
	return b.Type == BlockText
}
