package message

// TextToFile packages text as a file attachment block, sidestepping message
// length limits entirely. An empty filename defaults to "file.txt". Set
// spoiler to ask the transport to hide the attachment behind a click.
func TextToFile(text, filename string, spoiler bool) ContentBlock {
	if filename == "" {
		filename = "file.txt"
	}
	block := NewFileBlock(filename, []byte(text))
	block.Spoiler = spoiler
	return block
}
