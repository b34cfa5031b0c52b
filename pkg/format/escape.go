package format

import "strings"

// zeroWidthSpace is inserted after the @ of a mass mention so chat platforms
// no longer treat it as a ping while the text still reads the same.
const zeroWidthSpace = "\u200b"

var massMentionReplacer = strings.NewReplacer(
	"@everyone", "@"+zeroWidthSpace+"everyone",
	"@here", "@"+zeroWidthSpace+"here",
)

// markdownSpecialChars lists the markdown control characters that must be
// backslash-escaped so they render literally.
var markdownSpecialChars = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	`|`, `\|`,
	"`", "\\`",
)

// EscapeMassMentions neutralizes @everyone and @here mentions by inserting a
// zero-width space between the @ and the word.
func EscapeMassMentions(text string) string {
	return massMentionReplacer.Replace(text)
}

// EscapeMarkdown escapes all markdown formatting characters in text.
func EscapeMarkdown(text string) string {
	return markdownSpecialChars.Replace(text)
}

// Escape applies mass-mention and/or markdown escaping to text. The two modes
// are independent and composable; ordinary text passes through unchanged.
func Escape(text string, massMentions, formatting bool) string {
	if massMentions {
		text = EscapeMassMentions(text)
	}
	if formatting {
		text = EscapeMarkdown(text)
	}
	return text
}
