// Package format provides markdown decoration and escaping helpers for
// building chat-message-safe strings.
//
// Decorators that apply inline markdown (Bold, Italics, Strikethrough,
// Underline) escape markdown control characters in their input first, so
// arbitrary user text can be passed in directly. Inline, Box, and Quote wrap
// text verbatim.
package format

import "strings"

// Emoji prefixes used by the status helpers. The variation selector forces
// emoji presentation on platforms that default to text glyphs.
const (
	errorEmoji    = "\U0001f6ab"    // no entry sign
	warningEmoji  = "\u26a0\ufe0f"  // warning sign
	infoEmoji     = "\u2139\ufe0f"  // information source
	questionEmoji = "\u2753\ufe0f"  // question mark ornament
)

// Error returns text prefixed with an error emoji.
func Error(text string) string {
	return errorEmoji + " " + text
}

// Warning returns text prefixed with a warning emoji.
func Warning(text string) string {
	return warningEmoji + " " + text
}

// Info returns text prefixed with an info emoji.
func Info(text string) string {
	return infoEmoji + " " + text
}

// Question returns text prefixed with a question emoji.
func Question(text string) string {
	return questionEmoji + " " + text
}

// Bold returns text wrapped in bold markers, escaping any markdown in it.
func Bold(text string) string {
	return "**" + EscapeMarkdown(text) + "**"
}

// Italics returns text wrapped in italic markers, escaping any markdown in it.
func Italics(text string) string {
	return "*" + EscapeMarkdown(text) + "*"
}

// Strikethrough returns text with a strikethrough, escaping any markdown in it.
func Strikethrough(text string) string {
	return "~~" + EscapeMarkdown(text) + "~~"
}

// Underline returns text with an underline, escaping any markdown in it.
func Underline(text string) string {
	return "__" + EscapeMarkdown(text) + "__"
}

// Inline returns text as inline code. Text containing a backtick is wrapped
// in double backticks so the inner backtick survives.
func Inline(text string) string {
	if strings.Contains(text, "`") {
		return "``" + text + "``"
	}
	return "`" + text + "`"
}

// Box returns text in a fenced code block. lang sets the syntax highlighting
// language and may be empty.
func Box(text, lang string) string {
	return "```" + lang + "\n" + text + "\n```"
}

// Quote prefixes every line of text, including empty ones, with "> ".
func Quote(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
