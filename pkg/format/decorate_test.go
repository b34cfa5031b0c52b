package format

import (
	"strings"
	"testing"
)

func TestDecorators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"bold", Bold("hi"), "**hi**"},
		{"bold escapes markdown", Bold("a*b"), `**a\*b**`},
		{"italics", Italics("hi"), "*hi*"},
		{"strikethrough", Strikethrough("hi"), "~~hi~~"},
		{"underline", Underline("hi"), "__hi__"},
		{"underline escapes markdown", Underline("a_b"), `__a\_b__`},
		{"inline", Inline("code"), "`code`"},
		{"inline with backtick", Inline("a`b"), "``a`b``"},
		{"box", Box("text", ""), "```\ntext\n```"},
		{"box with lang", Box("x := 1", "go"), "```go\nx := 1\n```"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()
	got := Quote("one\n\nthree")
	want := "> one\n> \n> three"
	if got != want {
		t.Errorf("Quote() = %q, want %q", got, want)
	}
}

func TestStatusPrefixes(t *testing.T) {
	t.Parallel()
	for name, fn := range map[string]func(string) string{
		"Error":    Error,
		"Warning":  Warning,
		"Info":     Info,
		"Question": Question,
	} {
		got := fn("msg")
		if !strings.HasSuffix(got, " msg") {
			t.Errorf("%s(%q) = %q, want emoji prefix and space", name, "msg", got)
		}
		if len(got) <= len(" msg") {
			t.Errorf("%s produced no prefix: %q", name, got)
		}
	}
}
