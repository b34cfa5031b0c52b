package format

import "testing"

func TestEscapeMassMentions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"everyone", "@everyone hi", "@\u200beveryone hi"},
		{"here", "hey @here", "hey @\u200bhere"},
		{"both", "@everyone @here", "@\u200beveryone @\u200bhere"},
		{"ordinary text untouched", "email me @ home", "email me @ home"},
		{"user mention untouched", "<@123456>", "<@123456>"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EscapeMassMentions(tt.in); got != tt.want {
				t.Errorf("EscapeMassMentions(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"asterisks", "a *b* c", `a \*b\* c`},
		{"underscores", "_em_", `\_em\_`},
		{"backticks", "`code`", "\\`code\\`"},
		{"backslash first", `a\*`, `a\\\*`},
		{"mixed", "~x~ |y|", `\~x\~ \|y\|`},
		{"plain text untouched", "hello world", "hello world"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EscapeMarkdown(tt.in); got != tt.want {
				t.Errorf("EscapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscape_ModesCompose(t *testing.T) {
	t.Parallel()
	in := "@everyone *hi*"

	if got := Escape(in, false, false); got != in {
		t.Errorf("no-op escape changed text: %q", got)
	}
	if got := Escape(in, true, false); got != "@\u200beveryone *hi*" {
		t.Errorf("mass-mention mode: %q", got)
	}
	if got := Escape(in, false, true); got != `@everyone \*hi\*` {
		t.Errorf("formatting mode: %q", got)
	}
	if got := Escape(in, true, true); got != "@\u200beveryone \\*hi\\*" {
		t.Errorf("both modes: %q", got)
	}
}
