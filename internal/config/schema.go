// Package config handles YAML configuration loading, environment variable
// expansion, and structural validation for the chatfmt CLI.
package config

import "github.com/flemzord/chatfmt/pkg/pagify"

// Config is the top-level configuration structure. It holds the default
// formatting parameters applied when a command-line flag is not given.
type Config struct {
	Pagify PagifyConfig `yaml:"pagify"`
	Border BorderConfig `yaml:"border"`
}

// PagifyConfig holds the default page-splitting parameters.
type PagifyConfig struct {
	// PageLength is the maximum length of each page in bytes.
	PageLength int `yaml:"page_length"`

	// ShortenBy reserves headroom on every page for transport overhead.
	ShortenBy int `yaml:"shorten_by"`

	// Delimiters lists the substrings where page breaks may occur.
	Delimiters []string `yaml:"delimiters"`

	// Priority breaks at the first listed delimiter with a match instead of
	// the one that allows the longest page.
	Priority bool `yaml:"priority"`

	// EscapeMassMentions neutralizes @everyone/@here in emitted pages.
	// Absent means enabled.
	EscapeMassMentions *bool `yaml:"escape_mass_mentions"`
}

// BorderConfig holds the default bordered-layout parameters.
type BorderConfig struct {
	// ASCII draws borders with +, -, | instead of box-drawing glyphs.
	ASCII bool `yaml:"ascii"`
}

// Default returns the configuration used when no config file is present,
// matching pagify.DefaultOptions.
func Default() *Config {
	opts := pagify.DefaultOptions()
	return &Config{
		Pagify: PagifyConfig{
			PageLength: opts.PageLength,
			ShortenBy:  opts.ShortenBy,
			Delimiters: opts.Delims,
		},
	}
}

// Options converts the pagify section into the library's option struct.
func (c *Config) Options() pagify.Options {
	escape := true
	if c.Pagify.EscapeMassMentions != nil {
		escape = *c.Pagify.EscapeMassMentions
	}
	return pagify.Options{
		Delims:             c.Pagify.Delimiters,
		Priority:           c.Pagify.Priority,
		EscapeMassMentions: escape,
		ShortenBy:          c.Pagify.ShortenBy,
		PageLength:         c.Pagify.PageLength,
	}
}
