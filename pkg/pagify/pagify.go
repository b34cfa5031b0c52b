// Package pagify splits long text into pages that fit a chat platform's
// message length limit, preferring to break at caller-supplied delimiters.
//
// Pages are produced lazily through a Pager, so very large inputs are never
// materialized as a full page list unless the caller asks for one with Pages.
package pagify

import (
	"strings"
	"unicode/utf8"

	"github.com/flemzord/chatfmt/pkg/format"
)

// Options controls how text is split into pages.
type Options struct {
	// Delims lists the substrings where page breaks may occur, e.g. "\n".
	// If none occur within a page, the page breaks at the length limit.
	Delims []string

	// Priority selects the break delimiter by its position in Delims rather
	// than by whichever delimiter allows the longest page.
	Priority bool

	// EscapeMassMentions neutralizes @everyone and @here in every emitted
	// page. The extra zero-width characters are budgeted for up front so
	// escaped pages still respect the length limit.
	EscapeMassMentions bool

	// ShortenBy reserves headroom on every page for overhead the transport
	// may add after splitting.
	ShortenBy int

	// PageLength is the maximum length of each page in bytes.
	PageLength int
}

// DefaultOptions returns the standard splitting options: break on newlines,
// escape mass mentions, and fit pages into a 2000-byte limit with 8 bytes of
// headroom.
func DefaultOptions() Options {
	return Options{
		Delims:             []string{"\n"},
		EscapeMassMentions: true,
		ShortenBy:          8,
		PageLength:         2000,
	}
}

// Pager lazily produces pages from a text. Create one with New and drain it
// with Next; a consumed Pager is not restartable, but calling New on the same
// text starts over.
type Pager struct {
	rest   string
	budget int
	opts   Options
	done   bool
}

// New returns a Pager over text. The zero values in opts are used as given;
// callers wanting the standard behavior should start from DefaultOptions.
func New(text string, opts Options) *Pager {
	return &Pager{
		rest:   text,
		budget: opts.PageLength - opts.ShortenBy,
		opts:   opts,
	}
}

// Next returns the next page and true, or "" and false when the text is
// exhausted. Segments that are empty after trimming whitespace are skipped:
// they advance the cursor without producing a page.
func (p *Pager) Next() (string, bool) {
	for !p.done {
		if p.rest == "" || len(p.rest) <= p.budget {
			p.done = true
			return p.emit(p.rest)
		}

		limit := p.workingLimit()
		cut := findBreak(p.rest[:limit], p.opts.Delims, p.opts.Priority)
		if cut < 0 {
			cut = limit
		}

		page := p.rest[:cut]
		p.rest = p.rest[cut:]
		if out, ok := p.emit(page); ok {
			return out, true
		}
	}
	return "", false
}

// emit applies mass-mention escaping and drops whitespace-only segments.
func (p *Pager) emit(page string) (string, bool) {
	if p.opts.EscapeMassMentions {
		page = format.EscapeMassMentions(page)
	}
	if strings.TrimSpace(page) == "" {
		return "", false
	}
	return page, true
}

// workingLimit returns the byte budget for the current page. When mass
// mentions are escaped, each occurrence within the lookahead window grows by
// one character, so the limit shrinks by one per occurrence. A hard cut at
// the limit is backed off to a rune boundary so a multi-byte character is
// never split across pages.
func (p *Pager) workingLimit() int {
	limit := p.budget
	if p.opts.EscapeMassMentions {
		window := p.rest
		if len(window) > p.budget {
			window = window[:p.budget]
		}
		limit -= strings.Count(window, "@here") + strings.Count(window, "@everyone")
	}
	if limit < 1 {
		limit = 1
	}
	for limit > 1 && !utf8.RuneStart(p.rest[limit]) {
		limit--
	}
	return limit
}

// findBreak ranks the candidate break points in window and returns the chosen
// byte index, or -1 when no delimiter occurs. Only occurrences starting at
// index 1 or later count, so a page is never empty. In priority mode the
// first delimiter (in declared order) with any occurrence wins, taking its
// last occurrence; otherwise the latest occurrence across all delimiters
// wins.
func findBreak(window string, delims []string, priority bool) int {
	best := -1
	for _, d := range delims {
		idx := strings.LastIndex(window, d)
		if idx < 1 {
			continue
		}
		if priority {
			return idx
		}
		if idx > best {
			best = idx
		}
	}
	return best
}

// Pages eagerly splits text into all of its pages. Whitespace-only input
// yields no pages; input that fits the limit yields exactly one.
func Pages(text string, opts Options) []string {
	var pages []string
	pager := New(text, opts)
	for {
		page, ok := pager.Next()
		if !ok {
			return pages
		}
		pages = append(pages, page)
	}
}
