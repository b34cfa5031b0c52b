// Package humanize turns lists, durations, and numbers into readable English
// phrases for chat messages.
package humanize

// ListStyle selects the join phrasing used by List. The styles mirror the
// CLDR list-pattern types.
type ListStyle string

// Supported list styles.
const (
	// StyleStandard joins with "and": "one, two, and three".
	StyleStandard ListStyle = "standard"
	// StyleStandardShort abbreviates the conjunction: "one, two, & three".
	StyleStandardShort ListStyle = "standard-short"
	// StyleOr joins with "or": "one, two, or three".
	StyleOr ListStyle = "or"
	// StyleOrShort is the abbreviated "or" list.
	StyleOrShort ListStyle = "or-short"
	// StyleUnit joins units with commas only: "3 feet, 7 inches".
	StyleUnit ListStyle = "unit"
	// StyleUnitShort is the abbreviated unit list.
	StyleUnitShort ListStyle = "unit-short"
	// StyleUnitNarrow joins with bare spaces for tight spaces: "3′ 7″".
	StyleUnitNarrow ListStyle = "unit-narrow"
)

// listPattern holds the separators of one CLDR list-pattern type, reduced to
// plain separators since the English patterns are all "{0}<sep>{1}" shaped.
type listPattern struct {
	two    string // between the items of a two-element list
	start  string // after the first item
	middle string // between middle items
	end    string // before the last item
}

var listPatterns = map[ListStyle]listPattern{
	StyleStandard:      {" and ", ", ", ", ", ", and "},
	StyleStandardShort: {" & ", ", ", ", ", ", & "},
	StyleOr:            {" or ", ", ", ", ", ", or "},
	StyleOrShort:       {" or ", ", ", ", ", ", or "},
	StyleUnit:          {", ", ", ", ", ", ", "},
	StyleUnitShort:     {", ", ", ", ", ", ", "},
	StyleUnitNarrow:    {" ", " ", " ", " "},
}

// List joins items into a single readable phrase:
//
//	List([]string{"one", "two", "three"}, StyleStandard)
//	// "one, two, and three"
//
// An empty slice yields an empty string and a single item is returned as-is.
// Unknown styles fall back to StyleStandard.
func List(items []string, style ListStyle) string {
	pattern, ok := listPatterns[style]
	if !ok {
		pattern = listPatterns[StyleStandard]
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + pattern.two + items[1]
	}

	out := items[0]
	for _, item := range items[1 : len(items)-1] {
		out += pattern.start + item
		pattern.start = pattern.middle
	}
	return out + pattern.end + items[len(items)-1]
}
