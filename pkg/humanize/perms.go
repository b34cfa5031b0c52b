package humanize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PermissionNames renders snake_case permission flags as a quoted, humanized
// list, e.g. ["send_messages", "manage_guild"] becomes
// `"Send Messages" and "Manage Server"`. "Guild" is the platform's internal
// name for a server, so it is rewritten for users.
func PermissionNames(perms []string) string {
	caser := cases.Title(language.AmericanEnglish)
	names := make([]string, 0, len(perms))
	for _, perm := range perms {
		name := caser.String(strings.ReplaceAll(perm, "_", " "))
		names = append(names, `"`+name+`"`)
	}
	return strings.ReplaceAll(List(names, StyleStandard), "Guild", "Server")
}
