package i18n

import (
	"fmt"
	"strings"
)

// Render replaces {{name}} placeholders in the template with values from the
// map. The template is scanned once, left to right; a placeholder without a
// matching key is left verbatim, and substituted values are never re-scanned
// for further placeholders.
//
// Example:
//
//	Render("Hello, {{name}}! You have {{count}} messages.", M{"name": "Amy", "count": 5})
//	// "Hello, Amy! You have 5 messages."
func Render(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			b.WriteString(rest)
			break
		}

		closing := strings.Index(rest[open:], "}}")
		if closing < 0 {
			b.WriteString(rest)
			break
		}
		closing += open

		b.WriteString(rest[:open])

		name := rest[open+2 : closing]
		if value, ok := placeholders[name]; ok {
			fmt.Fprintf(&b, "%v", value)
		} else {
			b.WriteString(rest[open : closing+2])
		}

		rest = rest[closing+2:]
	}

	return b.String()
}
