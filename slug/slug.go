// Package slug derives URL-safe identifiers from display names. The same
// function serves business lookup slugs and section anchor ids, so the write
// path and the read path can never drift apart.
package slug

import "strings"

// Make lowercases the name, collapses every run of non-alphanumeric
// characters into a single hyphen, and trims leading/trailing hyphens.
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
