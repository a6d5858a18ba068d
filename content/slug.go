package content

import "strings"

// Slugify converts a title to a URL-safe slug: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, no hyphen at
// either end.
func Slugify(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
