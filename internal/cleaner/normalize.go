package cleaner

import "strings"

// NormalizeName rewrites a column name to the pipeline's lexical
// convention: lowercase ASCII, non-alphanumeric runs collapsed to a
// single underscore, no leading or trailing underscores. Deterministic;
// distinct inputs may collide, in which case the rename policy is
// last-write-wins.
func NormalizeName(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	pendingSep := false

	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0

			continue
		}

		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}

		b.WriteRune(r)
	}

	return b.String()
}
