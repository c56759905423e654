package collect

import (
	"regexp"
	"strings"
)

// MatchesAny reports whether path matches any of the given ignore globs.
// An empty pattern list never matches. `*` matches within a path segment,
// `**` crosses segment boundaries, `?` matches a single character. A pattern
// starting with `**/` also matches paths with no leading directory, so
// `**/*.sql` covers both `file.sql` and `dir/sub/file.sql`.
func MatchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		re, err := globToRegexp(pattern)
		if err != nil {
			continue
		}
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

func globToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				b.WriteString(".*")
				i++
			} else {
				b.WriteString("[^/]*")
			}
		case '?':
			b.WriteString(".")
		case '.':
			b.WriteString(`\.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	expr := b.String()
	// Anchored-optional prefix: `**/` must also match a bare filename.
	if rest, ok := strings.CutPrefix(expr, ".*/"); ok {
		expr = "(.*/)?" + rest
	}
	return regexp.Compile("^" + expr + "$")
}
