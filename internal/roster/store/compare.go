package store

import "unicode"

// compareIgnoreCase orders two strings rune by rune, folding each differing
// pair through upper and then lower case before comparing code points. A
// shorter string that is a prefix of the other sorts first.
func compareIgnoreCase(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))

	for i := 0; i < n; i++ {
		c1, c2 := ra[i], rb[i]
		if c1 == c2 {
			continue
		}
		c1, c2 = unicode.ToUpper(c1), unicode.ToUpper(c2)
		if c1 == c2 {
			continue
		}
		c1, c2 = unicode.ToLower(c1), unicode.ToLower(c2)
		if c1 != c2 {
			return int(c1) - int(c2)
		}
	}

	return len(ra) - len(rb)
}
