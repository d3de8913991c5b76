package main

import (
	"cmp"
	"regexp"
	"slices"
)

// substitute textually replaces each variable name in src with its
// parenthesized value. Names are applied longest first so that a name which
// is a prefix of another cannot clobber it; matching is case-insensitive and
// word-bounded.
func substitute(src string, vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, name := range names {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			continue
		}
		src = re.ReplaceAllString(src, "("+vars[name]+")")
	}
	return src
}
