package history

import (
	"regexp"
	"unicode/utf8"
)

// Matcher is a compiled search query
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher for query. In literal mode every metacharacter is
// escaped, so compilation cannot fail. In regex mode an invalid pattern yields
// nil, which Apply treats as "no filtering".
func Compile(query string, regex, caseSensitive bool) *Matcher {
	pattern := query
	if !regex {
		pattern = regexp.QuoteMeta(query)
	}
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}
	return &Matcher{re: re}
}

// MatchString reports whether entry contains a match anywhere
func (m *Matcher) MatchString(entry string) bool {
	if m == nil {
		return true
	}
	return m.re.MatchString(entry)
}

// Apply returns the entries that match, in their original order. A nil
// Matcher passes entries through unchanged.
func (m *Matcher) Apply(entries []string) []string {
	if m == nil {
		return entries
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if m.re.MatchString(e) {
			out = append(out, e)
		}
	}
	return out
}

// Highlight returns the ascending rune indices of entry covered by a match.
// Empty matches cover nothing.
func (m *Matcher) Highlight(entry string) []int {
	if m == nil {
		return nil
	}

	var idx []int
	for _, loc := range m.re.FindAllStringIndex(entry, -1) {
		start, end := loc[0], loc[1]
		if start == end {
			continue
		}
		first := utf8.RuneCountInString(entry[:start])
		n := utf8.RuneCountInString(entry[start:end])
		for i := 0; i < n; i++ {
			idx = append(idx, first+i)
		}
	}
	return idx
}

// String returns the compiled pattern
func (m *Matcher) String() string {
	if m == nil {
		return ""
	}
	return m.re.String()
}
