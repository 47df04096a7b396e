package prefs

import "regexp"

// Matcher reports whether a whole directory or file name matches one of a
// set of compiled patterns. A nil *Matcher matches nothing.
type Matcher struct {
	re *regexp.Regexp
}

// MatchString reports whether name matches.
func (m *Matcher) MatchString(name string) bool {
	if m == nil || m.re == nil {
		return false
	}
	return m.re.MatchString(name)
}

// String returns the regular expression source, or "" for a nil matcher.
func (m *Matcher) String() string {
	if m == nil || m.re == nil {
		return ""
	}
	return m.re.String()
}
