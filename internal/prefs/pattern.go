package prefs

import (
	"regexp"
	"strings"

	"github.com/bethropolis/codehints/internal/utils"
)

// wildcardUnescaper turns escaped shell wildcards back into regex tokens.
var wildcardUnescaper = strings.NewReplacer(
	`\*`, ".*",
	`\?`, ".",
)

// CompilePatterns compiles an ordered list of patterns into one matcher that
// matches a whole string when any pattern matches it.
//
// A string delimited by "/" on both ends is raw regular expression source;
// any other string is a literal where "*" matches any run of characters and
// "?" matches exactly one. The source of def, when non-nil, is appended
// after the user patterns.
//
// When settings yields no usable pattern (nil, empty, not a list, or only
// non-strings) the result is def itself, which may be nil.
func CompilePatterns(settings any, def *Matcher) *Matcher {
	return compilePatterns(settings, def, utils.NoopLogger{})
}

func compilePatterns(settings any, def *Matcher, logger utils.Logger) *Matcher {
	var fragments []string
	for _, setting := range patternList(settings) {
		fragment, ok := compileFragment(setting, logger)
		if ok {
			fragments = append(fragments, fragment)
		}
	}

	if len(fragments) == 0 {
		return def
	}

	if def != nil {
		// The default is embedded raw, never wildcard-escaped.
		if fragment, ok := compileFragment("/"+def.String()+"/", logger); ok {
			fragments = append(fragments, fragment)
		}
	}

	re, err := regexp.Compile(strings.Join(fragments, "|"))
	if err != nil {
		logger.Warn("prefs: combined pattern failed to compile, using default: %v", err)
		return def
	}
	return &Matcher{re: re}
}

// patternList extracts the entries of a pattern list. Values that are not a
// list produce no entries.
func patternList(settings any) []any {
	switch v := settings.(type) {
	case []any:
		return v
	case []string:
		list := make([]any, len(v))
		for i, s := range v {
			list[i] = s
		}
		return list
	default:
		return nil
	}
}

// compileFragment converts one entry into an anchored regex fragment.
// Non-string entries and raw fragments that do not compile are dropped.
func compileFragment(setting any, logger utils.Logger) (string, bool) {
	s, ok := setting.(string)
	if !ok {
		logger.Debug("prefs: skipping non-string pattern %v (%T)", setting, setting)
		return "", false
	}

	var body string
	if isRawPattern(s) {
		body = rawBody(s)
	} else {
		body = wildcardUnescaper.Replace(regexp.QuoteMeta(s))
	}

	fragment := "^(?:" + body + ")$"
	if _, err := regexp.Compile(fragment); err != nil {
		logger.Warn("prefs: ignoring pattern %q: %v", s, err)
		return "", false
	}
	return fragment, true
}

// isRawPattern reports whether s is delimited by "/" on both ends.
func isRawPattern(s string) bool {
	return strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/")
}

// rawBody strips the delimiters. A lone "/" has an empty body.
func rawBody(s string) string {
	if len(s) < 2 {
		return ""
	}
	return s[1 : len(s)-1]
}
