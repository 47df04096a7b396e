package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePatterns_Wildcards(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		match    []string
		noMatch  []string
	}{
		{
			name:     "question mark is one character",
			patterns: []string{"d2?.js"},
			match:    []string{"d2a.js", "d22.js"},
			noMatch:  []string{"d2.js", "Xd2a.jsY", "d2a.jsY", "d2ab.js"},
		},
		{
			name:     "star is any run",
			patterns: []string{"jquery*.js"},
			match:    []string{"jquery.js", "jquery-2.1.js"},
			noMatch:  []string{"jquery", "my-jquery.js", "jquery.jsx"},
		},
		{
			name:     "metacharacters are literal",
			patterns: []string{"a+b(c)[d]{1}^$|.js"},
			match:    []string{"a+b(c)[d]{1}^$|.js"},
			noMatch:  []string{"aab(c)[d]{1}^$|.js", "a+b(c)[d]{1}^$|xjs", "js"},
		},
		{
			name:     "dot is literal",
			patterns: []string{"foo.js"},
			match:    []string{"foo.js"},
			noMatch:  []string{"fooxjs", "foo.jsx", "afoo.js"},
		},
		{
			name:     "several patterns",
			patterns: []string{"node_modules", "build*"},
			match:    []string{"node_modules", "build", "build-out"},
			noMatch:  []string{"src", "node_modules2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CompilePatterns(tt.patterns, nil)
			require.NotNil(t, m)
			for _, s := range tt.match {
				assert.True(t, m.MatchString(s), "expected %q to match", s)
			}
			for _, s := range tt.noMatch {
				assert.False(t, m.MatchString(s), "expected %q not to match", s)
			}
		})
	}
}

func TestCompilePatterns_Raw(t *testing.T) {
	m := CompilePatterns([]any{"/[\\d]/"}, nil)
	require.NotNil(t, m)

	assert.True(t, m.MatchString("5"))
	assert.False(t, m.MatchString("55"))
	assert.False(t, m.MatchString("a"))
}

func TestCompilePatterns_RawAlternationIsAnchored(t *testing.T) {
	m := CompilePatterns([]string{"/foo|bar/"}, nil)
	require.NotNil(t, m)

	assert.True(t, m.MatchString("foo"))
	assert.True(t, m.MatchString("bar"))
	assert.False(t, m.MatchString("foox"))
	assert.False(t, m.MatchString("xbar"))
}

func TestCompilePatterns_RawInlineFlags(t *testing.T) {
	m := CompilePatterns([]string{"/(?i)readme\\.md/"}, nil)
	require.NotNil(t, m)

	assert.True(t, m.MatchString("README.md"))
	assert.True(t, m.MatchString("readme.md"))
}

func TestCompilePatterns_CaseSensitive(t *testing.T) {
	m := CompilePatterns([]string{"Vendor"}, nil)
	require.NotNil(t, m)

	assert.True(t, m.MatchString("Vendor"))
	assert.False(t, m.MatchString("vendor"))
}

func TestCompilePatterns_LoneSlash(t *testing.T) {
	m := CompilePatterns([]string{"/"}, nil)
	require.NotNil(t, m)

	assert.True(t, m.MatchString(""))
	assert.False(t, m.MatchString("/"))
}

func TestCompilePatterns_Empty(t *testing.T) {
	def := DefaultExcludedFiles()

	for name, settings := range map[string]any{
		"nil":         nil,
		"empty":       []string{},
		"empty any":   []any{},
		"not a list":  "foo.js",
		"a number":    42.0,
		"non-strings": []any{1.0, true, nil, map[string]any{"a": "b"}},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, CompilePatterns(settings, nil))
			assert.Same(t, def, CompilePatterns(settings, def))
		})
	}
}

func TestCompilePatterns_DefaultAppended(t *testing.T) {
	m := CompilePatterns([]any{"foo.js", 12.0}, DefaultExcludedFiles())
	require.NotNil(t, m)

	assert.True(t, m.MatchString("foo.js"))
	assert.True(t, m.MatchString("require.js"))
	assert.True(t, m.MatchString("jquery-1.9.js"))
	assert.True(t, m.MatchString("less-1.4.min.js"))
	assert.False(t, m.MatchString("bar.js"))
	assert.False(t, m.MatchString("less.js"))
}

func TestCompilePatterns_DefaultNotEscaped(t *testing.T) {
	def := CompilePatterns([]string{"/a.c/"}, nil)
	m := CompilePatterns([]string{"x"}, def)
	require.NotNil(t, m)

	assert.True(t, m.MatchString("abc"))
	assert.True(t, m.MatchString("x"))
}

func TestCompilePatterns_InvalidRawDropped(t *testing.T) {
	log := &recordingLogger{}
	m := compilePatterns([]string{"/(unclosed/", "/(?=lookahead)/", "ok.js"}, nil, log)
	require.NotNil(t, m)

	assert.True(t, m.MatchString("ok.js"))
	assert.False(t, m.MatchString("(unclosed"))
	assert.Len(t, log.warnings, 2)
}

func TestCompilePatterns_OnlyInvalidFallsBack(t *testing.T) {
	def := DefaultExcludedFiles()

	assert.Nil(t, CompilePatterns([]string{"/[/"}, nil))
	assert.Same(t, def, CompilePatterns([]string{"/[/"}, def))
}

func TestCompilePatterns_OrderPreserved(t *testing.T) {
	m := CompilePatterns([]string{"b", "a"}, DefaultExcludedFiles())
	require.NotNil(t, m)

	assert.Equal(t,
		`^(?:b)$|^(?:a)$|^(?:`+defaultExcludedFilesSource+`)$`,
		m.String())
}

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Warn(format string, _ ...interface{}) {
	l.warnings = append(l.warnings, format)
}
func (l *recordingLogger) Error(string, ...interface{}) {}
