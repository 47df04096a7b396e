package prefs

import "regexp"

// FileName is the conventional name of the preferences file.
const FileName = ".jscodehints"

// Limit defaults.
const (
	DefaultMaxFileCount       = 100
	DefaultMaxFileSize  int64 = 512 * 1024
)

// defaultExcludedFilesSource excludes libraries the hinting engine chokes on.
const defaultExcludedFilesSource = `^require.*\.js$|^jquery.*\.js$|^less.*\.min\.js$`

var defaultExcludedFiles = &Matcher{re: regexp.MustCompile(defaultExcludedFilesSource)}

// DefaultExcludedFiles returns the built-in file exclusion matcher.
func DefaultExcludedFiles() *Matcher {
	return defaultExcludedFiles
}
