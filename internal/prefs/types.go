// Package prefs turns a raw .jscodehints preference record into immutable
// matching rules and limits for the code-hinting file pipeline.
//
// Construction never fails: malformed, missing, or out-of-range values fall
// back to built-in defaults without surfacing an error.
package prefs

// RawPreferences is the decoded .jscodehints object.
//
// Fields are loosely typed so that malformed input (a string where an array
// is expected, a string where a number is expected) still decodes and then
// degrades to defaults in New.
type RawPreferences struct {
	ExcludedDirectories any `json:"excluded-directories,omitempty"`
	ExcludedFiles       any `json:"excluded-files,omitempty"`
	MaxFileCount        any `json:"max-file-count,omitempty"`
	MaxFileSize         any `json:"max-file-size,omitempty"`
}

// Settings holds the compiled preferences.
// It is immutable after New returns and safe for concurrent readers.
type Settings struct {
	excludedDirectories *Matcher
	excludedFiles       *Matcher
	maxFileCount        int
	maxFileSize         int64
}

// ExcludedDirectories returns the directory-name matcher, or nil when no
// directory is excluded.
func (s *Settings) ExcludedDirectories() *Matcher {
	return s.excludedDirectories
}

// ExcludedFiles returns the file-name matcher. It is never nil.
func (s *Settings) ExcludedFiles() *Matcher {
	return s.excludedFiles
}

// MaxFileCount returns the cap on files processed.
func (s *Settings) MaxFileCount() int {
	return s.maxFileCount
}

// MaxFileSize returns the cap on bytes per file.
func (s *Settings) MaxFileSize() int64 {
	return s.maxFileSize
}
