package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore reports whether a path is excluded by name alone
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return m.Check(relativePath, isDir, 0) != ReasonNone
}

// Check returns why relativePath is excluded, or ReasonNone. Directory
// patterns apply to every directory component of the path (and to the last
// component when isDir is set); file patterns apply to the base name of
// files. Files larger than the configured size are reported with
// ReasonSizeLimit; pass a size of 0 when it is unknown.
func (m *IgnoreMatcher) Check(relativePath string, isDir bool, size int64) Reason {
	// Return early if matcher is nil or disabled
	if m == nil || m.disabled {
		return ReasonNone
	}

	parts := splitPath(relativePath)
	if len(parts) == 0 {
		return ReasonNone // Never ignore the root itself
	}

	m.logger.Debug("ignore.Check: Checking path: %q (isDir: %v)", relativePath, isDir)

	dirs := parts
	if !isDir {
		dirs = parts[:len(parts)-1]
	}

	if m.ignoreHidden {
		for _, part := range parts {
			if strings.HasPrefix(part, ".") {
				m.logger.Debug("ignore.Check: Ignored %q (hidden rule)", relativePath)
				return ReasonHidden
			}
		}
	}

	excludedDirs := m.settings.ExcludedDirectories()
	for _, dir := range dirs {
		if excludedDirs.MatchString(dir) {
			m.logger.Debug("ignore.Check: Excluded %q (directory %q)", relativePath, dir)
			return ReasonExcludedDirectory
		}
	}

	if isDir {
		return ReasonNone
	}

	base := parts[len(parts)-1]
	if m.settings.ExcludedFiles().MatchString(base) {
		m.logger.Debug("ignore.Check: Excluded %q (file pattern)", relativePath)
		return ReasonExcludedFile
	}

	if size > m.settings.MaxFileSize() {
		m.logger.Debug("ignore.Check: Skipping %q: exceeds size limit (%d > %d bytes)",
			relativePath, size, m.settings.MaxFileSize())
		return ReasonSizeLimit
	}

	return ReasonNone
}

// Admit reserves one slot of the max-file-count budget. It returns false
// once the budget is spent. Safe for concurrent use.
func (m *IgnoreMatcher) Admit() bool {
	if m == nil || m.disabled {
		return true
	}

	n := m.admitted.Add(1)
	if n > int64(m.settings.MaxFileCount()) {
		m.admitted.Add(-1)
		m.logger.Debug("ignore.Admit: file budget of %d reached", m.settings.MaxFileCount())
		return false
	}
	return true
}

// Admitted returns how many files have been admitted so far
func (m *IgnoreMatcher) Admitted() int {
	if m == nil {
		return 0
	}
	return int(m.admitted.Load())
}

// splitPath splits a relative path into its non-empty components, skipping
// "." segments.
func splitPath(relativePath string) []string {
	slashed := filepath.ToSlash(relativePath)
	var parts []string
	for _, part := range strings.Split(slashed, "/") {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
