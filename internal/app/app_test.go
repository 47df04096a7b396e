package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bethropolis/codehints/internal/config"
	"github.com/bethropolis/codehints/internal/printer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/proj/.jscodehints": `{
			// keep the analyzer away from build output
			"excluded-directories": ["dist", "/ex[\\w]*ed/"],
			"excluded-files": ["*.min.js"],
			"max-file-count": 2,
			"max-file-size": 16,
		}`,
		"/proj/src/a.js":          "var a;",
		"/proj/src/b.js":          "var b;",
		"/proj/src/c.js":          "var c;",
		"/proj/src/big.js":        "var big = 'xxxxxxxxxxxxxxxx';",
		"/proj/src/app.min.js":    "x",
		"/proj/lib/require.js":    "x",
		"/proj/dist/bundle.js":    "x",
		"/proj/excluded/thing.js": "x",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o600))
	}
	return fsys
}

func runApp(t *testing.T, fsys afero.Fs, args ...string) (string, string) {
	t.Helper()
	var errOut bytes.Buffer
	cfg, err := config.Parse(args, &errOut)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, New(cfg, fsys, &out, &errOut).Run())
	return out.String(), errOut.String()
}

func TestRun_JSON(t *testing.T) {
	out, _ := runApp(t, projectFs(t), "-dir", "/proj", "-json", "-quiet",
		"src/a.js", "src/big.js", "src/app.min.js", "lib/require.js",
		"dist", "excluded/thing.js", "src/b.js", "src/c.js", "missing/")

	var report printer.JSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "/proj", report.Settings.Dir)
	assert.Equal(t, 2, report.Settings.MaxFileCount)
	assert.Equal(t, int64(16), report.Settings.MaxFileSize)

	reasons := map[string]string{}
	for _, v := range report.Paths {
		reasons[v.Path] = v.Reason
	}
	assert.Equal(t, map[string]string{
		"src/a.js":          "",
		"src/big.js":        "Skipped (Size Limit Exceeded)",
		"src/app.min.js":    "Excluded (File Pattern)",
		"lib/require.js":    "Excluded (File Pattern)",
		"dist":              "Excluded (Directory Pattern)",
		"excluded/thing.js": "Excluded (Directory Pattern)",
		"src/b.js":          "",
		"src/c.js":          "Skipped (File Count Limit Reached)",
		"missing":           "",
	}, reasons)
	assert.True(t, report.Paths[4].IsDir)
	assert.True(t, report.Paths[8].IsDir)
}

func TestRun_TextAndSummary(t *testing.T) {
	out, errOut := runApp(t, projectFs(t), "-dir", "/proj", "-no-color", "src/a.js")

	assert.Contains(t, out, "Preferences: /proj\n")
	assert.Contains(t, out, "INCLUDE FILE src/a.js\n")
	assert.Contains(t, errOut, "Checked 1 paths, 0 excluded.")
	assert.Contains(t, errOut, "1 of 2 file slots used.")
}

func TestRun_MissingPreferences(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/empty", 0o755))

	out, _ := runApp(t, fsys, "-dir", "/empty", "-no-color", "-quiet")

	assert.Contains(t, out, "excluded-directories   (none)")
	assert.Contains(t, out, "max-file-count         100")
}

func TestRun_SearchNotFound(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/empty", 0o755))

	cfg, err := config.Parse([]string{"-dir", "/empty", "-search"}, &bytes.Buffer{})
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	assert.Error(t, New(cfg, fsys, &out, &errOut).Run())
}

func TestRun_Version(t *testing.T) {
	out, _ := runApp(t, afero.NewMemMapFs(), "-version")
	assert.Equal(t, "codehints version "+config.Version+"\n", out)
}
