package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"emojied/internal/config"
	"emojied/internal/dataset"
)

// run executes the command tree with fresh flag values
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, datasetPath = "", ""
	searchLimit, searchScores = 0, false
	exportOut, exportSize, exportStdout = "", 0, false
	datasetOut = ""
	configForce = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// testConfig writes a config that renders with the embedded Go font
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "go.ttf")
	require.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0644))

	cfg := config.DefaultConfig()
	cfg.Export.FontPath = fontPath
	cfg.Export.Dir = filepath.Join(dir, "exports")
	cfg.Log.File = ""
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, config.NewConfigServiceAt(path).Save(cfg))
	return path
}

func TestSearchCommand(t *testing.T) {
	cfg := testConfig(t)
	out, err := run(t, "--config", cfg, "search", "grin")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "😀")
	assert.Contains(t, lines[0], "1F600")
}

func TestSearchLimitAndScores(t *testing.T) {
	cfg := testConfig(t)
	out, err := run(t, "--config", cfg, "search", "--limit", "1", "--scores", "face")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Regexp(t, `\d\.\d{3}\s+\d\.\d{4}$`, lines[0], "distance and rank columns")
}

func TestSearchNoMatch(t *testing.T) {
	cfg := testConfig(t)
	_, err := run(t, "--config", cfg, "search", "zzzqqqxx")
	assert.ErrorIs(t, err, errNoMatch)
}

func TestExportToStdout(t *testing.T) {
	cfg := testConfig(t)
	out, err := run(t, "--config", cfg, "export", "--stdout", "grin")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x89PNG\r\n\x1a\n"))
}

func TestExportByGlyphToDir(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	out, err := run(t, "--config", cfg, "export", "--out", dir, "--size", "64", "🐍")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved 🐍 as PNG")

	data, err := os.ReadFile(filepath.Join(dir, "emoji-1f40d.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestSubcommandsLogToConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "emojied.log")
	cfgPath := testConfig(t)
	svc := config.NewConfigServiceAt(cfgPath)
	cfg, err := svc.Load()
	require.NoError(t, err)
	cfg.Log.File = logPath
	require.NoError(t, svc.Save(cfg))

	// A file where the export directory should be makes the save fail
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, nil, 0644))

	var stderr bytes.Buffer
	log.SetOutput(&stderr)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	_, err = run(t, "--config", cfgPath, "export", "--out", blocked, "🐍")
	require.Error(t, err)
	assert.Empty(t, stderr.String(), "log lines stay out of the terminal")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Activation of 1F40D")
	assert.Contains(t, string(data), "event DatasetLoaded")
	assert.Contains(t, string(data), "event ActivationFailed")
}

func TestCopyCommand(t *testing.T) {
	cfg := testConfig(t)
	out, err := run(t, "--config", cfg, "copy", "grin")
	require.NoError(t, err)
	assert.Equal(t, "Copied 😀 to clipboard!\n", out)
}

func TestDatasetExportAndCheck(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()

	for _, name := range []string{"emoji.json", "emoji.xlsx"} {
		path := filepath.Join(dir, name)
		out, err := run(t, "--config", cfg, "dataset", "export", "-o", path)
		require.NoError(t, err)
		assert.Contains(t, out, "from embedded")

		out, err = run(t, "dataset", "check", path)
		require.NoError(t, err)
		assert.Contains(t, out, "✓ "+path)

		want, err := dataset.Default()
		require.NoError(t, err)
		got, err := dataset.Load(path)
		require.NoError(t, err)
		assert.Equal(t, want.All(), got.All())
	}
}

func TestDatasetFlagOverridesConfig(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "tiny.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"codes":"1F984","char":"🦄","name":"unicorn"}]`), 0644))

	out, err := run(t, "--config", cfg, "--dataset", path, "search", "unicorn")
	require.NoError(t, err)
	assert.Equal(t, 1, len(strings.Split(strings.TrimSpace(out), "\n")))
}

func TestDatasetImportHTML(t *testing.T) {
	dir := t.TempDir()
	html := filepath.Join(dir, "emoji-list.html")
	require.NoError(t, os.WriteFile(html, []byte(`<table>
<tr><td class="code">U+1F600</td><td class="chars">😀</td><td class="name">grinning face</td></tr>
<tr><td class="code">U+1F40D</td><td class="chars">🐍</td><td class="name">snake</td></tr>
</table>`), 0644))

	outPath := filepath.Join(dir, "out.json")
	out, err := run(t, "dataset", "import", html, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 emojis")

	ds, err := dataset.Load(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojied", "config.toml")

	out, err := run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "not found, showing defaults")

	_, err = run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = run(t, "--config", path, "config", "init")
	assert.Error(t, err, "refuses to overwrite")
	_, err = run(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[search]")
	assert.Contains(t, out, "threshold = 0.3")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("Warning").String())
	assert.Equal(t, "INFO", parseLevel("").String())
}
