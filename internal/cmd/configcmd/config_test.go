package configcmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/balance-cli/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{config.EnvInputFile, config.EnvOutput, config.EnvLocale, config.EnvNoColor} {
		t.Setenv(v, "")
	}
}

func newOptions(t *testing.T, buf *bytes.Buffer) *options {
	t.Helper()
	clearEnv(t)
	return &options{
		configPath: filepath.Join(t.TempDir(), "config.yml"),
		noColor:    true,
		stdout:     buf,
	}
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()
	assert.Equal(t, "config", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}

func TestRunShow_WithConfigFile(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)

	cfg := &config.Config{InputFile: "mine.txt", Locale: "es"}
	require.NoError(t, cfg.Save(opts.configPath))
	t.Setenv(config.EnvOutput, "json")

	require.NoError(t, runShow(opts))

	out := buf.String()
	assert.Contains(t, out, "mine.txt")
	assert.Contains(t, out, "BAL_OUTPUT")
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "Config file: "+opts.configPath)
	assert.NotContains(t, out, "(file not found)")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)

	require.NoError(t, runShow(opts))

	out := buf.String()
	assert.Contains(t, out, config.DefaultInputFile)
	assert.Contains(t, out, "default")
	assert.True(t, strings.HasSuffix(out, "\nConfig file: "+opts.configPath+"\n(file not found)\n"), out)
}

func TestRunShow_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)
	opts.output = "json"

	require.NoError(t, runShow(opts))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 4)
	assert.Equal(t, "input_file", rows[0]["key"])
	assert.Equal(t, config.DefaultInputFile, rows[0]["value"])
	assert.Equal(t, "default", rows[0]["source"])
}

func TestRunShow_RejectsReportFormats(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)
	opts.output = "html"

	err := runShow(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config show supports")
}

func TestRunTest_Valid(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)

	input := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("()\n"), 0600))
	require.NoError(t, (&config.Config{InputFile: input}).Save(opts.configPath))

	require.NoError(t, runTest(opts))
	out := buf.String()
	assert.Contains(t, out, "✓ Config loaded")
	assert.Contains(t, out, "✓ Input file "+input+" exists")
}

func TestRunTest_Stdin(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)
	t.Setenv(config.EnvInputFile, "-")

	require.NoError(t, runTest(opts))
	assert.Contains(t, buf.String(), "Input is read from stdin")
}

func TestRunTest_Invalid(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)
	require.NoError(t, (&config.Config{
		InputFile: filepath.Join(t.TempDir(), "missing.txt"),
		Locale:    "fr",
	}).Save(opts.configPath))

	err := runTest(opts)
	require.ErrorIs(t, err, errConfigInvalid)

	out := buf.String()
	assert.Contains(t, out, "✗ unsupported locale")
	assert.Contains(t, out, "missing.txt' was not found")
}

func TestRunTest_UnparsableConfig(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)
	require.NoError(t, os.WriteFile(opts.configPath, []byte("locale: [oops"), 0600))

	err := runTest(opts)
	require.ErrorIs(t, err, errConfigInvalid)
	assert.Contains(t, buf.String(), "failed to parse config file")
}

func TestRunClear_WithExistingConfig(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)
	require.NoError(t, (&config.Config{Locale: "es"}).Save(opts.configPath))

	require.NoError(t, runClear(opts))

	_, err := os.Stat(opts.configPath)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, buf.String(), "Configuration cleared from")
}

func TestRunClear_NoConfigFile(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)

	require.NoError(t, runClear(opts))
	assert.Contains(t, buf.String(), "No config file to remove")
}

func TestRunClear_EnvNote(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(t, &buf)
	t.Setenv(config.EnvLocale, "es")

	require.NoError(t, runClear(opts))
	assert.Contains(t, buf.String(), "Environment variables will still be used: BAL_LOCALE")
}

func TestConfigShowCommand(t *testing.T) {
	clearEnv(t)

	root := &cobra.Command{Use: "bal"}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().StringP("output", "o", "", "")
	root.PersistentFlags().Bool("no-color", false, "")
	root.AddCommand(NewCmdConfig())

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"config", "show", "-c", filepath.Join(t.TempDir(), "c.yml"), "-o", "plain"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "locale\ten\tdefault")
}
