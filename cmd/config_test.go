//go:build unit

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataco-labs/data-anonymiser/src/config"
	"github.com/dataco-labs/data-anonymiser/src/utils"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, args []string) {}}
	registerCommonGlobalFlags(cmd)
	// merges the persistent flags into cmd.Flags(), as Execute does
	_ = cmd.ParseFlags(nil)
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data-anonymiser-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateConfigFileRejectsUnknownKeys(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(writeConfig(t, "log-level: debug\ninput-file: other.csv\npii-columns: [a]\n"))
	require.NoError(t, v.ReadInConfig())

	err := validateConfigFile(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input-file")
	assert.Contains(t, err.Error(), "pii-columns")
}

func TestInitConfigAppliesConfigValues(t *testing.T) {
	defer func() { cfgFile, logDir, config.LogLevel = "", "", "" }()

	cmd := newTestCommand()
	cfgFile = writeConfig(t, "log-level: debug\nlog-dir: /tmp/anon-logs\n")

	overrides, err := initConfig(cmd)
	require.NoError(t, err)
	assert.Len(t, overrides, 2)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "/tmp/anon-logs", logDir)
}

func TestInitConfigCommandLineWins(t *testing.T) {
	defer func() { cfgFile, logDir, config.LogLevel = "", "", "" }()

	cmd := newTestCommand()
	path := writeConfig(t, "log-level: debug\n")
	require.NoError(t, cmd.ParseFlags([]string{"--config-file", path, "--log-level", "warn"}))

	overrides, err := initConfig(cmd)
	require.NoError(t, err)
	assert.Empty(t, overrides)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestInitConfigEnvVariable(t *testing.T) {
	defer func() { cfgFile, logDir, config.LogLevel = "", "", "" }()

	t.Setenv(CONFIG_FILE_ENV_VAR, writeConfig(t, "log-level: error\n"))
	cmd := newTestCommand()

	_, err := initConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
}

func TestAnonymiseDatasetInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, os.WriteFile(INPUT_FILE_NAME,
		[]byte("Customer Email,Order Id,Customer City,Sales\nXXXXXXXXX,1,Caguas,327.75\n"), 0644))

	var out bytes.Buffer
	cmd := newTestCommand()
	cmd.SetOut(&out)
	anonymiseDataset(cmd)

	assert.Equal(t, "GDPR cleaning complete. Saved as "+OUTPUT_FILE_NAME+"\n"+
		"Original columns: 4\n"+
		"Cleaned columns: 2\n", out.String())
	data, err := os.ReadFile(filepath.Join(dir, OUTPUT_FILE_NAME))
	require.NoError(t, err)
	assert.Equal(t, "Order Id,Sales\n1,327.75\n", string(data))
}

func TestAnonymiseDatasetMissingInputExits(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	exitCode := -1
	utils.SetExitHook(func(code int) { exitCode = code })
	defer utils.SetExitHook(nil)

	var out bytes.Buffer
	cmd := newTestCommand()
	cmd.SetOut(&out)
	anonymiseDataset(cmd)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, out.String())
	assert.NoFileExists(t, filepath.Join(dir, OUTPUT_FILE_NAME))
}

func TestVersionInfo(t *testing.T) {
	assert.Contains(t, getVersionInfo(), "VERSION=")
}
