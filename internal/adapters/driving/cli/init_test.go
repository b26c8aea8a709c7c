package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInitTest(t *testing.T) (string, func()) {
	t.Helper()
	oldConfig := configFlag
	configFlag = filepath.Join(t.TempDir(), "config.toml")
	return configFlag, func() {
		configFlag = oldConfig
		initForceFlag = false
	}
}

func TestInitCmd_Use(t *testing.T) {
	assert.Equal(t, "init", initCmd.Use)
}

func TestInitCmd_WritesConfig(t *testing.T) {
	path, cleanup := setupInitTest(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"init", "--config", path})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Wrote default config")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[rules]")
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	path, cleanup := setupInitTest(t)
	defer cleanup()
	require.NoError(t, os.WriteFile(path, []byte("format = \"array\"\n"), 0600))

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"init", "--config", path})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	path, cleanup := setupInitTest(t)
	defer cleanup()
	require.NoError(t, os.WriteFile(path, []byte("format = \"array\"\n"), 0600))

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"init", "--config", path, "--force"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[rules]")
}
