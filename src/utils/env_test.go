package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitEnvironmentVariables(t *testing.T) {
	t.Run("missing env file is not fatal", func(t *testing.T) {
		err := InitEnvironmentVariables(t.TempDir(), "development")
		assert.NoError(t, err)
	})

	t.Run("loads variables from env file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DEV_ENV_FILENAME), []byte("PRICER_TEST_VAR=loaded\n"), 0644))

		err := InitEnvironmentVariables(dir, "development")
		require.NoError(t, err)

		value, err := GetEnv("PRICER_TEST_VAR")
		assert.NoError(t, err)
		assert.Equal(t, "loaded", value)

		os.Unsetenv("PRICER_TEST_VAR")
	})
}
