package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TRUTH_TEST_KEY=from-file\n"), 0o644))

	t.Run("loads from default path", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		t.Setenv("TRUTH_TEST_KEY", "")
		os.Unsetenv("TRUTH_TEST_KEY")

		require.NoError(t, LoadDotEnv("local", path))
		assert.Equal(t, "from-file", os.Getenv("TRUTH_TEST_KEY"))
	})

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("ENV_PATH", path)
		t.Setenv("TRUTH_TEST_KEY", "from-env")

		require.NoError(t, LoadDotEnv("local", "ignored"))
		assert.Equal(t, "from-env", os.Getenv("TRUTH_TEST_KEY"))
	})

	t.Run("missing file fails in local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		assert.Error(t, LoadDotEnv("", filepath.Join(dir, "missing.env")))
	})

	t.Run("missing file is skipped elsewhere", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		assert.NoError(t, LoadDotEnv("production", filepath.Join(dir, "missing.env")))
	})
}
