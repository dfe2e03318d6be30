package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, SourceURL, cfg.URL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "rows", cfg.Mode)
	assert.Equal(t, "rust", cfg.Format)
	assert.Equal(t, GeneratorReference, cfg.Reference)
	assert.Empty(t, cfg.Out)
	assert.False(t, cfg.Check)
	assert.False(t, cfg.Dump)
	assert.False(t, cfg.Verbose)
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "ccgen/1.2.3", UserAgent("1.2.3"))
	assert.Equal(t, "ccgen/dev", UserAgent("dev"))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	// Existing directory is not an error
	require.NoError(t, EnsureDir(dir))
}
