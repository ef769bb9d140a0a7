package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.EndpointURL)
	assert.Empty(t, cfg.BoardID)
	assert.Equal(t, Default().Extensions, cfg.Extensions)
	assert.Equal(t, Default().Excludes, cfg.Excludes)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Extensions, cfg.Extensions)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvEndpointURL, "http://localhost:9999/errors")
	t.Setenv(EnvBoardID, "board-42")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/errors", cfg.EndpointURL)
	assert.Equal(t, "board-42", cfg.BoardID)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".syncheck.yaml")
	content := `
extensions:
  - .go
excludes:
  - vendor
  - generated
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{".go"}, cfg.Extensions)
	assert.Equal(t, []string{"vendor", "generated"}, cfg.Excludes)
}

func TestLoadEmptyConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".syncheck.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Extensions, cfg.Extensions)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".syncheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extensions: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestUnrelatedEnvironmentIsIgnored(t *testing.T) {
	t.Setenv("EXTENSIONS", "ignored")
	t.Setenv("EXCLUDES", "ignored")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Extensions, cfg.Extensions)
	assert.Equal(t, Default().Excludes, cfg.Excludes)
}
