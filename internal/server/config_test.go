package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cmalloy/trip-finder/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{input: "1024", expected: 1024},
		{input: "256K", expected: 256 * 1024},
		{input: "256KB", expected: 256 * 1024},
		{input: "10M", expected: 10 * 1024 * 1024},
		{input: "10MB", expected: 10 * 1024 * 1024},
		{input: "1G", expected: 1024 * 1024 * 1024},
		{input: "  4M  ", expected: 4 * 1024 * 1024},
		{input: "512B", expected: 512},
		{input: "", expected: constants.DefaultMaxBodySizeBytes},
		{input: "abc", wantErr: true},
		{input: "10T", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
	assert.Equal(t, constants.DefaultMaxBodySizeBytes, cfg.BodySizeBytes())
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerAddress, cfg.Address)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
address: ":9090"
maxBodySize: 2M
logging:
  level: debug
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, int64(2*1024*1024), cfg.BodySizeBytes())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxBodySize: potato\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
