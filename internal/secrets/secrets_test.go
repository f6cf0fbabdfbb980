// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  []string
	}{
		{
			name: "reads key files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "anthropic-api-key", "  ak_abc123  \n")
				writeFile(t, dir, "other-key", "value")
				return dir
			},
			want: []string{"anthropic-api-key", "other-key"},
		},
		{
			name: "missing directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: []string{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "anthropic-api-key", "valid")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: []string{"anthropic-api-key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(tt.setup(t), nil)
			require.NoError(t, err)
			keys := s.Keys()
			sort.Strings(keys)
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestGetTrimsAndPrefersEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, AnthropicAPIKey, "  from-file \n")

	s, err := Load(dir, nil)
	require.NoError(t, err)
	s.getenv = noEnv

	v, ok := s.Get(AnthropicAPIKey)
	require.True(t, ok)
	assert.Equal(t, "from-file", v)

	s.getenv = func(name string) string {
		if name == "CONTENT_ANALYSIS_ANTHROPIC_API_KEY" {
			return "from-env"
		}
		return ""
	}
	v, ok = s.Get(AnthropicAPIKey)
	require.True(t, ok)
	assert.Equal(t, "from-env", v)
}

func TestRequire(t *testing.T) {
	s, err := Load(t.TempDir(), nil)
	require.NoError(t, err)
	s.getenv = noEnv

	_, err = s.Require(AnthropicAPIKey)
	require.ErrorIs(t, err, ErrMissing)
	assert.Contains(t, err.Error(), "CONTENT_ANALYSIS_ANTHROPIC_API_KEY")
	assert.Contains(t, err.Error(), ".secrets/anthropic-api-key")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "CONTENT_ANALYSIS_ANTHROPIC_API_KEY", EnvName("anthropic-api-key"))
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")
	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var warn bytes.Buffer
	s, err := Load(dir, &warn)
	require.NoError(t, err)
	s.getenv = noEnv

	v, ok := s.Get("good-key")
	assert.True(t, ok)
	assert.Equal(t, "value123", v)
	_, ok = s.Get("bad-key")
	assert.False(t, ok)
	assert.Contains(t, warn.String(), "warning: could not read secret bad-key")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
