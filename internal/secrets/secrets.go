// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves credentials from a directory of plain-text key
// files, with environment variables taking precedence.
//
// A file's name is the key and its trimmed contents the value. The key
// "anthropic-api-key" can also come from CONTENT_ANALYSIS_ANTHROPIC_API_KEY.
package secrets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AnthropicAPIKey is the key used for rewrite suggestions.
const AnthropicAPIKey = "anthropic-api-key"

// EnvPrefix prefixes the environment variable of every key.
const EnvPrefix = "CONTENT_ANALYSIS_"

// ErrMissing is returned by Require for a key with no value.
var ErrMissing = errors.New("secret not set")

// Secrets maps key names to values.
type Secrets struct {
	files  map[string]string
	getenv func(string) string
}

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error. Unreadable files produce a warning line on w.
func Load(dir string, w io.Writer) (*Secrets, error) {
	s := &Secrets{files: map[string]string{}, getenv: os.Getenv}
	if w == nil {
		w = io.Discard
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s.files[name] = value
		}
	}
	return s, nil
}

// EnvName returns the environment variable consulted for key.
func EnvName(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Get returns the value of key. The environment wins over the file.
func (s *Secrets) Get(key string) (string, bool) {
	if v := strings.TrimSpace(s.getenv(EnvName(key))); v != "" {
		return v, true
	}
	v, ok := s.files[key]
	return v, ok
}

// Require returns the value of key or an error wrapping ErrMissing that
// names both places it can be set.
func (s *Secrets) Require(key string) (string, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	return "", fmt.Errorf("%s (file .secrets/%s or env %s): %w", key, key, EnvName(key), ErrMissing)
}

// Keys returns the key names loaded from files.
func (s *Secrets) Keys() []string {
	keys := make([]string, 0, len(s.files))
	for k := range s.files {
		keys = append(keys, k)
	}
	return keys
}
