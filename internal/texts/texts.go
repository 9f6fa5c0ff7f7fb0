// Package texts holds the bot's user-facing message templates. Built-in
// defaults can be overridden per deployment by YAML files in a directory,
// using dot-separated keys.
package texts

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store resolves message templates by dot-separated key.
type Store struct {
	messages map[string]string
}

// NewStore returns a store holding only the built-in defaults.
func NewStore() *Store {
	messages := make(map[string]string, len(defaults))
	for k, v := range defaults {
		messages[k] = v
	}

	return &Store{messages: messages}
}

// LoadFromDir returns a store with the built-in defaults overridden by every
// YAML file found in dir. A missing directory yields the plain defaults.
func LoadFromDir(dir string) (*Store, error) {
	store := NewStore()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("texts: read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry) {
			continue
		}

		overrides, err := parseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		for key, value := range overrides {
			store.messages[key] = value
		}
	}

	return store, nil
}

// Get returns the template for key, or the key itself when unknown so a
// missing entry is visible instead of silent.
func (s *Store) Get(key string) string {
	if value, ok := s.messages[strings.TrimSpace(key)]; ok {
		return value
	}

	return key
}

// Getf formats the template for key with args.
func (s *Store) Getf(key string, args ...any) string {
	return fmt.Sprintf(s.Get(key), args...)
}

func isYAML(entry fs.DirEntry) bool {
	name := strings.ToLower(entry.Name())
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func parseFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texts: read file %s: %w", path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return map[string]string{}, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("texts: parse file %s: %w", path, err)
	}

	flattened := make(map[string]string)
	flatten("", raw, flattened)

	return flattened, nil
}

func flatten(prefix string, value map[string]any, out map[string]string) {
	for key, item := range value {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := item.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		default:
			out[full] = fmt.Sprintf("%v", v)
		}
	}
}
