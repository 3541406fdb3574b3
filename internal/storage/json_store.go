package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type jsonFile struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// JSONStore keeps the whole key-value map in a single JSON file.
// Every Set/Delete rewrites the file (read-modify-write, last writer wins).
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Entries: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'questbook init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Entries == nil {
		s.file.Entries = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, error) {
	if s.file == nil {
		return "", fmt.Errorf("storage not loaded")
	}

	value, ok := s.file.Entries[key]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.file.Entries[key] = value
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.file.Entries, key)
	return s.save()
}

func (s *JSONStore) Path() string {
	return s.path
}
