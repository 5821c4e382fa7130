// Package store keeps raw league payloads as JSON files under a single
// root, one file per fetched view. The file tree is the cache: tools
// read whatever is on disk and the fetch client writes through it.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

type Store struct {
	Root string // e.g. "data/2026/raw"
}

func New(root string) *Store {
	return &Store{Root: root}
}

func (s *Store) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *Store) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// Write saves body under rel, reindenting it when it parses as JSON so
// cached payloads stay diffable.
func (s *Store) Write(rel string, body []byte) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(body, &v); err == nil {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")
		_ = enc.Encode(v)
		body = buf.Bytes()
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *Store) Read(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}

// ReadJSON reads rel and unmarshals it into v.
func (s *Store) ReadJSON(rel string, v any) error {
	b, err := s.Read(rel)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
