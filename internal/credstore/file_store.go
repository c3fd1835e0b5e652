package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the credential pair in a single JSON document under
// the user's config directory. The document is rewritten through a
// temp-file rename so the token and the snapshot always land together.
type FileStore struct {
	path string
}

// NewFileStore opens a file-backed store at path, defaulting to
// <user config dir>/careerconnect/credentials.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "careerconnect", "credentials.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create credential dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(ctx context.Context, creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit credentials: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Corrupted storage reads as signed out.
		return nil, nil
	}
	if creds.Token == "" {
		return nil, nil
	}
	return &creds, nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
