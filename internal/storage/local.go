package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps uploads on the local filesystem
type LocalStore struct {
	root string
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Save writes the content under a random name, preserving the extension
func (s *LocalStore) Save(_ context.Context, filename, _ string, content io.Reader) (string, error) {
	name := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(s.root, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return name, nil
}

// Delete removes a stored file. The path is confined to the upload root.
func (s *LocalStore) Delete(_ context.Context, path string) error {
	clean := filepath.Base(strings.TrimSpace(path))
	if clean == "." || clean == "" {
		return fmt.Errorf("invalid file path")
	}
	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
