package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	name, err := store.Save(context.Background(), "avatar.png", "image/png", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if filepath.Ext(name) != ".png" {
		t.Errorf("stored name %q lost the extension", name)
	}

	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("stored content = %q", data)
	}

	if err := store.Delete(context.Background(), name); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, name)); !os.IsNotExist(err) {
		t.Error("file still exists after Delete()")
	}

	// Deleting twice is not an error.
	if err := store.Delete(context.Background(), name); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}

	// Path traversal is confined to the root.
	if err := store.Delete(context.Background(), "../"+name); err != nil {
		t.Errorf("Delete() with traversal error = %v", err)
	}
}
