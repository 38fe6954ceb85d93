package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/pratik-mahalle/gigmarket/internal/config"
)

// Store persists uploaded files (profile pictures, offer images) and
// returns the path clients use to reference them.
type Store interface {
	// Save writes the file content under a generated key and returns
	// the stored path
	Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Delete removes a previously stored file
	Delete(ctx context.Context, path string) error
}

// New builds the store selected by the configuration
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "local":
		return NewLocalStore(cfg.LocalPath)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Backend)
	}
}
