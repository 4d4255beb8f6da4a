package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage holds uploaded resume files. The database keeps the metadata;
// this keeps the bytes.
type Storage interface {
	// Save stores a file at the given key, overwriting any previous file.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Open retrieves a stored file. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error
}

// Config selects and configures a storage backend.
type Config struct {
	Type     string `yaml:"type"`      // local or r2
	BasePath string `yaml:"base_path"` // local only
	Bucket   string `yaml:"bucket"`    // r2 only
	Endpoint string `yaml:"endpoint"`  // r2 only
	// R2 credentials come from the environment, never from the file.
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "r2":
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
