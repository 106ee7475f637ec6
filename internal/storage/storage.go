// Package storage keeps uploaded resume files outside the database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/anz-davar/giuson/internal/config"
)

//go:generate mockgen -source=./storage.go -destination=../mocks/mock_blob_store.go -package=mocks BlobStore

var ErrInvalidKey = errors.New("invalid storage key")

// BlobStore saves and removes file content addressed by a slash separated key.
type BlobStore interface {
	// Put stores size bytes read from r and returns the stored location.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes a location previously returned by Put. Missing objects
	// are not an error.
	Delete(ctx context.Context, location string) error
}

// New builds the store selected by cfg.Storage.Driver.
func New(ctx context.Context, cfg *config.Config) (BlobStore, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return NewMinioStore(ctx, MinioOptions{
			Endpoint:  cfg.Storage.Minio.Endpoint,
			AccessKey: cfg.Storage.Minio.AccessKey,
			SecretKey: cfg.Storage.Minio.SecretKey,
			Bucket:    cfg.Storage.Minio.Bucket,
			Secure:    cfg.Storage.Minio.Secure,
		})
	case "local", "":
		return NewLocalStore(cfg.Storage.Dir)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// cleanKey rejects keys that would escape the store root.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != key || strings.Contains(key, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return cleaned, nil
}

// LocalStore writes files below a root directory.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	location := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(location), 0o750); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	// Stage in a temp file, then rename into place.
	tmp, err := os.CreateTemp(filepath.Dir(location), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if size >= 0 && n != size {
		return "", fmt.Errorf("short write: wrote %d of %d bytes", n, size)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), location); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	return location, nil
}

func (s *LocalStore) Delete(ctx context.Context, location string) error {
	rel, err := filepath.Rel(s.root, location)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("%w: %q outside store", ErrInvalidKey, location)
	}
	if err := os.Remove(location); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
