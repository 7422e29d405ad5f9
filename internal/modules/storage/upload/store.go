// Package upload accepts multipart media uploads and forwards them to a
// blob store, returning public URLs for the stored objects.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore persists an object under a key and returns its public URL.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, payload []byte) (string, error)
}

// DiskStore writes objects under a local static directory. It is the
// fallback when no S3 bucket is configured.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

func (d *DiskStore) Put(_ context.Context, key, _ string, payload []byte) (string, error) {
	key = normalizeKey(key)
	if key == "" {
		return "", fmt.Errorf("invalid object key")
	}

	path := filepath.Join(d.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return d.baseURL + "/static/" + key, nil
}

func normalizeKey(key string) string {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	key = strings.TrimPrefix(key, "/")
	for strings.Contains(key, "//") {
		key = strings.ReplaceAll(key, "//", "/")
	}
	if strings.Contains(key, "..") {
		return ""
	}
	return key
}
