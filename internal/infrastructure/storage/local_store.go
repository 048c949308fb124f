package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// LocalStore implements domain.BlobStore on a local directory. Used in
// development and tests; production deployments use S3Store.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a disk-backed blob store rooted at dir.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put implements domain.BlobStore
func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir for %s: %v", domain.ErrStorage, key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", domain.ErrStorage, key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: write %s: %v", domain.ErrStorage, key, err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete implements domain.BlobStore
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return fmt.Errorf("%w: url %q not under store base", domain.ErrStorage, url)
	}
	key := strings.TrimPrefix(url, s.baseURL+"/")

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: remove %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}
