package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:5000/uploads/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	url, err := store.Put(ctx, "papers/2026/08/abc-paper.pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if url != "http://localhost:5000/uploads/papers/2026/08/abc-paper.pdf" {
		t.Errorf("unexpected url %q", url)
	}

	path := filepath.Join(dir, "papers", "2026", "08", "abc-paper.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "%PDF" {
		t.Errorf("unexpected content %q", data)
	}

	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// Deleting an already-removed artifact is not an error.
	if err := store.Delete(ctx, url); err != nil {
		t.Errorf("second delete should be a no-op, got %v", err)
	}
}

func TestLocalStore_DeleteForeignURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:5000/uploads")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	err = store.Delete(context.Background(), "https://elsewhere.example/file.pdf")
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("expected ErrStorage for foreign url, got %v", err)
	}
}
