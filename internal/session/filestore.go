package session

import (
	"os"
	"path/filepath"
)

// FileStore persists the session record as a JSON file, the CLI
// equivalent of browser local storage.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed session store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deeptech-session.json"
	}
	return filepath.Join(home, ".deeptech-session.json")
}

// Load implements Store
func (f *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Save implements Store
func (f *FileStore) Save(data []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o600)
}

// Clear implements Store
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
