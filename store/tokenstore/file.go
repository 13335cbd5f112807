package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// File persists the token in a single plain file, the cookie-jar
// equivalent for a CLI client.
type File struct {
	path string
}

// NewFile creates a file-backed store at path, creating parent
// directories as needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &File{path: path}, nil
}

func (f *File) Load(ctx context.Context) (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *File) Save(ctx context.Context, token string) error {
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *File) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *File) Close() error { return nil }
