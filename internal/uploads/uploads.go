// Package uploads stores project files under user-scoped paths, standing
// in for a hosted object store. Only the returned path matters to the
// rest of the app; file contents are opaque.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrEmptyFilename = errors.New("upload filename must not be empty")

// Store writes uploads beneath a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// DefaultDir resolves the upload directory next to the database:
// $XDG_DATA_HOME/launchpad/uploads (or the ~/.local/share fallback).
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "launchpad", "uploads"), nil
}

// Save stores content under <base>/<userID>/<timestamp>-<name> and
// returns the stored path. The timestamp prefix keeps repeat uploads of
// the same filename from clobbering each other.
func (s *Store) Save(userID, name string, content io.Reader) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", ErrEmptyFilename
	}

	dir := filepath.Join(s.baseDir, userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), base))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		// Remove the partial file so a failed upload leaves no trace.
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

// SaveFile copies an existing file into the store.
func (s *Store) SaveFile(userID, srcPath string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open upload source: %w", err)
	}
	defer f.Close()
	return s.Save(userID, filepath.Base(srcPath), f)
}
