package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LogoStore persists club logo images.
type LogoStore interface {
	// Save writes the logo and returns the URL clients fetch it from.
	Save(cid int64, filename string, r io.Reader) (string, error)
	// Open returns the stored file for serving.
	Open(key string) (io.ReadCloser, error)
	// Delete removes a previously stored logo. Missing files are not an
	// error.
	Delete(key string) error
}

// LocalLogoStore implements LogoStore on the local filesystem. Files
// are served back through the /uploads/logos/ route.
type LocalLogoStore struct {
	baseURL  string
	logosDir string
}

func NewLocalLogoStore(baseURL, uploadDir string) (*LocalLogoStore, error) {
	logosDir := filepath.Join(uploadDir, "logos")
	if err := os.MkdirAll(logosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logos directory: %w", err)
	}
	return &LocalLogoStore{
		baseURL:  baseURL,
		logosDir: logosDir,
	}, nil
}

func (s *LocalLogoStore) Save(cid int64, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", fmt.Errorf("unsupported logo format %q", ext)
	}

	// A fresh name per upload; stale logos are cleaned up by the caller.
	key := fmt.Sprintf("club-%d-%s%s", cid, uuid.NewString(), ext)
	fullPath := filepath.Join(s.logosDir, key)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/logos/%s", s.baseURL, key), nil
}

func (s *LocalLogoStore) Open(key string) (io.ReadCloser, error) {
	// Reject traversal attempts; keys are flat file names.
	if key != filepath.Base(key) {
		return nil, fmt.Errorf("invalid logo key %q", key)
	}
	file, err := os.Open(filepath.Join(s.logosDir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalLogoStore) Delete(key string) error {
	if key == "" || key != filepath.Base(key) {
		return nil
	}
	err := os.Remove(filepath.Join(s.logosDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
