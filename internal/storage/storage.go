// Package storage is the narrow file-storage interface behind the upload
// tools. The disk implementation keeps stored objects flat under one
// directory with uuid names, preserving the original extension.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

// FileInfo describes one stored object.
type FileInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Storage is the object-storage contract the tool surface delegates to.
type Storage interface {
	Save(ctx context.Context, originalName string, data []byte) (FileInfo, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]FileInfo, error)
}

// DiskStorage stores objects on the local filesystem.
type DiskStorage struct {
	dir string
}

// NewDiskStorage creates the storage directory if needed and returns a
// DiskStorage rooted at dir.
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory %q: %w", dir, err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Save writes data under a fresh uuid name carrying the original extension.
func (s *DiskStorage) Save(_ context.Context, originalName string, data []byte) (FileInfo, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return FileInfo{}, fmt.Errorf("write file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("stat file: %w", err)
	}

	return FileInfo{Name: name, Size: info.Size(), Modified: info.ModTime()}, nil
}

// Delete removes a stored object. A missing object maps to the domain
// not-found condition so callers can treat it like any absent record.
func (s *DiskStorage) Delete(_ context.Context, name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NotFound("File tidak ditemukan")
		}
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// List enumerates stored objects, skipping subdirectories.
func (s *DiskStorage) List(_ context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read storage directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), Size: info.Size(), Modified: info.ModTime()})
	}
	return files, nil
}

// resolve guards against path traversal: stored names never contain
// separators.
func (s *DiskStorage) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", domain.NewAppError(domain.CodeValidation, "nama file tidak valid", nil)
	}
	return filepath.Join(s.dir, name), nil
}
