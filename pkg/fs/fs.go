package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalFileSystem is the on-disk implementation backing the manifest and
// archive services.
type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Creates a directory along with any missing parents.
func (lfs *LocalFileSystem) CreateDir(dirPath string, permission os.FileMode) error {
	if stat, err := os.Stat(dirPath); err == nil {
		if !stat.IsDir() {
			return fmt.Errorf("existing path isn't a directory: %s", dirPath)
		}
		return nil
	}

	if err := os.MkdirAll(dirPath, permission); err != nil {
		return fmt.Errorf("error in creating directory %s: %w", dirPath, err)
	}
	return nil
}

// Opens a file for reading.
func (lfs *LocalFileSystem) OpenFile(filePath string) (*os.File, error) {
	return os.Open(filePath)
}

// Writes to a file, creating parent directories if needed.
func (lfs *LocalFileSystem) WriteFile(filePath string, permission os.FileMode, contents []byte) error {
	if err := lfs.CreateDir(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filePath, contents, permission)
}

// Read file contents.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// Deletes a file.
func (lfs *LocalFileSystem) DeleteFile(filePath string) error {
	return os.Remove(filePath)
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
