package ports

import "os"

type FileSystem interface {
	CreateDir(dirPath string, permission os.FileMode) error

	OpenFile(filePath string) (*os.File, error)
	WriteFile(filePath string, permission os.FileMode, contents []byte) error
	ReadFile(filePath string) ([]byte, error)
	DeleteFile(filePath string) error

	Exists(filePath string) (bool, error)
}
