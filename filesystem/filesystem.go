package filesystem

import (
	"fmt"
	"os"
)

var (
	ErrFileNotFound = fmt.Errorf("filesystem: file not found")
)

// Filesystem is the read-side surface the server resolves and loads
// pages through. Implementations must report a missing path as
// (false, nil) from Exists, not as an error.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) (bool, error)
	IsDirectory(path string) (bool, error)
}

type localFileSystem struct {
}

// ReadFile implements Filesystem.
func (filesystem *localFileSystem) ReadFile(path string) ([]byte, error) {
	exists, err := filesystem.Exists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	return os.ReadFile(path)
}

func (filesystem *localFileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// IsDirectory implements Filesystem.
func (filesystem *localFileSystem) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func NewLocalFileSystem() Filesystem {
	return &localFileSystem{}
}
