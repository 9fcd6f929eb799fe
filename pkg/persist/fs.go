package persist

import (
	"io"
	"os"
)

// File is an open storage handle. Read fills a chunk buffer, Write must write
// all bytes or fail, and Close releases the handle.
type File interface {
	io.Reader
	io.Writer
	io.Closer
}

// FS is the storage layer the editor needs: open an existing file, create
// (or truncate) one, and delete one.
type FS interface {
	Open(path string) (File, error)
	Create(path string) (File, error)
	Remove(path string) error
}

// OS is an FS backed by the host file system.
type OS struct{}

// Open opens an existing file. The handle is only read from; saving
// always recreates the file.
func (OS) Open(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create creates path, truncating any existing file.
func (OS) Create(path string) (File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Remove deletes path. A missing file is not an error.
func (OS) Remove(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
