package io

import (
	"io"
	"os"
)

// CreateFS defines a file system interface that supports creating files,
// used to persist assembled images.
type CreateFS interface {
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
}

// OsFS creates files in the host file system.
type OsFS struct{}

var _ CreateFS = OsFS{}

func (OsFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(name)
}
