package ports

import "io"

// FileStore is the local download directory. Names are flat: implementations
// strip any path component before touching the filesystem.
type FileStore interface {
	Path(name string) string
	Exists(name string) bool
	Create(name string) (io.WriteCloser, error)
	Remove(name string) error
}
