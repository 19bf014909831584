package dir

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hskwon/tdocfetch/internal/ports"
)

const storeDirMode = 0o755

// Store keeps downloaded files flat inside a single directory. Remote names
// are reduced to their base name before touching the filesystem.
type Store struct {
	root string
}

var _ ports.FileStore = (*Store)(nil)

func NewStore(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, storeDirMode); err != nil {
		return nil, fmt.Errorf("create download directory %q: %w", root, err)
	}

	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

func (s *Store) Exists(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && !info.IsDir()
}

func (s *Store) Create(name string) (io.WriteCloser, error) {
	file, err := os.Create(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", name, err)
	}
	return file, nil
}

func (s *Store) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", name, err)
	}
	return nil
}
