package zip

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hskwon/tdocfetch/internal/ports"
)

// Archiver packs a group's files into <root>/<group>.zip. Path separators in
// the group name are substituted so nested display names like "TSGR1_AH/X"
// yield a flat archive name.
type Archiver struct {
	root string
}

var _ ports.Archiver = (*Archiver)(nil)

func NewArchiver(root string) *Archiver {
	return &Archiver{root: filepath.Clean(root)}
}

func (a *Archiver) Archive(group string, files []string) (string, error) {
	archivePath := filepath.Join(a.root, sanitizeGroupName(group)+".zip")

	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("create archive %q: %w", archivePath, err)
	}

	cleanup := true
	defer func() {
		if cleanup {
			_ = out.Close()
			_ = os.Remove(archivePath)
		}
	}()

	w := zip.NewWriter(out)
	for _, file := range files {
		if err := addFile(w, file); err != nil {
			_ = w.Close()
			return "", fmt.Errorf("add %q to archive: %w", file, err)
		}
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize archive %q: %w", archivePath, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close archive %q: %w", archivePath, err)
	}

	cleanup = false
	return archivePath, nil
}

// addFile stores one file under its base name, with no directory structure
// inside the archive.
func addFile(w *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := w.Create(filepath.Base(path))
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	return err
}

func sanitizeGroupName(group string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		}
		return r
	}, group)
}
