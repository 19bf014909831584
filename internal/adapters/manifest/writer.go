package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/hskwon/tdocfetch/internal/application"
)

const (
	manifestVersion  = 1
	manifestFileMode = 0o644
	tempFilePattern  = ".manifest-*.toml.tmp"
)

type fileSchema struct {
	Version     int           `toml:"version"`
	GeneratedAt string        `toml:"generated_at"`
	Unresolved  []string      `toml:"unresolved"`
	Groups      []groupSchema `toml:"groups"`
}

type groupSchema struct {
	Name    string   `toml:"name"`
	Archive string   `toml:"archive,omitempty"`
	Files   []string `toml:"files"`
}

// Writer records a retrieval run as a TOML manifest next to the downloads.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: filepath.Clean(path)}
}

func (w *Writer) Path() string {
	return w.path
}

// Write replaces the manifest atomically: the file is complete or absent,
// never half-written.
func (w *Writer) Write(result application.Result, generatedAt time.Time) error {
	file := fileSchema{
		Version:     manifestVersion,
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		Unresolved:  result.Unresolved,
		Groups:      make([]groupSchema, 0, len(result.Groups)),
	}

	for _, group := range result.Groups {
		file.Groups = append(file.Groups, groupSchema{
			Name:    group,
			Archive: result.Archives[group],
			Files:   result.Downloads[group],
		})
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(w.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp manifest: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp manifest: %w", err)
	}
	if err := tempFile.Chmod(manifestFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp manifest: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp manifest: %w", err)
	}

	if err := os.Rename(tempName, w.path); err != nil {
		return fmt.Errorf("replace manifest: %w", err)
	}
	cleanup = false

	return nil
}
