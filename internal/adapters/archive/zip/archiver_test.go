package zip

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestArchiveStoresFilesUnderBaseNames(t *testing.T) {
	root := t.TempDir()
	first := writeFile(t, root, "DOC-1.zip", "one")
	second := writeFile(t, root, "DOC-2.docx", "two")

	archiver := NewArchiver(root)
	archivePath, err := archiver.Archive("TSGR1_112", []string{first, second})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "TSGR1_112.zip"), archivePath)

	reader, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer reader.Close()

	contents := map[string]string{}
	for _, entry := range reader.File {
		rc, err := entry.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[entry.Name] = string(data)
	}

	assert.Equal(t, map[string]string{
		"DOC-1.zip":  "one",
		"DOC-2.docx": "two",
	}, contents)
}

func TestArchiveSanitizesGroupName(t *testing.T) {
	root := t.TempDir()
	file := writeFile(t, root, "DOC-1.zip", "x")

	archiver := NewArchiver(root)
	archivePath, err := archiver.Archive("TSGR1_AH/2023_NR_AH1", []string{file})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "TSGR1_AH_2023_NR_AH1.zip"), archivePath)
	_, err = os.Stat(archivePath)
	assert.NoError(t, err)
}

func TestArchiveMissingInputRemovesPartialArchive(t *testing.T) {
	root := t.TempDir()

	archiver := NewArchiver(root)
	_, err := archiver.Archive("TSGR1_112", []string{filepath.Join(root, "missing.zip")})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "TSGR1_112.zip"))
	assert.True(t, os.IsNotExist(statErr), "partial archive must be removed")
}
