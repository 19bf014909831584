package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hskwon/tdocfetch/internal/application"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.toml")
	writer := NewWriter(path)

	result := application.Result{
		Downloads: map[string][]string{
			"TSGR1_112":            {"downloads/DOC-1.zip", "downloads/DOC-2.zip"},
			"TSGR1_AH/2023_NR_AH1": {"downloads/DOC-3.zip"},
		},
		Groups: []string{"TSGR1_112", "TSGR1_AH/2023_NR_AH1"},
		Archives: map[string]string{
			"TSGR1_112": "downloads/TSGR1_112.zip",
		},
		Unresolved: []string{"DOC-9"},
	}

	generatedAt := time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)
	require.NoError(t, writer.Write(result, generatedAt))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded fileSchema
	require.NoError(t, toml.Unmarshal(data, &decoded))

	assert.Equal(t, 1, decoded.Version)
	assert.Equal(t, "2026-08-23T10:30:00Z", decoded.GeneratedAt)
	assert.Equal(t, []string{"DOC-9"}, decoded.Unresolved)

	require.Len(t, decoded.Groups, 2)
	assert.Equal(t, "TSGR1_112", decoded.Groups[0].Name)
	assert.Equal(t, "downloads/TSGR1_112.zip", decoded.Groups[0].Archive)
	assert.Equal(t, []string{"downloads/DOC-1.zip", "downloads/DOC-2.zip"}, decoded.Groups[0].Files)
	assert.Equal(t, "TSGR1_AH/2023_NR_AH1", decoded.Groups[1].Name)
	assert.Empty(t, decoded.Groups[1].Archive)
}

func TestWriterReplacesExistingManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 0\n"), 0o644))

	writer := NewWriter(path)
	require.NoError(t, writer.Write(application.Result{}, time.Now()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded fileSchema
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Version)
}
