package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty temp dir and runs the test from it so no
// real config file leaks into the load.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(home))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "ftp.3gpp.org:21", cfg.Host)
	assert.Empty(t, cfg.User)
	assert.Empty(t, cfg.Password)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, "RAN1", cfg.Group.Name)
	assert.Equal(t, "/tsg_ran/WG1_RL1/", cfg.Group.BasePath)
	assert.Equal(t, "Docs", cfg.DocsSubdir)
	assert.Equal(t, "3gpp_downloads", cfg.DownloadDir)
	assert.True(t, cfg.IncludeAdHoc)
	assert.Empty(t, cfg.AdHocFilter)
	assert.True(t, cfg.Archive)
	assert.Equal(t, "manifest.toml", cfg.ManifestName)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".tdocfetch")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := `
host = "ftp.example.org:2121"
user = "alice"
timeout = "30s"
group = "ran2"
include_adhoc = false
download_dir = "dl"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "ftp.example.org:2121", cfg.Host)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "RAN2", cfg.Group.Name)
	assert.Equal(t, "TSGR2_", cfg.Group.FolderPrefix)
	assert.False(t, cfg.IncludeAdHoc)
	assert.Equal(t, "dl", cfg.DownloadDir)
	assert.True(t, cfg.Archive, "untouched keys keep their defaults")
}

func TestLoadRejectsUnknownGroup(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".tdocfetch")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("group = \"SA5\"\n"), 0o644))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown working group")
	assert.Contains(t, err.Error(), "RAN1, RAN2, RAN4")
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".tdocfetch")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("timeout = \"soon\"\n"), 0o644))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse timeout")
}

func TestResolveGroupIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"ran4", "RAN4", " Ran4 "} {
		group, err := ResolveGroup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "RAN4", group.Name)
		assert.Equal(t, "/tsg_ran/WG4_Radio/", group.BasePath)
	}
}

func TestGroupNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"RAN1", "RAN2", "RAN4"}, GroupNames())
}
