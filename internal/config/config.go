package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".tdocfetch"

	defaultHost        = "ftp.3gpp.org:21"
	defaultGroup       = "RAN1"
	defaultDocsSubdir  = "Docs"
	defaultDownloadDir = "3gpp_downloads"
	defaultTimeout     = 60 * time.Second
	defaultManifest    = "manifest.toml"
)

// WorkingGroup names one 3GPP working group's layout on the archive: where
// its meeting folders live, how they are prefixed, and which folder holds
// its ad-hoc sessions.
type WorkingGroup struct {
	Name         string
	BasePath     string
	FolderPrefix string
	AdHocFolder  string
}

var workingGroups = map[string]WorkingGroup{
	"RAN1": {Name: "RAN1", BasePath: "/tsg_ran/WG1_RL1/", FolderPrefix: "TSGR1_", AdHocFolder: "TSGR1_AH"},
	"RAN2": {Name: "RAN2", BasePath: "/tsg_ran/WG2_RL2/", FolderPrefix: "TSGR2_", AdHocFolder: "TSGR2_AHs"},
	"RAN4": {Name: "RAN4", BasePath: "/tsg_ran/WG4_Radio/", FolderPrefix: "TSGR4_", AdHocFolder: "TSGR4_AH"},
}

// Config is the full configuration for one run, resolved once at startup and
// passed by value. Flags override file values; everything has a default.
type Config struct {
	Host         string
	User         string
	Password     string
	Timeout      time.Duration
	Group        WorkingGroup
	DocsSubdir   string
	DownloadDir  string
	IncludeAdHoc bool
	AdHocFilter  string
	Archive      bool
	ManifestName string
}

func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	if homeDir, err := os.UserHomeDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}
	cfg.AddConfigPath(".")

	cfg.SetDefault("host", defaultHost)
	cfg.SetDefault("user", "")
	cfg.SetDefault("password", "")
	cfg.SetDefault("timeout", defaultTimeout.String())
	cfg.SetDefault("group", defaultGroup)
	cfg.SetDefault("docs_subdir", defaultDocsSubdir)
	cfg.SetDefault("download_dir", defaultDownloadDir)
	cfg.SetDefault("include_adhoc", true)
	cfg.SetDefault("adhoc_filter", "")
	cfg.SetDefault("archive", true)
	cfg.SetDefault("manifest_name", defaultManifest)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	group, err := ResolveGroup(cfg.GetString("group"))
	if err != nil {
		return Config{}, err
	}

	timeout, err := time.ParseDuration(cfg.GetString("timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("parse timeout: %w", err)
	}

	return Config{
		Host:         cfg.GetString("host"),
		User:         cfg.GetString("user"),
		Password:     cfg.GetString("password"),
		Timeout:      timeout,
		Group:        group,
		DocsSubdir:   cfg.GetString("docs_subdir"),
		DownloadDir:  cfg.GetString("download_dir"),
		IncludeAdHoc: cfg.GetBool("include_adhoc"),
		AdHocFilter:  cfg.GetString("adhoc_filter"),
		Archive:      cfg.GetBool("archive"),
		ManifestName: cfg.GetString("manifest_name"),
	}, nil
}

// ResolveGroup looks a working group up by name, case-insensitively.
func ResolveGroup(name string) (WorkingGroup, error) {
	group, ok := workingGroups[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return WorkingGroup{}, fmt.Errorf("unknown working group %q (known: %s)", name, strings.Join(GroupNames(), ", "))
	}
	return group, nil
}

func GroupNames() []string {
	names := make([]string, 0, len(workingGroups))
	for name := range workingGroups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
