package cmd

import (
	"fmt"
	stdlog "log"
	"os"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/viper"

	"github.com/hskwon/tdocfetch/internal/adapters/transport/ftp"
	"github.com/hskwon/tdocfetch/internal/config"
	"github.com/hskwon/tdocfetch/internal/ports"
)

type app struct {
	cfg  config.Config
	log  logr.Logger
	dial func(cfg config.Config) (ports.Transport, func() error, error)
	now  func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if raw := os.Getenv("TDOCFETCH_VERBOSITY"); raw != "" {
		if level, err := strconv.Atoi(raw); err == nil {
			stdr.SetVerbosity(level)
		}
	}
	log := stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))

	return &app{
		cfg: cfg,
		log: log,
		dial: func(cfg config.Config) (ports.Transport, func() error, error) {
			session, err := ftp.Dial(cfg.Host, cfg.User, cfg.Password, cfg.Timeout)
			if err != nil {
				return nil, nil, err
			}
			return session, session.Close, nil
		},
		now: time.Now,
	}, nil
}

func (a *app) configWithOverrides(group, downloadDir, adHocFilter string, noAdHoc, noArchive bool) (config.Config, error) {
	cfg := a.cfg

	if group != "" {
		resolved, err := config.ResolveGroup(group)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Group = resolved
	}
	if downloadDir != "" {
		cfg.DownloadDir = downloadDir
	}
	if adHocFilter != "" {
		cfg.AdHocFilter = adHocFilter
	}
	if noAdHoc {
		cfg.IncludeAdHoc = false
	}
	if noArchive {
		cfg.Archive = false
	}

	return cfg, nil
}
