package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogrender "github.com/hskwon/tdocfetch/internal/adapters/render/catalog"
	"github.com/hskwon/tdocfetch/internal/application"
)

func newMeetingsCmd(app *app) *cobra.Command {
	var group string
	var noAdHoc bool

	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "List the working group's meeting folders in scan order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMeetings(cmd, app, group, noAdHoc)
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Working group to scan (default from config)")
	cmd.Flags().BoolVar(&noAdHoc, "no-adhoc", false, "Skip ad-hoc meetings")

	return cmd
}

func runMeetings(cmd *cobra.Command, app *app, group string, noAdHoc bool) error {
	cfg, err := app.configWithOverrides(group, "", "", noAdHoc, false)
	if err != nil {
		return err
	}

	transport, closeTransport, err := app.dial(cfg)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Host, err)
	}
	defer func() {
		if err := closeTransport(); err != nil {
			app.log.Error(err, "close transport")
		}
	}()

	service := application.NewCatalogService(transport, app.log)
	catalog, err := service.Build(cmd.Context(), cfg.Group.BasePath, cfg.Group.FolderPrefix, cfg.Group.AdHocFolder, cfg.IncludeAdHoc)
	if err != nil {
		return err
	}

	view, err := catalogrender.Render(catalog, cfg.Group.Name)
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
	return err
}
