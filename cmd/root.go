package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tdocfetch",
		Short:         "tdocfetch: search 3GPP meeting folders and download TDocs",
		Long:          "tdocfetch scans a range of 3GPP meeting folders (plus optional ad-hoc meetings) on the 3GPP FTP archive, downloads the first file matching each requested document number, and zips the results per meeting.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	addCommands(rootCmd, app)

	return rootCmd
}

func addCommands(rootCmd *cobra.Command, app *app) {
	rootCmd.AddCommand(
		newVersionCmd(),
		newMeetingsCmd(app),
		newFetchCmd(app),
	)
}
