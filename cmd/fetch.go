package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ziparchive "github.com/hskwon/tdocfetch/internal/adapters/archive/zip"
	"github.com/hskwon/tdocfetch/internal/adapters/manifest"
	"github.com/hskwon/tdocfetch/internal/adapters/store/dir"
	"github.com/hskwon/tdocfetch/internal/application"
	"github.com/hskwon/tdocfetch/internal/config"
	"github.com/hskwon/tdocfetch/internal/domain"
	"github.com/hskwon/tdocfetch/internal/ports"
)

var errNoTargets = errors.New("no documents to search for: pass --doc or --docs-file")

type fetchOptions struct {
	from        string
	to          string
	docs        []string
	docsFile    string
	group       string
	downloadDir string
	adHocFilter string
	noAdHoc     bool
	noArchive   bool
}

func newFetchCmd(app *app) *cobra.Command {
	var opts fetchOptions

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Search meeting folders for documents and download first matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "First meeting folder of the range (e.g. TSGR1_107)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Last meeting folder of the range (e.g. TSGR1_123)")
	cmd.Flags().StringArrayVarP(&opts.docs, "doc", "d", nil, "Document number to search for (repeatable)")
	cmd.Flags().StringVar(&opts.docsFile, "docs-file", "", "Newline-delimited file of document numbers")
	cmd.Flags().StringVar(&opts.group, "group", "", "Working group to scan (default from config)")
	cmd.Flags().StringVar(&opts.downloadDir, "dir", "", "Download directory (default from config)")
	cmd.Flags().StringVar(&opts.adHocFilter, "adhoc-filter", "", "Only scan ad-hoc meetings whose path contains this text")
	cmd.Flags().BoolVar(&opts.noAdHoc, "no-adhoc", false, "Skip ad-hoc meetings")
	cmd.Flags().BoolVar(&opts.noArchive, "no-archive", false, "Skip per-meeting zip packaging")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runFetch(cmd *cobra.Command, app *app, opts fetchOptions) error {
	cfg, err := app.configWithOverrides(opts.group, opts.downloadDir, opts.adHocFilter, opts.noAdHoc, opts.noArchive)
	if err != nil {
		return err
	}

	targets, err := collectTargets(opts.docs, opts.docsFile)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errNoTargets
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

	ctx := cmd.Context()
	catalog, err := buildCatalogWithSpinner(ctx, cmd.ErrOrStderr(), app, transport, cfg)
	if err != nil {
		return err
	}

	selected, err := domain.SelectMeetings(catalog, opts.from, opts.to, cfg.Group.FolderPrefix, cfg.IncludeAdHoc, cfg.AdHocFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning %d of %d meeting folders for %d documents:\n", len(selected), len(catalog), len(targets))
	for _, meeting := range selected {
		fmt.Fprintf(out, "  %-40s %s\n", meeting.DisplayName, meeting.RemotePath)
	}

	store, err := dir.NewStore(cfg.DownloadDir)
	if err != nil {
		return err
	}

	var archiver ports.Archiver
	if cfg.Archive {
		archiver = ziparchive.NewArchiver(store.Root())
	}

	retrieval := application.NewRetrievalService(transport, store, archiver, app.log)
	result, err := retrieval.Run(ctx, selected, cfg.Group.BasePath, cfg.DocsSubdir, targets)
	if err != nil {
		return err
	}

	writer := manifest.NewWriter(filepath.Join(store.Root(), cfg.ManifestName))
	if err := writer.Write(result, app.now()); err != nil {
		app.log.Error(err, "write run manifest", "path", writer.Path())
	}

	printSummary(out, result, len(targets))
	return nil
}

func buildCatalogWithSpinner(ctx context.Context, spinnerOut io.Writer, app *app, transport ports.Transport, cfg config.Config) ([]domain.Meeting, error) {
	service := application.NewCatalogService(transport, app.log)

	var catalog []domain.Meeting
	build := func(ctx context.Context) error {
		var err error
		catalog, err = service.Build(ctx, cfg.Group.BasePath, cfg.Group.FolderPrefix, cfg.Group.AdHocFolder, cfg.IncludeAdHoc)
		return err
	}

	if err := runCatalogSpinner(ctx, spinnerOut, build); err != nil {
		return nil, err
	}

	return catalog, nil
}

// collectTargets merges the repeatable --doc flag with the --docs-file list,
// dropping blanks, "#" comment lines, and duplicates while preserving order.
func collectTargets(docs []string, docsFile string) ([]string, error) {
	merged := make([]string, 0, len(docs))
	seen := make(map[string]struct{})

	add := func(raw string) {
		target := strings.TrimSpace(raw)
		if target == "" || strings.HasPrefix(target, "#") {
			return
		}
		if _, ok := seen[target]; ok {
			return
		}
		seen[target] = struct{}{}
		merged = append(merged, target)
	}

	for _, doc := range docs {
		add(doc)
	}

	if docsFile != "" {
		file, err := os.Open(docsFile)
		if err != nil {
			return nil, fmt.Errorf("open documents file: %w", err)
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			add(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read documents file: %w", err)
		}
	}

	return merged, nil
}

func printSummary(out io.Writer, result application.Result, requested int) {
	located := requested - len(result.Unresolved)
	fmt.Fprintf(out, "\nLocated files for %d of %d documents.\n", located, requested)

	for _, group := range result.Groups {
		files := result.Downloads[group]
		fmt.Fprintf(out, "  %s: %d file(s)", group, len(files))
		if archive, ok := result.Archives[group]; ok {
			fmt.Fprintf(out, " -> %s", archive)
		}
		fmt.Fprintln(out)
	}

	if len(result.Unresolved) > 0 {
		fmt.Fprintln(out, "\nNot found in the scanned meetings:")
		for _, target := range result.Unresolved {
			fmt.Fprintf(out, "  - %s\n", target)
		}
	}
}
