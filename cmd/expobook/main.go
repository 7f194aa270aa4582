// Package main provides the CLI entry point for expobook.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/expobook-go/pkg/booklet"
	"github.com/ukaji3/expobook-go/pkg/booklet/loader"
	"github.com/ukaji3/expobook-go/pkg/booklet/output"
	"github.com/ukaji3/expobook-go/pkg/logger"
	"go.uber.org/zap"
)

type flags struct {
	configPath  string
	outputPath  string
	xlsxPath    string
	offline     bool
	previewRows int
	logLevel    string
	logFormat   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "expobook",
		Short: "Build the expo booklet dataset",
		Long: `expobook fetches the room assignment and exhibit submission sheets,
merges them into booklet entries and writes them to a CSV file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	rootCmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file (default: built-in sheet settings)")
	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", booklet.DefaultOutputPath, "Output CSV path")
	rootCmd.Flags().StringVar(&f.xlsxPath, "xlsx", "", "Also write the booklet to this xlsx path")
	rootCmd.Flags().BoolVar(&f.offline, "offline", false, "Read local fallback files without fetching")
	rootCmd.Flags().IntVar(&f.previewRows, "preview", booklet.DefaultPreviewRows, "Number of rows to preview after saving")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", "console", "Log format: console, json")

	return rootCmd
}

func run(cmd *cobra.Command, f flags) error {
	opts, err := resolveOptions(cmd, f)
	if err != nil {
		return err
	}

	log, err := logger.New(f.logLevel, f.logFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	out := cmd.OutOrStdout()
	cfg := opts.LoaderConfig()
	cfg.Console = out
	l := loader.NewHTTPLoader(cfg, log)

	b, err := booklet.Build(cmd.Context(), l, opts, log)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	// The workbook is staged and only moved into place once the CSV is
	// written, so a failed run leaves neither file behind.
	var staged string
	if opts.XLSXPath != "" {
		staged = output.TempPath(opts.XLSXPath)
		defer os.Remove(staged)
		if err := output.WriteXLSX(staged, b); err != nil {
			return err
		}
	}
	if err := output.WriteCSV(opts.OutputPath, b); err != nil {
		return err
	}
	if staged != "" {
		if err := os.Rename(staged, opts.XLSXPath); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		log.Info("Wrote workbook", zap.String("path", opts.XLSXPath))
	}

	fmt.Fprintf(out, "Saved %d rows to %s\n", len(b.Rows), opts.OutputPath)
	return output.Preview(out, b, opts.PreviewRows)
}

// resolveOptions layers explicitly set flags over the config file or the
// built-in defaults.
func resolveOptions(cmd *cobra.Command, f flags) (booklet.Options, error) {
	opts := booklet.DefaultOptions()
	if f.configPath != "" {
		var err error
		if opts, err = booklet.LoadConfig(f.configPath); err != nil {
			return opts, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		opts.OutputPath = f.outputPath
	}
	if changed("xlsx") {
		opts.XLSXPath = f.xlsxPath
	}
	if changed("offline") {
		opts.Offline = f.offline
	}
	if changed("preview") {
		opts.PreviewRows = f.previewRows
	}

	return opts, opts.Validate()
}
